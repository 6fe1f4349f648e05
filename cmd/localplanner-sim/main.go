// Command localplanner-sim runs a scripted local-planner scenario from
// a JSON fixture, exercising the wired packages end to end without the
// pub/sub node, parameter server, or dynamic reconfigure transport a
// real deployment would sit behind.
package main

import (
	"fmt"
	"os"

	"github.com/edaniels/golog"
	"github.com/urfave/cli/v2"
)

var logger = golog.NewDevelopmentLogger("localplanner-sim")

var app = &cli.App{
	Name:  "localplanner-sim",
	Usage: "run a local motion planner scenario fixture through one or more control cycles",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "scenario",
			Aliases:  []string{"s"},
			Usage:    "path to a scenario fixture JSON file",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "cycles",
			Usage: "number of control cycles to run (overrides the fixture's own cycle count)",
		},
	},
	Action: func(c *cli.Context) error {
		s, err := loadScenario(c.String("scenario"))
		if err != nil {
			return fmt.Errorf("loading scenario: %w", err)
		}
		return runScenario(logger, s, c.Int("cycles"))
	},
}

func main() {
	if err := app.Run(os.Args); err != nil {
		logger.Fatal(err)
	}
}
