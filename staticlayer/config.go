package staticlayer

import (
	"fmt"

	"go.viam.com/utils"
)

// Config is the static costmap layer's fixed-at-initialization
// configuration.
type Config struct {
	MapTopic string `json:"map_topic"`
	// SubscribeToUpdates gates OnPatch: false (the default) means the
	// layer only ever ingests full-map snapshots and every patch is
	// dropped.
	SubscribeToUpdates bool `json:"subscribe_to_updates"`
	TrackUnknownSpace  bool   `json:"track_unknown_space"`
	UseMaximum         bool   `json:"use_maximum"`
	LethalThreshold    int8   `json:"lethal_threshold"`
	UnknownCostValue   int8   `json:"unknown_cost_value"`
	TrinaryCostmap     bool   `json:"trinary_costmap"`
	// Enabled gates UpdateBounds and UpdateCosts: false leaves the layer
	// ingesting snapshots but contributing nothing to the master grid.
	Enabled bool `json:"enabled"`
}

// Validate ensures all parts of the config are valid, following the
// AttrConfig.Validate convention of components/base/wheeled/wheeled_base.go.
func (c *Config) Validate(path string) error {
	if c.MapTopic == "" {
		return utils.NewConfigValidationFieldRequiredError(path, "map_topic")
	}
	if c.LethalThreshold < 0 || c.LethalThreshold > 100 {
		return utils.NewConfigValidationError(path,
			fmt.Errorf("lethal_threshold must be in [0,100], got %d", c.LethalThreshold))
	}
	return nil
}
