package main

import (
	"fmt"
	"time"

	"github.com/stardrift-dev/stardrift/internal/config"
	"github.com/stardrift-dev/stardrift/internal/universe"
)

// loadOptions loads the universe configuration and converts it to engine
// options.
func loadOptions() (universe.Options, error) {
	cfg, err := config.LoadUniverse(flagConfig)
	if err != nil {
		return universe.Options{}, err
	}
	return cfg.Options()
}

// galaxySeed resolves the seed flag, generating a throwaway seed when
// none was given.
func galaxySeed() string {
	if flagSeed != "" {
		return flagSeed
	}
	return fmt.Sprintf("galaxy-%d", time.Now().UnixNano())
}
