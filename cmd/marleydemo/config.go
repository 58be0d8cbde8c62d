package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config is the shape of the TOML file marleydemo loads its grammar from.
//
//	grammar = "grammars/parens.dsl"
//	[trace]
//	level = "info"
type config struct {
	Grammar string      `toml:"grammar"`
	Trace   traceConfig `toml:"trace"`
}

type traceConfig struct {
	Level string `toml:"level"`
}

func loadConfig(path string) (*config, error) {
	var cfg config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("marleydemo: reading config %s: %w", path, err)
	}
	if cfg.Grammar == "" {
		return nil, fmt.Errorf("marleydemo: config %s does not name a grammar file", path)
	}
	return &cfg, nil
}
