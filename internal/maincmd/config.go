package maincmd

import (
	"os"

	"github.com/loxlang/rlox/lang/interp"
	"gopkg.in/yaml.v3"
)

// replConfig is ambient convenience, not a language feature: its absence is
// never an error. Prompt applies only to the REPL; MaxCallDepth sets the
// call-depth limit for both the REPL and file-mode execution.
type replConfig struct {
	Prompt       string `yaml:"prompt"`
	MaxCallDepth int    `yaml:"maxCallDepth"`
}

const configFileName = ".rloxrc"

// loadReplConfig reads configFileName from the working directory, if
// present. A missing file yields the zero value and no error; a malformed
// one is reported so a typo doesn't silently do nothing.
func loadReplConfig() (replConfig, error) {
	var cfg replConfig
	data, err := os.ReadFile(configFileName)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (cfg replConfig) prompt() string {
	if cfg.Prompt != "" {
		return cfg.Prompt
	}
	return "> "
}

func (cfg replConfig) maxCallDepth() int {
	if cfg.MaxCallDepth > 0 {
		return cfg.MaxCallDepth
	}
	return interp.DefaultMaxCallDepth
}
