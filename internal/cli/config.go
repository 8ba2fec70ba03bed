package cli

import (
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// config is the TOML file layout accepted by --config. Every field is a
// default: flags set explicitly on the command line win over it.
//
//	[gen]
//	kind = "weighted"
//	vertices = 100
//	edges = 300
//	seed = 42
//
//	[run]
//	delimiter = " "
//	directed = false
type config struct {
	Gen genConfig `toml:"gen"`
	Run runConfig `toml:"run"`
}

// genConfig holds defaults for the gen command.
type genConfig struct {
	Kind     string `toml:"kind"`
	Vertices int    `toml:"vertices"`
	Edges    int    `toml:"edges"`
	Seed     int64  `toml:"seed"`
}

// runConfig holds defaults shared by the run and info commands.
type runConfig struct {
	Delimiter string `toml:"delimiter"`
	Directed  bool   `toml:"directed"`
}

// loadConfig decodes a TOML config file. Unknown keys are rejected so a
// typo fails loudly instead of silently using built-in defaults.
func loadConfig(path string) (*config, error) {
	var c config
	meta, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("load config %s: unknown key %q", path, undecoded[0].String())
	}

	return &c, nil
}
