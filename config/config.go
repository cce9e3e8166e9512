// Package config holds the settings for the ccdump command, loaded from a
// YAML file the way revid/config loads its own settings in
// _examples/ausocean-av/revid/config/config.go.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Channel selects which NTSC line-21 field (or DTVCC channel) an input
// stream's words should be decoded as, when the input file carries a
// single raw channel rather than SEI-wrapped triplets.
type Channel string

const (
	ChannelField1     Channel = "field1"
	ChannelField2     Channel = "field2"
	ChannelDTVCC      Channel = "dtvcc"
	ChannelSEIWrapped Channel = "sei"
)

// Config is the full set of ccdump settings. A zero Config is valid and
// decodes field1 EIA-608 with XDS processing disabled.
type Config struct {
	// Input is the path to the caption-data file to decode.
	Input string `yaml:"input"`

	// Output is where decoded text is written. Empty means stdout.
	Output string `yaml:"output"`

	// Channel selects how Input's words should be classified. See the
	// Channel* constants above.
	Channel Channel `yaml:"channel"`

	// ProcessXDS enables XDS sub-dispatch on field2 words. Per spec.md §5,
	// field1 and DTVCC words are never XDS-dispatched, so this has an
	// effect only when Channel is field2, or sei with field2 triplets in
	// the payload.
	ProcessXDS bool `yaml:"process_xds"`

	// LogPath is the file lumberjack rotates ccdump's logs into. Empty
	// disables file logging (stderr only).
	LogPath string `yaml:"log_path"`

	// LogVerbosity is one of the logging.Debug/Info/Warning/Error levels,
	// by name, matching logging.New's int8 level parameter.
	LogVerbosity string `yaml:"log_verbosity"`
}

// Default returns the zero-value-equivalent Config ccdump falls back to
// when no config file is given.
func Default() Config {
	return Config{
		Channel:      ChannelField1,
		LogVerbosity: "info",
	}
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config: could not read file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config: could not parse yaml")
	}
	return cfg, nil
}
