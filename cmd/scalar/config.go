// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ezrec/scalar/scalar"
)

// Config is the optional TOML configuration of the scalar tool.
type Config struct {
	Type    string            `toml:"type"`    // Boot type of the register.
	Endian  string            `toml:"endian"`  // Boot endianness of the register.
	Verbose bool              `toml:"verbose"` // Verbose logging.
	Output  string            `toml:"output"`  // Output file, or "-" for stdout.
	Define  map[string]string `toml:"define"`  // Additional equates.
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Type:   scalar.TYPE_F64.String(),
		Endian: scalar.ENDIAN_BIG.String(),
		Output: "-",
	}
}

// ParseConfig decodes TOML text over the default configuration.
func ParseConfig(data []byte) (conf *Config, err error) {
	conf = DefaultConfig()
	err = toml.Unmarshal(data, conf)
	if err != nil {
		conf = nil
		return
	}

	_, _, err = conf.Boot()
	if err != nil {
		conf = nil
		return
	}

	return
}

// LoadConfig reads a TOML configuration file.
func LoadConfig(path string) (conf *Config, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	conf, err = ParseConfig(data)
	if err != nil {
		err = fmt.Errorf("%v: %w", path, err)
		return
	}

	return
}

// Boot returns the register type and endianness to reset to.
func (conf *Config) Boot() (typ scalar.Type, endian scalar.Endianness, err error) {
	typ, err = scalar.ParseType(conf.Type)
	if err != nil {
		return
	}

	endian, err = scalar.ParseEndianness(conf.Endian)
	if err != nil {
		return
	}

	return
}
