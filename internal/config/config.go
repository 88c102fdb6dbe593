// Package config defines the top-level CLI grammar parsed by Kong.
package config

import "github.com/lure23/pingen/internal/cmd"

type LogConfig struct {
	Level string `help:"Log level: trace, debug, info, warn, error" enum:"trace,debug,info,warn,error" default:"info" env:"PINGEN_LOG_LEVEL"`
	File  string `help:"Also write logs to this file" env:"PINGEN_LOG_FILE"`
}

// CLI is the root command structure. Values may come from flags, environment
// variables, or a tool configuration file; flags win.
type CLI struct {
	Config string    `help:"Path to a pingen tool configuration file (JSON/YAML/TOML)." type:"path" env:"PINGEN_CONFIG"`
	Log    LogConfig `embed:"" prefix:"log."`

	Generate  cmd.Generate      `cmd:"" help:"Generate the pin fragment for one board"`
	Check     cmd.Check         `cmd:"" help:"Validate a pin configuration without writing anything"`
	List      cmd.List          `cmd:"" help:"List the boards a pin configuration declares"`
	ConfigCmd cmd.ConfigCommand `cmd:"" name:"config" help:"Manage pin configuration files"`
}
