package config

import "errors"

// Error variables for configuration loading and target discovery.
var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrConfigInvalid      = errors.New("invalid config file")
	ErrFieldEmpty         = errors.New("field cannot be empty")
	ErrTargetNotFound     = errors.New("could not find config file")
)
