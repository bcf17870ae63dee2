package config

import "github.com/caarlos0/env/v11"

// Env holds the process-level settings that do not belong in the content
// config file: file locations and an optional bind-address override.
type Env struct {
	ConfigPath string `env:"ALICARD_CONFIG" envDefault:"./alicard_config.json"`
	DBPath     string `env:"ALICARD_DB" envDefault:"./data/alicard.db"`
	// Address, when set, overrides server.address from the config file.
	Address string `env:"ALICARD_ADDR"`
}

// ParseEnv reads the environment into an Env.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, err
	}
	return e, nil
}
