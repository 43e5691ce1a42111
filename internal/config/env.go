package config

import "github.com/ilyakaznacheev/cleanenv"

// parseEnv overlays cfg with FOODCHAT_* variables that are set. Unset
// variables leave the field as it is.
func parseEnv(cfg *Config) error {
	return cleanenv.ReadEnv(cfg)
}
