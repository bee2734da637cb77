// Package config reads process configuration from the environment.
package config

import "github.com/spf13/viper"

var cfg = newEnv()

func newEnv() *viper.Viper {
	v := viper.New()
	v.AutomaticEnv()
	return v
}

// Get ...
func Get(key string) string {
	return cfg.GetString(key)
}

// GetOrDefault ...
func GetOrDefault(key, def string) string {
	env := cfg.GetString(key)
	if env != "" {
		return env
	}
	return def
}
