// Package config loads golinq configuration.
//
// Viper reads a YAML file and environment variables into Config; godotenv
// loads a .env file first when one is found. Environment variables carry the
// LINQ_ prefix with underscore-separated paths, e.g.
// LINQ_ENGINE_SEQUENCE_EQUAL=set or LINQ_SERVER_PORT=9090.
//
// # Usage
//
//	var cfg config.Config
//	if err := config.LoadConfig("linq", &cfg); err != nil { ... }
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil { ... }
package config
