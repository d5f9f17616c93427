// Package config loads and validates passage.json project configuration.
//
// A project directory is identified by the presence of a passage.json file.
// Loading fills unset fields with defaults so callers can use the Config
// without nil or zero-value checks:
//
//	cfg, err := config.Load(".")
//	if err != nil {
//		return err
//	}
//	addr := cfg.DevAddress()
//
// FindProjectRoot walks up from a starting directory, which lets the CLI
// run from anywhere inside a project tree.
package config
