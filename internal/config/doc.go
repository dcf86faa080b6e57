// Package config provides loading and environment overlay for the dsws
// client configuration. It exposes a Default() baseline, file loading and a
// DSWS_* environment overlay; command-line flags are applied last by the
// caller.
//
// Example:
//
//	cfg, err := config.Load(config.DefaultPath())
//	if err != nil {
//	    return err
//	}
//	if err := config.FromEnv(&cfg); err != nil {
//	    return err
//	}
//	target := cfg.Target() // "webpi2:50051"
package config
