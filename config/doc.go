// Package config holds the run configuration of the netgrowth CLI.
//
// Values are layered from lowest to highest priority:
//
//  1. Default(): nodes=40, iterations=100, c=1, seed=1.
//  2. An optional YAML file (Load / Decode). Unknown keys are rejected.
//  3. Command-line flags, applied by the caller.
//
// Validate checks the final value with go-playground/validator struct tags
// and reports every violation in one error wrapping ErrInvalidConfig.
//
// Example file:
//
//	nodes: 60
//	iterations: 250
//	c: 0.5
//	seed: 7
//	log_level: debug
//	frames: true
//	seed_edges:
//	  min: 4
//	  max: 16
package config
