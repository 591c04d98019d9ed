// Package worldconfig loads and validates world generation configuration: a
// YAML-backed struct with a range-checking Validate and a Hash used to
// derive per-stage seeds.
package worldconfig
