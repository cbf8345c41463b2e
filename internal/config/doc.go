// Package config defines the format-agnostic model of a deployment manifest,
// along with the Loader interface for reading it from a concrete source.
//
// The `config.Manifest` is the single source of truth for the `pipeline` and
// `hosting` packages. Concrete implementations of the Loader interface, such
// as for HCL, are provided in separate packages.
package config
