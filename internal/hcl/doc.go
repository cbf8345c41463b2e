// Package hcl implements the config.Loader interface for HCL deployment
// manifests. It parses one or more .hcl files, decodes them against the
// manifest schema with an `env` evaluation context, and translates the result
// into the format-agnostic config model.
package hcl
