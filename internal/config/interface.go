package config

import "context"

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads the deployment manifest from a given path (a file or a
	// directory of files), translates it into the format-agnostic model and
	// validates it.
	Load(ctx context.Context, path string) (*Manifest, error)
}
