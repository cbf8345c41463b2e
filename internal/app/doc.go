// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the synthesis lifecycle, decoupled from any
// specific entrypoint like a CLI or the CDK toolkit.
package app
