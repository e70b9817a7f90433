// Package app wires application dependencies for the CLI.
//
// It resolves Config from defaults, an optional YAML file and flags, builds the
// logger, and constructs the codec and store, exposing them via the Wire
// struct for commands to use.
package app
