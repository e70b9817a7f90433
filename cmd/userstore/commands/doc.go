// Package commands defines the userstore CLI and wires dependencies for subcommands.
//
// Commands
//
//   - get <username>            Print the stored record as JSON
//   - set <username> <value>    Store a JSON or YAML value ("-" reads stdin)
//   - delete <username>         Remove the stored record
//   - list                      Print every stored username
//   - path <username>           Print the file a record is written to
//
// # Configuration
//
// Settings come from defaults, then <home>/config.yaml (or --config), then any
// flag given explicitly on the command line. The root command builds the
// logger and the store before any subcommand runs.
package commands
