// Package commands defines the quickchat CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - chat     Run an interactive session: register, log in, send messages
//   - stored   Print the messages stored for later sending
//
// # Implementation
//
// The root command resolves the data directory (flag, then QUICKCHAT_HOME,
// optionally loaded from a .env file) and builds the dependency graph before
// any subcommand runs, so handlers share one app context.
package commands
