// Package commands defines the catalog CLI and wires the store for subcommands.
//
// Commands
//
//   - dashboard   Print the summary cards
//   - users       List, add, edit and remove users
//   - products    List, add, edit and remove products
//   - orders      List, show, create, extend and re-status orders
//   - metrics     Print the Prometheus exposition of the store
//   - shell       Run commands interactively against one store
//
// # Implementation
//
// The store lives in memory, so each invocation starts from the configured
// seed. The shell keeps a single store alive and runs every line through the
// same command tree.
package commands
