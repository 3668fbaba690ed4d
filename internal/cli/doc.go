// Package cli is the command-line surface of create-mcp-server-kit: a single
// Cobra root command that parses its own flags, loads user settings, and
// hands off to the scaffold package. All fatal errors are printed here and
// turned into the process exit code.
package cli
