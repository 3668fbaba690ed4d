// Package config manages user-level defaults stored at
// $XDG_CONFIG_HOME/create-mcp-server-kit/config.yaml. Values seed the
// defaults of a generation run (template, package manager, git and install
// toggles, diagnostic log level, extra template directory); command-line
// flags always override them. Every key can also be set through an
// environment variable with the CREATE_MCP_SERVER_KIT_ prefix.
package config
