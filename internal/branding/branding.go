// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed, so help text, config locations, environment
// variable names and the generated project's default description all come
// from one place.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName            string `yaml:"cli_name"`
	DisplayName        string `yaml:"display_name"`
	Tagline            string `yaml:"tagline"`
	ConfigDir          string `yaml:"config_dir"`
	EnvPrefix          string `yaml:"env_prefix"`
	DefaultDescription string `yaml:"default_description"`
	GitHubRepo         string `yaml:"github_repo"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:            "create-mcp-server-kit",
			DisplayName:        "create-mcp-server-kit",
			Tagline:            "Scaffold a production-ready Model Context Protocol (MCP) server.",
			ConfigDir:          "create-mcp-server-kit",
			EnvPrefix:          "CREATE_MCP_SERVER_KIT",
			DefaultDescription: "An MCP server generated by create-mcp-server-kit.",
			GitHubRepo:         "mcp-kit/create-mcp-server-kit",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the command name (e.g., "create-mcp-server-kit").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Tagline returns the one-line product description shown in help.
func Tagline() string { load(); return defaults.Tagline }

// ConfigDir returns the directory name used under the XDG config home.
func ConfigDir() string { load(); return defaults.ConfigDir }

// EnvPrefix returns the environment variable prefix (e.g., "CREATE_MCP_SERVER_KIT").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// DefaultDescription is the package description used when none is given.
func DefaultDescription() string { load(); return defaults.DefaultDescription }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("config") → "CREATE_MCP_SERVER_KIT_CONFIG".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
