// Package scaffold generates a new MCP server project from a template. It
// owns the generation pipeline: target directory checks, package name
// sanitizing, token substitution while copying the template tree, and the
// follow-up git init and dependency install.
package scaffold
