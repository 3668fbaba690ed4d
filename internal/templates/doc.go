// Package templates locates project templates.
//
// Built-in templates are compiled into the binary from the builtin/
// directory. A user templates directory may be layered in front of them;
// a user template with the same name as a built-in one shadows it.
//
// A template is a directory <name>/ plus an optional sibling manifest
// <name>.yaml. The manifest is never copied into generated projects.
package templates
