// Package manifest handles parsing and validation of template manifests
// (the <name>.yaml file that describes a template) and of the package.json
// a template produces. Both are checked against JSON Schemas embedded from
// the schema/ directory.
package manifest
