package templates

import (
	"embed"
	"io/fs"
)

//go:embed all:builtin
var builtinFS embed.FS

// BuiltinSourceName names the embedded template source.
const BuiltinSourceName = "builtin"

// Builtin returns the source holding the templates shipped with the binary.
func Builtin() Source {
	sub, err := fs.Sub(builtinFS, "builtin")
	if err != nil {
		// fs.Sub only fails for invalid paths; "builtin" is a constant.
		panic(err)
	}
	return Source{Name: BuiltinSourceName, FS: sub}
}
