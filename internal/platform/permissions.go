package platform

import (
	"io/fs"
	"os"
	"runtime"
)

// Permission constants for generated output.
const (
	DirPerm  os.FileMode = 0755
	FilePerm os.FileMode = 0644
	ExecPerm os.FileMode = 0755
)

// FileMode returns the mode a generated file is written with. Only the
// executable bit of the template file carries over; everything else is
// normalized so read-only sources (embedded templates report 0444) still
// produce writable output.
func FileMode(src fs.FileMode) os.FileMode {
	return fileMode(runtime.GOOS, src)
}

func fileMode(goos string, src fs.FileMode) os.FileMode {
	if goos != "windows" && src.Perm()&0111 != 0 {
		return ExecPerm
	}
	return FilePerm
}
