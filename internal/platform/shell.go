package platform

import (
	"runtime"
	"strings"
)

// shellShims lists commands that are installed as .cmd batch shims on
// Windows and therefore cannot be started without cmd.exe.
var shellShims = map[string]bool{
	"npm":  true,
	"pnpm": true,
	"yarn": true,
}

// NeedsShell reports whether name must be launched through the system shell
// on the current platform.
func NeedsShell(name string) bool {
	return needsShell(runtime.GOOS, name)
}

func needsShell(goos, name string) bool {
	return goos == "windows" && shellShims[name]
}

// ShellCommand wraps name and args into a cmd.exe invocation.
func ShellCommand(name string, args []string) (string, []string) {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, quoteWindowsArg(name))
	for _, a := range args {
		parts = append(parts, quoteWindowsArg(a))
	}
	return "cmd", []string{"/d", "/s", "/c", strings.Join(parts, " ")}
}

// quoteWindowsArg double-quotes an argument when cmd.exe would otherwise
// split or reinterpret it.
func quoteWindowsArg(s string) string {
	if s == "" {
		return `""`
	}
	if !strings.ContainsAny(s, " \t\"&|<>^()%!") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
