package scaffold

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/mcp-kit/create-mcp-server-kit/internal/platform"
)

// gitignoreName is how templates store .gitignore; dotfiles get dropped by
// some publishing pipelines.
const gitignoreName = "gitignore"

// textExtensions are file suffixes known to hold text.
var textExtensions = []string{
	".js", ".cjs", ".mjs", ".ts", ".tsx",
	".json", ".md", ".txt", ".yml", ".yaml",
	".gitignore", ".gitattributes", ".npmrc", ".editorconfig", ".env",
}

// isTextFile decides by name whether a file gets token substitution.
// Unknown extensions are treated as text as well; the list exists so binary
// assets can be excluded later.
func isTextFile(name string) bool {
	lower := strings.ToLower(name)
	for _, ext := range textExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	if lower == gitignoreName {
		return true
	}
	return true
}

// destName maps a template entry name to its output name.
func destName(name string) string {
	if name == gitignoreName {
		return "." + gitignoreName
	}
	return name
}

// CopyTemplateDir copies the tree at srcDir in src into dstDir on dst,
// creating dstDir if needed. Text files have tokens applied. Entries that
// are neither directories nor regular files are skipped. It returns the
// written files relative to dstDir, slash-separated.
//
// The first read or write failure aborts the copy; files already written
// are left in place.
func CopyTemplateDir(src fs.FS, srcDir string, dst afero.Fs, dstDir string, tokens TokenMap) ([]string, error) {
	var written []string
	if err := copyDir(src, srcDir, dst, dstDir, "", tokens, &written); err != nil {
		return written, err
	}
	return written, nil
}

func copyDir(src fs.FS, srcDir string, dst afero.Fs, dstDir, rel string, tokens TokenMap, written *[]string) error {
	if err := dst.MkdirAll(dstDir, platform.DirPerm); err != nil {
		return fmt.Errorf("creating %s: %w", dstDir, err)
	}

	entries, err := fs.ReadDir(src, srcDir)
	if err != nil {
		return fmt.Errorf("reading template directory %s: %w", srcDir, err)
	}

	for _, entry := range entries {
		name := destName(entry.Name())
		srcPath := path.Join(srcDir, entry.Name())
		dstPath := filepath.Join(dstDir, name)
		relPath := path.Join(rel, name)

		if entry.IsDir() {
			if err := copyDir(src, srcPath, dst, dstPath, relPath, tokens, written); err != nil {
				return err
			}
			continue
		}

		// Skip symlinks, sockets, devices and the like.
		if !entry.Type().IsRegular() {
			continue
		}

		if err := copyFile(src, srcPath, entry, dst, dstPath, tokens); err != nil {
			return err
		}
		*written = append(*written, relPath)
	}

	return nil
}

func copyFile(src fs.FS, srcPath string, entry fs.DirEntry, dst afero.Fs, dstPath string, tokens TokenMap) error {
	data, err := fs.ReadFile(src, srcPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", srcPath, err)
	}

	info, err := entry.Info()
	if err != nil {
		return fmt.Errorf("stat %s: %w", srcPath, err)
	}
	mode := platform.FileMode(info.Mode())

	if isTextFile(filepath.Base(dstPath)) {
		data = []byte(tokens.Apply(string(data)))
	}

	if err := afero.WriteFile(dst, dstPath, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", dstPath, err)
	}
	return nil
}
