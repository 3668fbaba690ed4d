package templates

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/mcp-kit/create-mcp-server-kit/internal/manifest"
	"github.com/mcp-kit/create-mcp-server-kit/internal/version"
)

// manifestExt is appended to a template name to find its manifest.
const manifestExt = ".yaml"

// Source is a location that holds templates (e.g., the embedded set or a
// user directory). Each top-level directory in FS is a template.
type Source struct {
	Name string
	FS   fs.FS
}

// Template is a resolved template ready to be copied.
type Template struct {
	Name     string
	Source   string                     // name of the source it was found in
	FS       fs.FS                      // rooted at the template directory
	Manifest *manifest.TemplateManifest // defaults to just Name when no manifest exists
}

// Registry resolves template names against an ordered list of sources.
// Earlier sources take priority.
type Registry struct {
	sources []Source
}

// UnknownError is returned by Lookup when no source has the template.
type UnknownError struct {
	Name      string
	Available []string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("Unknown template %q. Available: %s", e.Name, strings.Join(e.Available, ", "))
}

// New returns a registry of the built-in templates, shadowed by templates in
// userDir when userDir is non-empty.
func New(userDir string) *Registry {
	var sources []Source
	if userDir != "" {
		sources = append(sources, Source{Name: userDir, FS: os.DirFS(userDir)})
	}
	sources = append(sources, Builtin())
	return NewWithSources(sources...)
}

// NewWithSources returns a registry over the given sources in priority order.
func NewWithSources(sources ...Source) *Registry {
	return &Registry{sources: sources}
}

// List returns the sorted, de-duplicated names of all available templates.
// Unreadable sources are skipped.
func (r *Registry) List() []string {
	seen := make(map[string]bool)
	var names []string
	for _, src := range r.sources {
		entries, err := fs.ReadDir(src.FS, ".")
		if err != nil {
			continue
		}
		for _, e := range entries {
			if !e.IsDir() || strings.HasPrefix(e.Name(), ".") || seen[e.Name()] {
				continue
			}
			seen[e.Name()] = true
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names
}

// Lookup resolves name to a template. It returns *UnknownError when no
// source provides a directory of that name, and a plain error when the
// template's manifest is unreadable or invalid.
func (r *Registry) Lookup(name string) (*Template, error) {
	if !validName(name) {
		return nil, &UnknownError{Name: name, Available: r.List()}
	}

	for _, src := range r.sources {
		info, err := fs.Stat(src.FS, name)
		if err != nil || !info.IsDir() {
			continue
		}

		sub, err := fs.Sub(src.FS, name)
		if err != nil {
			return nil, fmt.Errorf("opening template %s: %w", name, err)
		}

		m, err := loadManifest(src.FS, name)
		if err != nil {
			return nil, err
		}

		return &Template{
			Name:     name,
			Source:   src.Name,
			FS:       sub,
			Manifest: m,
		}, nil
	}

	return nil, &UnknownError{Name: name, Available: r.List()}
}

// CheckCompatible returns an error when the template's min_version
// constraint excludes toolVersion.
func (t *Template) CheckCompatible(toolVersion string) error {
	if t.Manifest == nil || t.Manifest.MinVersion == "" {
		return nil
	}
	ok, err := version.Satisfies(toolVersion, t.Manifest.MinVersion)
	if err != nil {
		return fmt.Errorf("template %s: %w", t.Name, err)
	}
	if !ok {
		return fmt.Errorf("template %s requires version %s (this is %s)", t.Name, t.Manifest.MinVersion, toolVersion)
	}
	return nil
}

// loadManifest reads <name>.yaml next to the template directory.
func loadManifest(fsys fs.FS, name string) (*manifest.TemplateManifest, error) {
	file := name + manifestExt
	data, err := fs.ReadFile(fsys, file)
	if errors.Is(err, fs.ErrNotExist) {
		return &manifest.TemplateManifest{Name: name}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading template manifest %s: %w", file, err)
	}

	m, err := manifest.ParseTemplate(data, file)
	if err != nil {
		return nil, err
	}
	if m.Name != name {
		return nil, fmt.Errorf("template manifest %s declares name %q", file, m.Name)
	}
	if m.MinVersion != "" {
		if err := version.ValidConstraint(m.MinVersion); err != nil {
			return nil, fmt.Errorf("template manifest %s: %w", file, err)
		}
	}
	return m, nil
}

// validName accepts a single path element.
func validName(name string) bool {
	return name != "" && name != "." && fs.ValidPath(name) && path.Base(name) == name
}
