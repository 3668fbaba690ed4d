package manifest

// TemplateManifest describes a template. It lives beside the template
// directory, never inside it, so it is not copied into generated projects.
type TemplateManifest struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description,omitempty" json:"description,omitempty"`
	MinVersion  string   `yaml:"min_version,omitempty" json:"min_version,omitempty"`
	NextSteps   []string `yaml:"next_steps,omitempty" json:"next_steps,omitempty"`
	Tip         string   `yaml:"tip,omitempty" json:"tip,omitempty"`
}

// PackageJSON holds the package.json fields the generator inspects.
type PackageJSON struct {
	Name        string            `json:"name"`
	Version     string            `json:"version,omitempty"`
	Description string            `json:"description,omitempty"`
	Scripts     map[string]string `json:"scripts,omitempty"`
}

// ValidationResult contains the outcome of a schema validation.
type ValidationResult struct {
	Valid  bool
	Issues []ValidationIssue
}

// ValidationIssue represents a single validation error from the schema.
type ValidationIssue struct {
	Path    string // Instance location (e.g., "/name")
	Message string // Human-readable error message
	Keyword string // Schema keyword location that failed
}

// String renders the issue as "path: message".
func (i ValidationIssue) String() string {
	if i.Path == "" {
		return i.Message
	}
	return i.Path + ": " + i.Message
}
