package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// ParseTemplate validates raw manifest YAML against the template schema and
// decodes it. source names the manifest in error messages.
func ParseTemplate(data []byte, source string) (*TemplateManifest, error) {
	result, err := ValidateTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("validating manifest %s: %w", source, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid manifest %s: %s", source, joinIssues(result.Issues))
	}

	m, err := parseTyped[TemplateManifest](data, source)
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ParsePackageJSON decodes the package.json fields the generator inspects.
func ParsePackageJSON(data []byte) (*PackageJSON, error) {
	var p PackageJSON
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing package.json: %w", err)
	}
	return &p, nil
}

// parseTyped unmarshals YAML data into a typed manifest struct.
func parseTyped[T any](data []byte, source string) (*T, error) {
	var m T
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", source, err)
	}
	return &m, nil
}

func joinIssues(issues []ValidationIssue) string {
	msgs := make([]string, 0, len(issues))
	for _, issue := range issues {
		msgs = append(msgs, issue.String())
	}
	return strings.Join(msgs, "; ")
}
