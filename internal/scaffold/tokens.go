package scaffold

import "strings"

// Placeholders recognized in template content.
const (
	TokenPackageName = "__PACKAGE_NAME__"
	TokenProjectName = "__PROJECT_NAME__"
	TokenDescription = "__DESCRIPTION__"
)

// Token pairs a placeholder with its replacement.
type Token struct {
	Placeholder string
	Value       string
}

// TokenMap is an ordered set of replacements, applied first to last.
type TokenMap []Token

// NewTokenMap builds the replacements for one generation.
func NewTokenMap(packageName, description string) TokenMap {
	return TokenMap{
		{Placeholder: TokenPackageName, Value: packageName},
		{Placeholder: TokenProjectName, Value: packageName},
		{Placeholder: TokenDescription, Value: description},
	}
}

// Apply replaces every occurrence of every placeholder in s, one token at
// a time over the whole string. Replacement is literal.
func (m TokenMap) Apply(s string) string {
	for _, t := range m {
		s = strings.ReplaceAll(s, t.Placeholder, t.Value)
	}
	return s
}

// ContainsToken returns the first placeholder found in s.
func ContainsToken(s string) (string, bool) {
	for _, p := range []string{TokenPackageName, TokenProjectName, TokenDescription} {
		if strings.Contains(s, p) {
			return p, true
		}
	}
	return "", false
}
