package bundle

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// AllLanguages is the language token that selects every known extension.
const AllLanguages = "all"

//go:embed languages.yaml
var languagesYAML []byte

// Language maps a language token to the file extension it selects.
type Language struct {
	Name      string `yaml:"name"`
	Extension string `yaml:"extension"` // Includes the leading dot, e.g. ".py".
}

// LanguageMap is an ordered, read-only table of languages. Names need not be
// unique; lookups return the first match.
type LanguageMap struct {
	entries []Language
}

// DefaultLanguages is the table compiled into the binary.
var DefaultLanguages = mustParseLanguages(languagesYAML)

// ParseLanguages decodes a YAML list of languages.
func ParseLanguages(data []byte) (LanguageMap, error) {
	var entries []Language
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return LanguageMap{}, fmt.Errorf("error parsing language table: %w", err)
	}
	for i, e := range entries {
		if e.Name == "" || e.Extension == "" {
			return LanguageMap{}, fmt.Errorf("language entry %d: name and extension are required", i+1)
		}
		if !strings.HasPrefix(e.Extension, ".") {
			return LanguageMap{}, fmt.Errorf("language %q: extension %q must start with a dot", e.Name, e.Extension)
		}
	}
	return LanguageMap{entries: entries}, nil
}

func mustParseLanguages(data []byte) LanguageMap {
	m, err := ParseLanguages(data)
	if err != nil {
		panic(err)
	}
	return m
}

// Lookup returns the extension for a language token, ignoring case.
func (m LanguageMap) Lookup(token string) (string, bool) {
	for _, e := range m.entries {
		if strings.EqualFold(e.Name, token) {
			return e.Extension, true
		}
	}
	return "", false
}

// Extensions returns the distinct extensions in table order.
func (m LanguageMap) Extensions() []string {
	seen := make(map[string]bool, len(m.entries))
	var exts []string
	for _, e := range m.entries {
		key := strings.ToLower(e.Extension)
		if seen[key] {
			continue
		}
		seen[key] = true
		exts = append(exts, e.Extension)
	}
	return exts
}

// Names returns the language tokens in table order, duplicates included.
func (m LanguageMap) Names() []string {
	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns a copy of the table.
func (m LanguageMap) Entries() []Language {
	out := make([]Language, len(m.entries))
	copy(out, m.entries)
	return out
}
