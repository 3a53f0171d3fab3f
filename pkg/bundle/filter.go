package bundle

import (
	"strings"
)

// FilterByLanguage keeps the files whose path ends with the extension selected
// by token. The "all" token keeps every extension in languages. An unknown
// token is a configuration error.
func FilterByLanguage(files []string, token string, languages LanguageMap) ([]string, error) {
	var exts []string
	if strings.EqualFold(token, AllLanguages) {
		exts = languages.Extensions()
	} else {
		ext, ok := languages.Lookup(token)
		if !ok {
			return nil, &Error{Kind: KindConfiguration, Op: "filter", Arg: token, Err: ErrUnsupportedLanguage}
		}
		exts = []string{ext}
	}

	for i := range exts {
		exts[i] = strings.ToLower(exts[i])
	}

	kept := make([]string, 0, len(files))
	for _, f := range files {
		if hasAnySuffix(strings.ToLower(f), exts) {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// hasAnySuffix reports whether s ends with one of suffixes.
func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
