// File: pkg/bundle/config.go
package bundle

// DefaultOutput is the output file used when none is given.
const DefaultOutput = "file.txt"

// Request holds the resolved options for one bundle run.
type Request struct {
	Output           string // Destination path for the bundle.
	Language         string // Language token from the language table, or "all".
	Note             bool   // If true, each file is preceded by a line holding its path.
	Sort             string // Raw sort token: "AB", "TP", "NO", empty, or anything else.
	RemoveEmptyLines bool   // If true, exactly-empty lines are dropped from each file.
	Author           string // Written as the first line when non-empty.
}

// Result describes a finished bundle run.
type Result struct {
	Output string // Path the bundle was written to.
	Files  int    // Number of files emitted.
}

// SortMode selects how the filtered file list is ordered.
type SortMode int

const (
	// SortByName orders by final path component.
	SortByName SortMode = iota
	// SortByExtension orders by extension, dot included.
	SortByExtension
	// SortNone keeps discovery order.
	SortNone
)

// Sort tokens accepted on the command line.
const (
	SortTokenName      = "AB"
	SortTokenExtension = "TP"
	SortTokenNone      = "NO"
)

func (m SortMode) String() string {
	switch m {
	case SortByName:
		return "name"
	case SortByExtension:
		return "extension"
	case SortNone:
		return "none"
	default:
		return "unknown"
	}
}

// ParseSortMode maps a sort token to a SortMode. An unrecognised token yields
// SortByName and ok == false so the caller can warn about it.
func ParseSortMode(token string) (mode SortMode, ok bool) {
	switch token {
	case "", SortTokenName:
		return SortByName, true
	case SortTokenExtension:
		return SortByExtension, true
	case SortTokenNone:
		return SortNone, true
	default:
		return SortByName, false
	}
}
