//go:build !windows

package bundle

// lineEnding terminates every line written to a bundle and is the separator
// used when removing empty lines.
const lineEnding = "\n"
