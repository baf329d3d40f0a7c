package config

import (
	"os"
	"strings"
)

const badFileName = "_bad_file_name_"

// CleanFileName makes in usable as a single file name on the current
// platform: path separators, characters the platform forbids and control
// characters are dropped together with leading dots.
func CleanFileName(in string) string {
	drop := forbiddenNameChars + string(os.PathSeparator) + string(os.PathListSeparator)
	out := strings.TrimLeft(strings.Map(func(sym rune) rune {
		if sym < ' ' || strings.ContainsRune(drop, sym) {
			return -1
		}
		return sym
	}, in), ".")
	if len(out) == 0 {
		return badFileName
	}
	return out
}
