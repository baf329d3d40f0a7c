package generate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"stylec/config"
)

// buildOutputPath returns stylesheet file path. Empty destination means
// current working directory, destination which is an existing directory
// gets default file name derived from the stylebook name, anything else is
// used as is.
func buildOutputPath(src, dst string) (string, error) {
	var err error
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return "", fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return "", err
	}
	if fi, err := os.Stat(dst); err == nil && fi.IsDir() {
		return filepath.Join(dst, defaultFileName(src)), nil
	}
	return dst, nil
}

func defaultFileName(src string) string {
	base := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	return config.CleanFileName(base) + ".css"
}
