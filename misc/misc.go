// Package misc keeps program identity, set at link time.
package misc

import (
	"runtime/debug"
	"sync"
)

// Values below are overwritten with -ldflags "-X stylec/misc.version=..." by
// the release build.
var (
	appName = "stylec"
	version = "dev"
	gitHash = ""
)

var buildHash = sync.OnceValue(func() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	hash, dirty := "unknown", false
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			hash = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(hash) > 12 {
		hash = hash[:12]
	}
	if dirty {
		hash += "-dirty"
	}
	return hash
})

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns revision program was built from.
func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	return buildHash()
}
