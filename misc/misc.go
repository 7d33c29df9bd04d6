// Package misc keeps program identity, values could be overwritten at link
// time with -ldflags "-X mxc/misc.version=...".
package misc

import (
	"runtime/debug"
	"sync"
)

var (
	appName = "mxc"
	version = ""
	gitHash = ""
)

var buildInfo = sync.OnceValues(func() (string, string) {
	ver, hash := "dev", "unknown"
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ver, hash
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		ver = v
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && s.Value != "" {
			hash = s.Value
		}
	}
	return ver, hash
})

func GetAppName() string {
	return appName
}

func GetVersion() string {
	if version != "" {
		return version
	}
	ver, _ := buildInfo()
	return ver
}

func GetGitHash() string {
	if gitHash != "" {
		return gitHash
	}
	_, hash := buildInfo()
	return hash
}
