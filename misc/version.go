// Package misc keeps build time information about the program.
package misc

import (
	"runtime/debug"
)

// Following variables are set at build time through
// -ldflags "-X msfmt/misc.version=... -X msfmt/misc.gitHash=...".
var (
	appName = "msfmt"
	version = "dev"
	gitHash = ""
)

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

// GetGitHash returns commit hash the program was built from. When it was not
// injected by the linker, VCS information recorded by the go tool is used.
func GetGitHash() string {
	if len(gitHash) > 0 {
		return gitHash
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return "unknown"
}
