package models

import "fmt"

// AppBuildInfo is the build metadata injected into a binary with -ldflags.
// Empty values stay empty; the UI decides how to show them.
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{Version: version, Date: date, Commit: commit}
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("%s (built %s, commit %s)", a.Version, a.Date, a.Commit)
}
