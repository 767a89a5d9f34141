package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

type VersionInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Set with -ldflags "-X github.com/osse101/ArcPlanner_Go/internal/handler.Version=..."
var (
	Version   = "dev"
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion reports the build. configured is the VERSION setting, used when
// no version was linked in.
func HandleVersion(service, configured string) http.HandlerFunc {
	info := VersionInfo{
		Service:   service,
		Version:   resolveVersion(configured),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if info.GitCommit == "" {
		info.GitCommit = vcsRevision()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

func resolveVersion(configured string) string {
	switch {
	case Version != "" && Version != "dev":
		return Version
	case configured != "":
		return configured
	}
	return "dev"
}

// vcsRevision reads the commit the go tool stamped into the binary, if any
func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
