package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"

	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/event"
	"github.com/KudbeeZero/GrowPodEmpirev1.0/internal/growpod"
)

// Build metadata, overridden with -ldflags "-X".
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = ""
)

// VersionInfo identifies the running API build and the data formats it speaks
type VersionInfo struct {
	Version            string `json:"version"`
	GoVersion          string `json:"go_version"`
	BuildTime          string `json:"build_time,omitempty"`
	GitCommit          string `json:"git_commit,omitempty"`
	EventSchemaVersion string `json:"event_schema_version"`
	CacheSchemaVersion string `json:"cache_schema_version"`
}

// HandleVersion reports build information. configured is the VERSION from
// the environment and only applies when no version was linked in.
// @Summary Build information
// @Tags meta
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(configured string) http.HandlerFunc {
	info := VersionInfo{
		Version:            resolveVersion(Version, configured),
		GoVersion:          runtime.Version(),
		BuildTime:          BuildTime,
		GitCommit:          resolveCommit(GitCommit),
		EventSchemaVersion: event.EventSchemaVersion,
		CacheSchemaVersion: growpod.CacheSchemaVersion,
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

func resolveVersion(linked, configured string) string {
	switch {
	case linked != "" && linked != "dev":
		return linked
	case configured != "":
		return configured
	}
	return "dev"
}

// resolveCommit falls back to the VCS stamp the go tool embeds
func resolveCommit(linked string) string {
	if linked != "" {
		return linked
	}
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
