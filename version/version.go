package version

import (
	"fmt"
	"runtime/debug"
	"strings"
	"time"
)

// Set at build time with -ldflags.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// Info describes the running binary.
type Info struct {
	Version   string    `json:"version"`
	Commit    string    `json:"commit,omitempty"`
	BuildTime time.Time `json:"build_time,omitzero"`
	GoVersion string    `json:"go_version"`
	Module    string    `json:"module,omitempty"`
	Dirty     bool      `json:"dirty"`
	Release   bool      `json:"release"`
}

// Get collects the stamped variables and fills gaps from the embedded build info.
func Get() Info {
	return fromBuild(Version, Commit, BuildTime, readBuildInfo())
}

var readBuildInfo = func() *debug.BuildInfo {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return bi
}

func fromBuild(version, commit, built string, bi *debug.BuildInfo) Info {
	info := Info{Version: version, Commit: commit}
	if t, err := time.Parse(time.RFC3339, built); err == nil {
		info.BuildTime = t
	}
	if bi != nil {
		info.GoVersion = bi.GoVersion
		info.Module = bi.Main.Path
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.modified":
				info.Dirty = s.Value == "true"
			case "vcs.time":
				if info.BuildTime.IsZero() {
					if t, err := time.Parse(time.RFC3339, s.Value); err == nil {
						info.BuildTime = t
					}
				}
			}
		}
	}
	if len(info.Commit) > 7 {
		info.Commit = info.Commit[:7]
	}
	info.Release = info.Version != "dev" && !info.Dirty && !strings.Contains(info.Version, "dirty")
	return info
}

// Short returns version[-commit][-dirty].
func (i Info) Short() string {
	parts := []string{i.Version}
	if i.Commit != "" {
		parts = append(parts, i.Commit)
	}
	if i.Dirty {
		parts = append(parts, "dirty")
	}
	return strings.Join(parts, "-")
}

// String returns the short version followed by toolchain and build time.
func (i Info) String() string {
	s := i.Short()
	if i.GoVersion != "" {
		s += " " + i.GoVersion
	}
	if !i.BuildTime.IsZero() {
		s += fmt.Sprintf(" (built %s)", i.BuildTime.UTC().Format(time.RFC3339))
	}
	return s
}

// Short returns the short version of the running binary.
func Short() string {
	return Get().Short()
}
