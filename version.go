package coverart

import (
	"runtime"

	"github.com/simonhull/coverart/internal/taglib"
)

// Version is the semantic version of the coverart library.
const Version = "0.1.0"

// GetVersion returns Version.
func GetVersion() string {
	return Version
}

// VersionInfo describes the build of the library and the TagLib it links.
type VersionInfo struct {
	Version       string // semantic version, e.g. "0.1.0"
	GitCommit     string // -ldflags, else "unknown"
	BuildTime     string // -ldflags, else "unknown"
	GoVersion     string // -ldflags, else runtime.Version()
	TagLibVersion string // TagLib headers the shim was compiled against
}

// GetVersionInfo returns build details.
//
// Stamp a release build with:
//
//	go build -ldflags="-X github.com/simonhull/coverart.gitCommit=$(git rev-parse HEAD) \
//	  -X github.com/simonhull/coverart.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ) \
//	  -X github.com/simonhull/coverart.goVersion=$(go version | awk '{print $3}')"
func GetVersionInfo() VersionInfo {
	goVer := goVersion
	if goVer == "unknown" {
		goVer = runtime.Version()
	}

	return VersionInfo{
		Version:       Version,
		GitCommit:     gitCommit,
		BuildTime:     buildTime,
		GoVersion:     goVer,
		TagLibVersion: TagLibVersion(),
	}
}

// TagLibVersion returns the TagLib version the binding was compiled
// against, e.g. "2.0.2".
func TagLibVersion() string {
	return taglib.Version()
}

// Set with -ldflags -X.
var (
	gitCommit = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)
