package version

import (
	"fmt"
	"os"
	"runtime/debug"
)

// Get returns the embedded build information, or nil when unavailable.
func Get() *debug.BuildInfo {
	bi, _ := debug.ReadBuildInfo()
	return bi
}

// Print writes build information to stdout and exits when requested by flag
// or by the BUGLINK_VERSION environment variable.
func Print(requested bool) {
	if !requested && os.Getenv("BUGLINK_VERSION") == "" {
		return
	}

	bi := Get()
	if bi == nil {
		fmt.Fprintf(os.Stderr, "ReadBuildInfo() failed\n")
		os.Exit(1)
	}

	fmt.Printf("%s", bi)
	os.Exit(0)
}
