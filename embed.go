package buglink

import _ "embed"

//go:embed docs/usage.md
var usageData []byte

// Usage returns the embedded usage documentation, served by buglink-mcp.
func Usage() string {
	return string(usageData)
}
