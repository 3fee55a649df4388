package buglink

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// SupportsHyperlinks reports whether stderr likely renders OSC 8 hyperlinks:
// stderr must be a terminal and the environment must identify a capable
// terminal family. This is the default capability signal consumed by
// [HyperlinkAuto] handles; pin it with [Builder.HyperlinkSupport] instead in
// environments where probing is unavailable or wrong.
func SupportsHyperlinks() bool {
	return term.IsTerminal(int(os.Stderr.Fd())) && supportsHyperlinksEnv(os.Getenv)
}

func supportsHyperlinksEnv(getenv func(string) string) bool {
	t := getenv("TERM")
	if strings.Contains(t, "xterm") || strings.Contains(t, "screen") || strings.Contains(t, "tmux") {
		return true
	}

	switch getenv("TERM_PROGRAM") {
	case "iTerm.app", "WezTerm", "Alacritty", "Windows Terminal":
		return true
	}

	return getenv("VSCODE_INJECTION") != ""
}
