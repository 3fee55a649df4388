package buglink

import (
	"fmt"

	"github.com/gopatchy/buglink/pkg/errors"
)

// HyperlinkMode controls whether report links are wrapped in terminal
// hyperlink escape sequences.
type HyperlinkMode int

const (
	// HyperlinkAuto defers to the environment capability signal.
	HyperlinkAuto HyperlinkMode = iota

	// HyperlinkAlways emits escape sequences unconditionally.
	HyperlinkAlways

	// HyperlinkNever emits plain text unconditionally.
	HyperlinkNever
)

func (m HyperlinkMode) String() string {
	switch m {
	case HyperlinkAuto:
		return "auto"

	case HyperlinkAlways:
		return "always"

	case HyperlinkNever:
		return "never"
	}

	return fmt.Sprintf("HyperlinkMode(%d)", int(m))
}

// ParseHyperlinkMode converts a config or flag value ("auto", "always",
// "never") into a [HyperlinkMode].
func ParseHyperlinkMode(s string) (HyperlinkMode, error) {
	switch s {
	case "auto":
		return HyperlinkAuto, nil

	case "always":
		return HyperlinkAlways, nil

	case "never":
		return HyperlinkNever, nil
	}

	return HyperlinkAuto, fmt.Errorf("%s: %w", s, errors.ErrUnknownMode)
}

// UnmarshalText implements [encoding.TextUnmarshaler] for json and toml
// decoding. yaml.v3 bypasses TextUnmarshaler, so config loading calls
// [ParseHyperlinkMode] on a plain string instead.
func (m *HyperlinkMode) UnmarshalText(text []byte) error {
	mode, err := ParseHyperlinkMode(string(text))
	if err != nil {
		return err
	}

	*m = mode

	return nil
}

// TerminalHyperlink wraps text in the OSC 8 escape sequence that capable
// terminals render as a clickable link to url. The byte layout is fixed:
// ESC ] 8 ; ; url ESC \ text ESC ] 8 ; ; ESC \.
func TerminalHyperlink(url, text string) string {
	return "\x1b]8;;" + url + "\x1b\\" + text + "\x1b]8;;\x1b\\"
}

// Present renders the report action for url. Never yields "text: url";
// Always yields the [TerminalHyperlink] form. Auto follows supports, the
// environment capability signal; nil means no signal is available and is
// treated as unsupported.
func Present(mode HyperlinkMode, url, text string, supports *bool) string {
	linked := mode == HyperlinkAlways ||
		(mode == HyperlinkAuto && supports != nil && *supports)

	if linked {
		return TerminalHyperlink(url, text)
	}

	return text + ": " + url
}
