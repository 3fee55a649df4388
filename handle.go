package buglink

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/gopatchy/buglink/pkg/errors"
	"github.com/rs/zerolog"
)

// Handle bundles an owner/repo, a template [Registry], and presentation
// settings into one explicitly owned value. Handles are immutable after
// build and safe for concurrent use; independent handles share no state.
type Handle struct {
	owner    string
	repo     string
	registry *Registry
	mode     HyperlinkMode
	supports *bool
	out      io.Writer
	log      zerolog.Logger
}

// Owner returns the configured GitHub owner.
func (h *Handle) Owner() string {
	return h.owner
}

// Repo returns the configured GitHub repository.
func (h *Handle) Repo() string {
	return h.repo
}

// Registry returns the handle's template registry.
func (h *Handle) Registry() *Registry {
	return h.registry
}

// Mode returns the configured hyperlink mode.
func (h *Handle) Mode() HyperlinkMode {
	return h.mode
}

// URL generates the issue URL for the named template. The returned URL is
// always the plain form, with no terminal escapes. It fails with
// ErrUnknownTemplate for unregistered names and ErrMissingParameter when
// params does not cover every placeholder; extra params are ignored.
func (h *Handle) URL(name string, params ...Param) (string, error) {
	t, found := h.registry.Template(name)
	if !found {
		return "", fmt.Errorf("%s: %w", name, errors.ErrUnknownTemplate)
	}

	title, body, err := t.fill(name, Params(params))
	if err != nil {
		return "", err
	}

	return IssueURL(h.owner, h.repo, title, body, t.labels), nil
}

// Generate returns the issue URL and the diagnostic block for a report at
// file:line, without writing anything. On generation failure the block
// describes the error and the returned error is non-nil.
func (h *Handle) Generate(file string, line int, name string, params ...Param) (string, string, error) {
	url, err := h.URL(name, params...)
	return url, h.diagnostic(file, line, name, Params(params), url, err), err
}

// Report generates the issue URL for the named template, writes the
// diagnostic block for the calling site to the handle's output sink, and
// returns the URL.
func (h *Handle) Report(name string, params ...Param) (string, error) {
	file, line := callSite(1)
	return h.ReportAt(file, line, name, params...)
}

// ReportAt is [Handle.Report] with an explicit call site, for callers that
// capture their own location.
func (h *Handle) ReportAt(file string, line int, name string, params ...Param) (string, error) {
	url, block, err := h.Generate(file, line, name, params...)

	// Sink failures are swallowed; reporting must never take down the host.
	_, _ = io.WriteString(h.out, block)

	if err != nil {
		h.log.Warn().Err(err).Str("template", name).Msg("bug report failed")
		return "", err
	}

	h.log.Debug().
		Str("template", name).
		Str("site", fmt.Sprintf("%s:%d", file, line)).
		Msg("bug report generated")

	return url, nil
}

// diagnostic renders the fixed-layout block: a marker line naming the call
// site, the template name, the supplied parameters in call order, and the
// report action line, followed by a blank line.
func (h *Handle) diagnostic(file string, line int, name string, params Params, url string, genErr error) string {
	b := strings.Builder{}

	fmt.Fprintf(&b, "🐛 BUG ENCOUNTERED in %s:%d\n", file, line)

	if genErr != nil {
		fmt.Fprintf(&b, "   Error generating bug report: %s\n\n", genErr)
		return b.String()
	}

	fmt.Fprintf(&b, "   Template: %s\n", name)

	if len(params) > 0 {
		b.WriteString("   Parameters:\n")

		for _, p := range params {
			fmt.Fprintf(&b, "     %s: %s\n", p.Key, p.Value)
		}
	}

	fmt.Fprintf(&b, "   %s\n\n", Present(h.mode, url, "File a bug report", h.linkSignal()))

	return b.String()
}

// linkSignal resolves the Auto capability signal: a pinned value wins,
// otherwise the environment probe runs at report time.
func (h *Handle) linkSignal() *bool {
	if h.mode != HyperlinkAuto || h.supports != nil {
		return h.supports
	}

	v := SupportsHyperlinks()

	return &v
}

func callSite(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return "unknown", 0
	}

	return file, line
}
