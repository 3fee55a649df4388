package buglink_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/gopatchy/buglink"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestIssueURL(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"https://github.com/u/r/issues/new?title=Crash%3A%20NPE&body=Err%3A%20NPE",
		buglink.IssueURL("u", "r", "Crash: NPE", "Err: NPE", nil))
}

func TestIssueURLEmptyValues(t *testing.T) {
	t.Parallel()

	// title and body are always present, even when empty.
	require.Equal(t,
		"https://github.com/acme/rocket/issues/new?title=&body=",
		buglink.IssueURL("acme", "rocket", "", "", nil))
}

func TestIssueURLLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"https://github.com/acme/rocket/issues/new?title=T&body=&labels=bug%2Cauto%20generated",
		buglink.IssueURL("acme", "rocket", "T", "", []string{"bug", "auto generated"}))

	// Empty label list omits the parameter entirely.
	require.Equal(t,
		"https://github.com/acme/rocket/issues/new?title=T&body=",
		buglink.IssueURL("acme", "rocket", "T", "", []string{}))
}

func TestIssueURLUnreserved(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"https://github.com/acme/rocket/issues/new?title=AZaz09-._~&body=",
		buglink.IssueURL("acme", "rocket", "AZaz09-._~", "", nil))
}

func TestIssueURLReserved(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"https://github.com/acme/rocket/issues/new?title=a%26b%3Dc%3Fd%2Fe%2Bf%25g&body=",
		buglink.IssueURL("acme", "rocket", "a&b=c?d/e+f%g", "", nil))
}

func TestIssueURLSpaceIsPercent20(t *testing.T) {
	t.Parallel()

	link := buglink.IssueURL("acme", "rocket", "a b", "c d", nil)
	require.Contains(t, link, "title=a%20b")
	require.Contains(t, link, "body=c%20d")
	require.NotContains(t, link, "+")
}

func TestIssueURLUnicode(t *testing.T) {
	t.Parallel()

	// Multi-byte runes encode per UTF-8 byte, uppercase hex.
	require.Equal(t,
		"https://github.com/acme/rocket/issues/new?title=h%C3%A9llo%20%F0%9F%90%9B&body=%E2%86%92",
		buglink.IssueURL("acme", "rocket", "héllo 🐛", "→", nil))
}

func TestIssueURLNewlines(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"https://github.com/acme/rocket/issues/new?title=T&body=line1%0Aline2",
		buglink.IssueURL("acme", "rocket", "T", "line1\nline2", nil))
}

func TestIssueURLRoundTrip(t *testing.T) {
	t.Parallel()

	title := "Crash: NPE & more? 100% {odd}\n\ttab"
	body := "expected=a+b\nactual=a b\n🐛 héllo"
	labels := []string{"bug", "auto generated", "p1"}

	u := lo.Must(url.Parse(buglink.IssueURL("acme", "rocket", title, body, labels)))
	require.Equal(t, "github.com", u.Host)
	require.Equal(t, "/acme/rocket/issues/new", u.Path)

	q := u.Query()
	require.Equal(t, title, q.Get("title"))
	require.Equal(t, body, q.Get("body"))
	require.Equal(t, strings.Join(labels, ","), q.Get("labels"))
}
