package buglink

import "strings"

// IssueURL assembles the GitHub new-issue URL for owner/repo with pre-filled
// title, body, and labels. The title and body parameters are always present,
// even when empty. labels is omitted when empty; otherwise the values are
// joined with ',' and encoded as a single parameter value.
//
// Percent-decoding each query component recovers the exact input strings.
func IssueURL(owner, repo, title, body string, labels []string) string {
	b := strings.Builder{}

	b.WriteString("https://github.com/")
	b.WriteString(owner)
	b.WriteString("/")
	b.WriteString(repo)
	b.WriteString("/issues/new?title=")
	b.WriteString(queryEscape(title))
	b.WriteString("&body=")
	b.WriteString(queryEscape(body))

	if len(labels) > 0 {
		b.WriteString("&labels=")
		b.WriteString(queryEscape(strings.Join(labels, ",")))
	}

	return b.String()
}
