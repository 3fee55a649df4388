package buglink

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/gopatchy/buglink/pkg/errors"
)

// ParseTemplateFile converts raw template file content into a [Template].
// The first line is the title pattern; the remaining lines, joined and
// trimmed, are the body pattern. Windows line endings are accepted.
func ParseTemplateFile(content string, labels ...string) (*Template, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")

	if content == "" {
		return nil, fmt.Errorf("empty content: %w", errors.ErrInvalidTemplateFile)
	}

	lines := strings.Split(content, "\n")

	title := strings.TrimSpace(lines[0])
	if title == "" {
		return nil, fmt.Errorf("missing title on first line: %w", errors.ErrInvalidTemplateFile)
	}

	body := ""
	if len(lines) > 1 {
		body = strings.TrimSpace(strings.Join(lines[1:], "\n"))
	}

	return NewTemplate(title, body).WithLabels(labels...), nil
}

// LoadTemplateFile reads path from fsys and parses it with
// [ParseTemplateFile].
func LoadTemplateFile(fsys fs.FS, path string, labels ...string) (*Template, error) {
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, err
	}

	return ParseTemplateFile(string(data), labels...)
}
