package buglink

import (
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/gopatchy/buglink/pkg/errors"
	"github.com/rs/zerolog"
)

// Builder accumulates report configuration: the GitHub owner/repo, the
// template registry, and presentation options. Methods chain; the first
// error is remembered and returned by [Builder.Handle] or [Builder.Install],
// after which further calls are no-ops.
type Builder struct {
	owner     string
	repo      string
	templates map[string]*Template
	mode      HyperlinkMode
	supports  *bool
	out       io.Writer
	log       *zerolog.Logger
	err       error
}

// New starts a report configuration for github.com/owner/repo.
func New(owner, repo string) *Builder {
	return &Builder{
		owner:     owner,
		repo:      repo,
		templates: map[string]*Template{},
	}
}

func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}

	return b
}

// Owner replaces the GitHub owner, for callers that override loaded
// configuration.
func (b *Builder) Owner(owner string) *Builder {
	b.owner = owner
	return b
}

// Repo replaces the GitHub repository.
func (b *Builder) Repo(repo string) *Builder {
	b.repo = repo
	return b
}

// AddTemplate registers t under name. Registering a name twice fails the
// build with ErrDuplicateTemplate; the first registration is kept. The
// builder stores a copy, so later changes to t have no effect.
func (b *Builder) AddTemplate(name string, t *Template) *Builder {
	if b.err != nil {
		return b
	}

	if _, found := b.templates[name]; found {
		return b.fail(fmt.Errorf("%s: %w", name, errors.ErrDuplicateTemplate))
	}

	b.templates[name] = t.clone()

	return b
}

// AddTemplateFile parses raw template file content ([ParseTemplateFile]) and
// registers the result under name.
func (b *Builder) AddTemplateFile(name, content string, labels ...string) *Builder {
	if b.err != nil {
		return b
	}

	t, err := ParseTemplateFile(content, labels...)
	if err != nil {
		return b.fail(fmt.Errorf("%s: %w", name, err))
	}

	return b.AddTemplate(name, t)
}

// AddTemplateFS reads path from fsys and registers it as a template file.
func (b *Builder) AddTemplateFS(fsys fs.FS, name, path string, labels ...string) *Builder {
	if b.err != nil {
		return b
	}

	t, err := LoadTemplateFile(fsys, path, labels...)
	if err != nil {
		return b.fail(fmt.Errorf("%s: %w", name, err))
	}

	return b.AddTemplate(name, t)
}

// Hyperlinks sets the hyperlink mode. The default is [HyperlinkAuto].
func (b *Builder) Hyperlinks(mode HyperlinkMode) *Builder {
	b.mode = mode
	return b
}

// HyperlinkSupport pins the Auto-mode capability signal instead of probing
// the environment at report time.
func (b *Builder) HyperlinkSupport(supported bool) *Builder {
	b.supports = &supported
	return b
}

// Output sets the diagnostic sink. The default is os.Stderr.
func (b *Builder) Output(w io.Writer) *Builder {
	b.out = w
	return b
}

// Logger sets the structured logger. The default is controlled by the
// BUGLINK_LOG environment variable.
func (b *Builder) Logger(l zerolog.Logger) *Builder {
	b.log = &l
	return b
}

// Handle finalizes the configuration into an explicit [Handle].
func (b *Builder) Handle() (*Handle, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.owner == "" || b.repo == "" {
		return nil, fmt.Errorf("%q/%q: %w", b.owner, b.repo, errors.ErrEmptyOwnerRepo)
	}

	templates := map[string]*Template{}
	for name, t := range b.templates {
		templates[name] = t
	}

	out := b.out
	if out == nil {
		out = os.Stderr
	}

	log := defaultLogger()
	if b.log != nil {
		log = *b.log
	}

	return &Handle{
		owner:    b.owner,
		repo:     b.repo,
		registry: &Registry{templates: templates},
		mode:     b.mode,
		supports: b.supports,
		out:      out,
		log:      log,
	}, nil
}

// Install finalizes the configuration and installs the handle as the
// process-wide ambient configuration used by [Report] and [URL]. Exactly one
// Install succeeds per process; later attempts fail with
// ErrAlreadyInitialized and leave the installed handle intact.
func (b *Builder) Install() error {
	h, err := b.Handle()
	if err != nil {
		return err
	}

	if !ambient.CompareAndSwap(nil, h) {
		return errors.ErrAlreadyInitialized
	}

	return nil
}
