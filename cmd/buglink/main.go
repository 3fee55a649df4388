package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/gopatchy/buglink"
	"github.com/gopatchy/buglink/internal/format"
	"github.com/gopatchy/buglink/pkg/version"
	"github.com/jessevdk/go-flags"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

type options struct {
	Config      flags.Filename  `short:"c" long:"config" description:"registry config file (yaml, json, or toml)"`
	Owner       string          `long:"owner" description:"override the config owner"`
	Repo        string          `long:"repo" description:"override the config repository"`
	ParamsFile  *flags.Filename `short:"p" long:"params" description:"parameter file (properties, yaml, json, or toml)"`
	Link        *string         `short:"l" long:"link" description:"hyperlink mode" choice:"auto" choice:"always" choice:"never"`
	Interactive bool            `short:"i" long:"interactive" description:"prompt for missing parameters"`
	Quiet       bool            `short:"q" long:"quiet" description:"print only the URL"`
	List        bool            `long:"list" description:"list templates and their placeholders"`
	Format      string          `short:"f" long:"format" description:"list output format" choice:"yaml" choice:"json" choice:"json-pretty" default:"yaml"`
	Verbose     bool            `short:"v" long:"verbose" description:"enable verbose logging"`
	Version     bool            `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		Template string   `positional-arg-name:"template"`
		Params   []string `positional-arg-name:"key=value"`
	} `positional-args:"yes"`
}

func main() {
	debug.SetGCPercent(-1)

	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
buglink generates pre-filled GitHub new-issue URLs from registered bug report
templates. The diagnostic summary goes to stderr; the URL goes to stdout.

Related tools:
* buglink-lint
* buglink-mcp`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.Print(opts.Version)

	if opts.Config == "" {
		fp.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	logger := zerolog.Nop()
	if opts.Verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	root, err := os.OpenRoot(filepath.Dir(string(opts.Config)))
	if err != nil {
		fatal(err)
	}
	defer root.Close()

	b, err := buglink.LoadConfig(root.FS(), filepath.Base(string(opts.Config)))
	if err != nil {
		fatal(err)
	}

	b.Logger(logger)

	if opts.Owner != "" {
		b.Owner(opts.Owner)
	}

	if opts.Repo != "" {
		b.Repo(opts.Repo)
	}

	if opts.Link != nil {
		mode, err := buglink.ParseHyperlinkMode(*opts.Link)
		if err != nil {
			fatal(err)
		}

		b.Hyperlinks(mode)
	}

	h, err := b.Handle()
	if err != nil {
		fatal(err)
	}

	if opts.List {
		err = printList(os.Stdout, h, opts.Format)
		if err != nil {
			fatal(err)
		}

		return
	}

	if opts.Positional.Template == "" {
		fp.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	params, err := collectParams(opts)
	if err != nil {
		fatal(err)
	}

	if opts.Interactive {
		params, err = promptMissing(h, opts.Positional.Template, params)
		if err != nil {
			fatal(err)
		}
	}

	url, err := h.URL(opts.Positional.Template, params...)
	if err != nil {
		fatal(err)
	}

	if !opts.Quiet {
		printSummary(os.Stderr, h, opts.Positional.Template, params, url)
	}

	fmt.Println(url)
}

func collectParams(opts *options) (buglink.Params, error) {
	params := buglink.Params{}

	if opts.ParamsFile != nil {
		root, err := os.OpenRoot(filepath.Dir(string(*opts.ParamsFile)))
		if err != nil {
			return nil, err
		}
		defer root.Close()

		fileParams, err := buglink.LoadParams(root.FS(), filepath.Base(string(*opts.ParamsFile)))
		if err != nil {
			return nil, err
		}

		params = append(params, fileParams...)
	}

	for _, kv := range opts.Positional.Params {
		key, value, found := strings.Cut(kv, "=")
		if !found {
			return nil, fmt.Errorf("%s: expected key=value", kv)
		}

		params = append(params, buglink.P(key, value))
	}

	return params, nil
}

// promptMissing asks for each placeholder not yet covered by params. It
// requires a terminal on stdin so scripts fail fast instead of hanging.
func promptMissing(h *buglink.Handle, name string, params buglink.Params) (buglink.Params, error) {
	t, found := h.Registry().Template(name)
	if !found {
		// Let URL generation report the unknown template.
		return params, nil
	}

	missing := []string{}
	for _, ph := range t.Placeholders() {
		if _, covered := params.Get(ph); !covered {
			missing = append(missing, ph)
		}
	}

	if len(missing) == 0 {
		return params, nil
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, fmt.Errorf("interactive mode requires a terminal")
	}

	for _, ph := range missing {
		value := ""

		err := survey.AskOne(&survey.Input{Message: ph + ":"}, &value)
		if err != nil {
			return nil, err
		}

		params = append(params, buglink.P(ph, value))
	}

	return params, nil
}

func printSummary(w io.Writer, h *buglink.Handle, name string, params buglink.Params, url string) {
	fmt.Fprintf(w, "Template: %s\n", name)

	if len(params) > 0 {
		fmt.Fprintf(w, "Parameters:\n")

		for _, p := range params {
			fmt.Fprintf(w, "  %s: %s\n", p.Key, p.Value)
		}
	}

	sup := buglink.SupportsHyperlinks()
	fmt.Fprintf(w, "%s\n", buglink.Present(h.Mode(), url, "File a bug report", &sup))
}

type listEntry struct {
	Title        string   `json:"title" yaml:"title" toml:"title"`
	Body         string   `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
	Labels       []string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`
	Placeholders []string `json:"placeholders,omitempty" yaml:"placeholders,omitempty" toml:"placeholders,omitempty"`
}

func printList(w io.Writer, h *buglink.Handle, formatName string) error {
	entries := map[string]listEntry{}

	r := h.Registry()
	for _, name := range r.Names() {
		t, _ := r.Template(name)

		entries[name] = listEntry{
			Title:        t.Title(),
			Body:         t.Body(),
			Labels:       t.Labels(),
			Placeholders: t.Placeholders(),
		}
	}

	ft, err := format.Get(formatName)
	if err != nil {
		return err
	}

	out, err := ft.Marshal(entries)
	if err != nil {
		return err
	}

	_, err = w.Write(out)

	return err
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}
