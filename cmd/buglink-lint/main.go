package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	"github.com/gopatchy/buglink"
	"github.com/gopatchy/buglink/internal/format"
	"github.com/gopatchy/buglink/pkg/version"
	"github.com/jessevdk/go-flags"
)

type options struct {
	Config     flags.Filename  `short:"c" long:"config" description:"registry config file (yaml, json, or toml)"`
	ParamsFile *flags.Filename `short:"p" long:"params" description:"parameter file to check against the templates"`
	Skeleton   bool            `short:"s" long:"skeleton" description:"print a parameter file skeleton instead of checking"`
	Format     string          `short:"f" long:"format" description:"skeleton output format" choice:"properties" choice:"yaml" choice:"json" default:"properties"`
	Version    bool            `short:"V" long:"version" description:"print version and exit"`

	Positional struct {
		Templates []string `positional-arg-name:"template"`
	} `positional-args:"yes"`
}

func main() {
	debug.SetGCPercent(-1)

	opts := &options{}

	fp := flags.NewParser(opts, flags.Default)
	fp.LongDescription = `
buglink-lint validates a buglink registry config ahead of runtime: it checks
template definitions, and with --params it verifies that a parameter file
covers every template placeholder. One line per missing placeholder; exit
status 1 when anything is missing.`

	_, err := fp.Parse()
	if err != nil {
		os.Exit(1)
	}

	version.Print(opts.Version)

	if opts.Config == "" {
		fp.WriteHelp(os.Stderr)
		os.Exit(1)
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

	// Handle() surfaces duplicate names, bad template files, and a missing
	// owner/repo even when no completeness check follows.
	h, err := b.Handle()
	if err != nil {
		fatal(err)
	}

	r := h.Registry()

	targets := opts.Positional.Templates
	if len(targets) == 0 {
		targets = r.Names()
	}

	templates := make([]*buglink.Template, 0, len(targets))
	for _, name := range targets {
		t, found := r.Template(name)
		if !found {
			fatal(fmt.Errorf("%s: %w", name, buglink.ErrUnknownTemplate))
		}

		templates = append(templates, t)
	}

	if opts.Skeleton {
		err = printSkeleton(os.Stdout, templates, opts.Format)
		if err != nil {
			fatal(err)
		}

		return
	}

	if opts.ParamsFile == nil {
		return
	}

	proot, err := os.OpenRoot(filepath.Dir(string(*opts.ParamsFile)))
	if err != nil {
		fatal(err)
	}
	defer proot.Close()

	params, err := buglink.LoadParams(proot.FS(), filepath.Base(string(*opts.ParamsFile)))
	if err != nil {
		fatal(err)
	}

	missing := missingParams(targets, templates, params)
	for _, line := range missing {
		fmt.Println(line)
	}

	if len(missing) > 0 {
		os.Exit(1)
	}
}

// missingParams returns one line per template placeholder that params does
// not cover, in target order.
func missingParams(targets []string, templates []*buglink.Template, params buglink.Params) []string {
	lines := []string{}

	for i, name := range targets {
		for _, ph := range templates[i].Placeholders() {
			if _, covered := params.Get(ph); !covered {
				lines = append(lines, fmt.Sprintf("%s: %s: missing parameter", name, ph))
			}
		}
	}

	return lines
}

// printSkeleton emits an empty parameter file covering every placeholder of
// the given templates, ready to fill in.
func printSkeleton(w io.Writer, templates []*buglink.Template, formatName string) error {
	m := map[string]any{}

	for _, t := range templates {
		for _, ph := range t.Placeholders() {
			m[ph] = ""
		}
	}

	ft, err := format.Get(formatName)
	if err != nil {
		return err
	}

	out, err := ft.Marshal(m)
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
