package buglink

import (
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/gopatchy/buglink/internal/format"
	"github.com/magiconair/properties"
)

// Config mirrors the registry config file schema (yaml, json, or toml,
// chosen by extension).
type Config struct {
	Owner      string                    `json:"owner" yaml:"owner" toml:"owner"`
	Repo       string                    `json:"repo" yaml:"repo" toml:"repo"`
	Hyperlinks string                    `json:"hyperlinks,omitempty" yaml:"hyperlinks,omitempty" toml:"hyperlinks,omitempty"`
	Templates  map[string]ConfigTemplate `json:"templates" yaml:"templates" toml:"templates"`
}

// ConfigTemplate is one template entry: either inline title/body patterns or
// a template file path (relative to the config file).
type ConfigTemplate struct {
	Title  string   `json:"title,omitempty" yaml:"title,omitempty" toml:"title,omitempty"`
	Body   string   `json:"body,omitempty" yaml:"body,omitempty" toml:"body,omitempty"`
	File   string   `json:"file,omitempty" yaml:"file,omitempty" toml:"file,omitempty"`
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty" toml:"labels,omitempty"`
}

// LoadConfig reads a registry config file from fsys and returns the
// populated [Builder], ready for further options or finalization. Template
// file paths in the config resolve relative to the config file's directory.
func LoadConfig(fsys fs.FS, cfgPath string) (*Builder, error) {
	data, err := fs.ReadFile(fsys, cfgPath)
	if err != nil {
		return nil, err
	}

	ft, err := format.Get(format.Ext(cfgPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfgPath, err)
	}

	cfg := &Config{}

	err = ft.Unmarshal(data, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cfgPath, err)
	}

	b := New(cfg.Owner, cfg.Repo)

	if cfg.Hyperlinks != "" {
		mode, err := ParseHyperlinkMode(cfg.Hyperlinks)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cfgPath, err)
		}

		b.Hyperlinks(mode)
	}

	names := make([]string, 0, len(cfg.Templates))
	for name := range cfg.Templates {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ct := cfg.Templates[name]

		if ct.File != "" {
			b.AddTemplateFS(fsys, name, path.Join(path.Dir(cfgPath), ct.File), ct.Labels...)
			continue
		}

		b.AddTemplate(name, NewTemplate(ct.Title, ct.Body).WithLabels(ct.Labels...))
	}

	return b, nil
}

// LoadParams reads a flat key/value parameter file from fsys. properties
// files keep their line order; map-based formats (yaml, json, toml) are
// ordered by sorted key, and values are rendered with fmt.Sprint.
func LoadParams(fsys fs.FS, paramsPath string) (Params, error) {
	data, err := fs.ReadFile(fsys, paramsPath)
	if err != nil {
		return nil, err
	}

	if format.Ext(paramsPath) == "properties" {
		return orderedParams(data)
	}

	ft, err := format.Get(format.Ext(paramsPath))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", paramsPath, err)
	}

	m := map[string]any{}

	err = ft.Unmarshal(data, &m)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", paramsPath, err)
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	ret := make(Params, 0, len(keys))
	for _, key := range keys {
		ret = append(ret, P(key, m[key]))
	}

	return ret, nil
}

func orderedParams(data []byte) (Params, error) {
	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return nil, err
	}

	ret := make(Params, 0, len(p.Keys()))
	for _, key := range p.Keys() {
		ret = append(ret, P(key, p.GetString(key, "")))
	}

	return ret, nil
}
