// Package format provides the serialization codecs shared by configuration
// and parameter file loading.
package format

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/gopatchy/buglink/pkg/errors"
	"github.com/pelletier/go-toml/v2"
	xmaps "golang.org/x/exp/maps"
)

// Format handles marshaling and unmarshaling for a specific file format.
type Format struct {
	Marshal   func(any) ([]byte, error)
	Unmarshal func([]byte, any) error
}

var formatByExtension = map[string]Format{
	"json": {
		Marshal:   jsonMarshal,
		Unmarshal: json.Unmarshal,
	},
	"json-pretty": {
		Marshal:   jsonMarshalPretty,
		Unmarshal: json.Unmarshal,
	},
	"toml": {
		Marshal:   toml.Marshal,
		Unmarshal: toml.Unmarshal,
	},
	"yaml": {
		Marshal:   yamlMarshal,
		Unmarshal: yamlUnmarshal,
	},
	"yml": {
		Marshal:   yamlMarshal,
		Unmarshal: yamlUnmarshal,
	},
	"properties": {
		Marshal:   propertiesMarshal,
		Unmarshal: propertiesUnmarshal,
	},
}

// Get retrieves a format by name from the registry.
func Get(name string) (*Format, error) {
	ft, found := formatByExtension[name]
	if !found {
		return nil, fmt.Errorf("%s: %w", name, errors.ErrUnknownFormat)
	}

	return &ft, nil
}

// Extensions returns all supported format extensions, sorted.
func Extensions() []string {
	exts := xmaps.Keys(formatByExtension)
	slices.Sort(exts)

	return exts
}

// Ext returns path's extension without the leading dot.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

func jsonMarshal(v any) ([]byte, error) {
	out, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}

func jsonMarshalPretty(v any) ([]byte, error) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}

	return append(out, '\n'), nil
}
