package format

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/magiconair/properties"
)

// propertiesMarshal writes v, which must be a map[string]any, as key=value
// lines sorted by key. Nested map keys are dotted; lists are comma-joined.
func propertiesMarshal(v any) ([]byte, error) {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("properties format requires a map[string]any, got %T", v)
	}

	p := properties.NewProperties()
	p.WriteSeparator = "="

	err := flattenMap("", obj, p)
	if err != nil {
		return nil, err
	}

	buf := bytes.Buffer{}

	_, err = p.Write(&buf, properties.UTF8)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func flattenMap(prefix string, m map[string]any, p *properties.Properties) error {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := m[key].(type) {
		case string:
			p.Set(fullKey, v)

		case map[string]any:
			err := flattenMap(fullKey, v, p)
			if err != nil {
				return err
			}

		case []any:
			values := make([]string, 0, len(v))
			for _, item := range v {
				values = append(values, fmt.Sprintf("%v", item))
			}
			p.Set(fullKey, strings.Join(values, ","))

		default:
			p.Set(fullKey, fmt.Sprintf("%v", v))
		}
	}

	return nil
}

// propertiesUnmarshal fills v, which must be a *map[string]any, with the
// file's pairs. Keys are kept verbatim (no dot nesting); values are strings.
func propertiesUnmarshal(data []byte, v any) error {
	out, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("properties format requires a *map[string]any, got %T", v)
	}

	p, err := properties.Load(data, properties.UTF8)
	if err != nil {
		return err
	}

	m := map[string]any{}
	for _, key := range p.Keys() {
		m[key] = p.GetString(key, "")
	}

	*out = m

	return nil
}
