package buglink

import "fmt"

// Param is one named value supplied to a report-generation call.
type Param struct {
	Key   string
	Value string
}

// P builds a [Param], rendering value with fmt.Sprint.
func P(key string, value any) Param {
	return Param{Key: key, Value: fmt.Sprint(value)}
}

// Params is an ordered parameter list. Order is preserved in diagnostic
// output; lookups are last-wins on duplicate keys.
type Params []Param

// Get returns the value for key and whether it was supplied.
func (ps Params) Get(key string) (string, bool) {
	for i := len(ps) - 1; i >= 0; i-- {
		if ps[i].Key == key {
			return ps[i].Value, true
		}
	}

	return "", false
}
