package grammar

import (
	"slices"
	"strings"

	"github.com/ghettovoice/abnf"

	"github.com/keyarea/sip2json-sub001/internal/util"
)

// Params maps a parameter name to the list of its values.
// The names are case-insensitive, valueless parameters have an empty value.
type Params map[string][]string

// Get returns values associated with the given name.
func (ps Params) Get(name string) []string { return ps[util.LCase(name)] }

// First returns the first value of the parameter.
func (ps Params) First(name string) (string, bool) {
	v := ps[util.LCase(name)]
	if len(v) == 0 {
		return "", false
	}
	return v[0], true
}

// Last returns the last value of the parameter.
func (ps Params) Last(name string) (string, bool) {
	v := ps[util.LCase(name)]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

// Has checks whether the parameter is present.
func (ps Params) Has(name string) bool {
	_, ok := ps[util.LCase(name)]
	return ok
}

// Set replaces the parameter values with value.
func (ps Params) Set(name, value string) Params {
	ps[util.LCase(name)] = []string{value}
	return ps
}

// Append adds value to the parameter values.
func (ps Params) Append(name, value string) Params {
	name = util.LCase(name)
	ps[name] = append(ps[name], value)
	return ps
}

// Clone returns a deep copy of the params.
func (ps Params) Clone() Params {
	if ps == nil {
		return nil
	}
	ps2 := make(Params, len(ps))
	for k, vs := range ps {
		ps2[k] = slices.Clone(vs)
	}
	return ps2
}

// String renders the params sorted by name, each prefixed with ';'.
func (ps Params) String() string { return ps.render(';', true) }

func (ps Params) render(sep byte, leading bool) string {
	if len(ps) == 0 {
		return ""
	}

	keys := make([]string, 0, len(ps))
	for k := range ps {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sb strings.Builder
	first := true
	for _, k := range keys {
		for _, v := range ps[k] {
			if leading || !first {
				sb.WriteByte(sep)
			}
			first = false
			sb.WriteString(k)
			if v == "" {
				continue
			}
			sb.WriteByte('=')
			if needsQuote(v) {
				sb.WriteString(Quote(v))
			} else {
				sb.WriteString(v)
			}
		}
	}
	return sb.String()
}

// buildParams collects generic-param descendants of n.
// It returns nil if there are none.
func buildParams(n *abnf.Node) Params {
	nodes := n.GetNodes("generic-param")
	if len(nodes) == 0 {
		return nil
	}

	ps := make(Params, len(nodes))
	for _, pn := range nodes {
		var val string
		if vn, ok := pn.GetNode("gen-value"); ok && !vn.IsEmpty() {
			val = Unquote(vn.String())
		}
		ps.Append(pn.Children[0].String(), val)
	}
	return ps
}
