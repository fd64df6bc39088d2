package sip

import (
	"iter"
	"slices"
	"strings"

	"github.com/keyarea/sip2json-sub001/grammar"
	"github.com/keyarea/sip2json-sub001/internal/util"
)

var headerizeExceptions = map[string]string{
	"Call-Id":          "Call-ID",
	"Cseq":             "CSeq",
	"Www-Authenticate": "WWW-Authenticate",
}

// Headerize converts name to the canonical header name.
// The name is lower-cased, underscores become hyphens and every
// hyphen-separated part is title-cased, e.g. "record_route" converts to "Record-Route".
// Call-ID, CSeq and WWW-Authenticate keep their conventional spelling.
func Headerize(name string) string {
	parts := strings.Split(strings.ReplaceAll(util.LCase(util.TrimSP(name)), "_", "-"), "-")
	for i, p := range parts {
		if p != "" {
			parts[i] = util.UCase(p[:1]) + p[1:]
		}
	}
	name = strings.Join(parts, "-")
	if n, ok := headerizeExceptions[name]; ok {
		return n
	}
	return name
}

// ruleName returns the grammar rule key of the canonical header name.
func ruleName(name string) string { return strings.ReplaceAll(name, "-", "_") }

type cellState uint8

const (
	cellUnparsed cellState = iota
	cellParsed
	cellFailed
)

// headerCell is a single header occurrence.
// A cell in cellFailed state is never reachable from [Headers].
type headerCell struct {
	raw    string
	state  cellState
	parsed grammar.Value
}

func (c *headerCell) setParsed(v grammar.Value) {
	c.parsed = v
	c.state = cellParsed
}

// Headers is an ordered multimap of header fields keyed by canonical name.
// Both names and occurrences keep the arrival order.
// The zero value is an empty store ready to use.
type Headers struct {
	names []string
	cells map[string][]*headerCell
}

func (hs *Headers) append(name string, c *headerCell) {
	if hs.cells == nil {
		hs.cells = make(map[string][]*headerCell)
	}
	if _, ok := hs.cells[name]; !ok {
		hs.names = append(hs.names, name)
	}
	hs.cells[name] = append(hs.cells[name], c)
}

// Add appends a raw header value.
func (hs *Headers) Add(name, value string) {
	hs.append(canonicName(name), &headerCell{raw: value})
}

// addParsed appends a raw header value with an already parsed value.
func (hs *Headers) addParsed(name, value string, v grammar.Value) {
	hs.append(canonicName(name), &headerCell{raw: value, state: cellParsed, parsed: v})
}

// Set replaces all occurrences of the header with a single raw value.
func (hs *Headers) Set(name, value string) {
	name = canonicName(name)
	hs.Del(name)
	hs.append(name, &headerCell{raw: value})
}

// Get returns the raw value of the first header occurrence.
func (hs *Headers) Get(name string) (string, bool) {
	cells := hs.cells[canonicName(name)]
	if len(cells) == 0 {
		return "", false
	}
	return cells[0].raw, true
}

// Values returns raw values of all header occurrences.
func (hs *Headers) Values(name string) []string {
	cells := hs.cells[canonicName(name)]
	if len(cells) == 0 {
		return nil
	}
	vals := make([]string, len(cells))
	for i, c := range cells {
		vals[i] = c.raw
	}
	return vals
}

// Has checks whether the header is present.
func (hs *Headers) Has(name string) bool { return hs.Count(name) > 0 }

// Count returns the number of header occurrences.
func (hs *Headers) Count(name string) int { return len(hs.cells[canonicName(name)]) }

// Names returns canonical names of present headers in arrival order.
func (hs *Headers) Names() []string { return slices.Clone(hs.names) }

// Len returns the total number of header occurrences.
func (hs *Headers) Len() int {
	var n int
	for _, cells := range hs.cells {
		n += len(cells)
	}
	return n
}

// Del removes all occurrences of the header.
func (hs *Headers) Del(name string) {
	name = canonicName(name)
	if _, ok := hs.cells[name]; !ok {
		return
	}
	delete(hs.cells, name)
	hs.names = slices.DeleteFunc(hs.names, func(n string) bool { return n == name })
}

// All returns an iterator over all header occurrences as canonical name and raw value pairs.
// Occurrences of the same name are yielded together, names follow the arrival order.
func (hs *Headers) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, name := range hs.names {
			for _, c := range hs.cells[name] {
				if !yield(name, c.raw) {
					return
				}
			}
		}
	}
}

// cell returns the idx-th occurrence of the canonical header name.
func (hs *Headers) cell(name string, idx int) *headerCell {
	cells := hs.cells[name]
	if idx < 0 || idx >= len(cells) {
		return nil
	}
	return cells[idx]
}

// evict marks the idx-th occurrence of the canonical header name as failed and removes it.
func (hs *Headers) evict(name string, idx int) {
	cells := hs.cells[name]
	if idx < 0 || idx >= len(cells) {
		return
	}
	cells[idx].state = cellFailed
	cells[idx].parsed = nil
	if len(cells) == 1 {
		hs.Del(name)
		return
	}
	hs.cells[name] = slices.Delete(cells, idx, idx+1)
}
