package grammar

import (
	"fmt"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"github.com/ghettovoice/abnf"
)

const lwsChars = " \t\r\n"

func trimLWS(s string) string { return strings.Trim(s, lwsChars) }

// parseNode matches the whole input against op and builds a value from the best node.
// The node is only valid inside build.
func parseNode[T any](op abnf.Operator, s string, build func(n *abnf.Node) (T, error)) (T, error) {
	var zero T

	s = trimLWS(s)
	if len(s) == 0 {
		return zero, errtrace.Wrap(ErrEmptyInput)
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return zero, errtrace.Wrap(newMalformedInputErr(err))
	}

	n := ns.Best()
	if nl, il := n.Len(), len(s); nl < il {
		return zero, errtrace.Wrap(newMalformedInputErr("node length %d < input length %d", nl, il))
	}
	return errtrace.Wrap2(build(n))
}

// matches reports whether op matches the whole s.
func matches(op abnf.Operator, s string) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := op([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// mustGetNode returns the descendant node with the given key.
// It panics if the node is missing, which means the rule and the builder disagree.
func mustGetNode(n *abnf.Node, k string) *abnf.Node {
	sn, ok := n.GetNode(k)
	if !ok {
		panic(fmt.Errorf("get node %q from node %q: %w", k, n.Key, ErrNodeNotFound))
	}
	return sn
}

// nodeText returns the text of the descendant node, empty if it is missing or unmatched.
func nodeText(n *abnf.Node, k string) string {
	if sn, ok := n.GetNode(k); ok && !sn.IsEmpty() {
		return sn.String()
	}
	return ""
}

func buildUint32(n *abnf.Node) (uint32, error) {
	v, err := strconv.ParseUint(n.String(), 10, 32)
	if err != nil {
		return 0, errtrace.Wrap(newMalformedInputErr(err))
	}
	return uint32(v), nil
}

func parseUint32(s string) (uint32, error) {
	return errtrace.Wrap2(parseNode(delta, s, buildUint32))
}
