package query

import "strings"

// Label matching operators as they appear in PromQL.
const (
	opEqual     = "="
	opNotEqual  = "!="
	opRegexp    = "=~"
	opNotRegexp = "!~"
)

// labelMatcher is a single constraint on a label value.
type labelMatcher struct {
	op    string
	name  string
	value string
}

// labelMatchers is an ordered matcher list. Insertion order is kept so
// rendering is deterministic. Repeating a label name is legal PromQL
// and not checked here, neither is regex validity, the server is the
// one validating those at evaluation time.
type labelMatchers []labelMatcher

func (ms labelMatchers) String() string {
	var b strings.Builder
	for i, m := range ms {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(m.name)
		b.WriteString(m.op)
		b.WriteByte('"')
		b.WriteString(m.value)
		b.WriteByte('"')
	}
	return b.String()
}
