package urlbuild

import "strings"

type queryPair struct {
	key   string
	value string
}

// Query is an ordered list of query parameters whose values are already
// rendered. Keys keep insertion order so templates stay byte-for-byte stable.
type Query struct {
	pairs []queryPair
}

// Set appends a parameter, even when value is empty.
func (q *Query) Set(key, value string) *Query {
	q.pairs = append(q.pairs, queryPair{key: key, value: value})
	return q
}

// SetIf appends a parameter only when cond holds.
func (q *Query) SetIf(cond bool, key, value string) *Query {
	if cond {
		q.Set(key, value)
	}
	return q
}

// Len returns the number of parameters.
func (q *Query) Len() int {
	return len(q.pairs)
}

// String joins the parameters as "k=v&k=v".
func (q *Query) String() string {
	var b strings.Builder
	for i, p := range q.pairs {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(p.key)
		b.WriteByte('=')
		b.WriteString(p.value)
	}
	return b.String()
}
