package mockforge

// Invocation is one recorded dispatch attempt: the member identity, a
// snapshot of the positional arguments, and the position in the log.
// Invocations are immutable once recorded and live until the mock is
// discarded.
type Invocation struct {
	Member string
	Args   []any
	Index  int
}

// Invocations returns a copy of the invocation log in dispatch order.
func (m *Mock) Invocations() []Invocation {
	out := make([]Invocation, len(m.log))
	copy(out, m.log)
	return out
}

// CallCount returns the number of recorded dispatches of member, regardless
// of arguments.
func (m *Mock) CallCount(member string) int {
	count := 0
	for _, inv := range m.log {
		if inv.Member == member {
			count++
		}
	}
	return count
}
