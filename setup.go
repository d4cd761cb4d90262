package mockforge

import (
	"github.com/mockforge-project/mockforge/match"
)

// result is one configured outcome tuple.
type result struct {
	values []any
	err    error
	panicV any
	panics bool
}

// Setup is a configured behavior for one member. Outcomes are built with the
// fluent verbs below; when overlapping setups match the same call, the most
// recently registered one wins.
type Setup struct {
	member   string
	matchers []match.Matcher
	sequence bool
	results  []result
	cursor   int
	run      func(args []any)
	compute  func(args []any) ([]any, error)
	outs     map[int]any
}

// Setup registers a behavior for member. Arguments may be match.Matcher
// values or constants; constants compare by structural equality, including
// nil. Member identities are plain strings, so non-exported members are
// configured the same way as exported ones.
func (m *Mock) Setup(member string, args ...any) *Setup {
	s := &Setup{member: member, matchers: match.WrapAll(args)}
	m.setups = append(m.setups, s)
	m.logger.Debug().Str("member", member).Int("matchers", len(s.matchers)).Msg("setup registered")
	return s
}

// SetupSequence registers a behavior whose Return, ReturnError, and Panic
// calls append successive outcomes. Each resolved dispatch produces the next
// outcome; once the sequence is exhausted the final outcome repeats
// indefinitely.
func (m *Mock) SetupSequence(member string, args ...any) *Setup {
	s := m.Setup(member, args...)
	s.sequence = true
	return s
}

// SetupGet registers a behavior for a property read accessor.
func (m *Mock) SetupGet(property string) *Setup {
	return m.Setup(Getter(property))
}

// SetupSet registers a behavior for a property write accessor. value may be
// a matcher or a constant.
func (m *Mock) SetupSet(property string, value any) *Setup {
	return m.Setup(Setter(property), value)
}

// SetupProperty gives property stateful backing starting from initial: the
// write accessor stores the value and the read accessor returns the last
// stored one.
func (m *Mock) SetupProperty(property string, initial any) {
	m.props[property] = initial
	m.Setup(Setter(property), match.Any()).Run(func(args []any) {
		m.props[property] = args[0]
	})
	m.Setup(Getter(property)).Do(func([]any) ([]any, error) {
		return []any{m.props[property]}, nil
	})
}

// SetupAllProperties gives every property stateful backing lazily: reads of
// properties without an explicit setup return the last written value,
// falling back to the default provider.
func (m *Mock) SetupAllProperties() {
	m.allProps = true
}

// Return configures the values the member produces. On a sequence setup each
// call appends one outcome; otherwise the latest call replaces the values.
func (s *Setup) Return(values ...any) *Setup {
	if s.sequence {
		s.results = append(s.results, result{values: values})
		return s
	}
	s.ensure()
	s.results[0].values = values
	return s
}

// ReturnError configures the error the member produces. On a sequence setup
// each call appends one failing outcome.
func (s *Setup) ReturnError(err error) *Setup {
	if s.sequence {
		s.results = append(s.results, result{err: err})
		return s
	}
	s.ensure()
	s.results[0].err = err
	return s
}

// Panic configures the member to panic with v when the setup resolves. On a
// sequence setup each call appends one panicking outcome.
func (s *Setup) Panic(v any) *Setup {
	if s.sequence {
		s.results = append(s.results, result{panicV: v, panics: true})
		return s
	}
	s.ensure()
	s.results[0].panicV = v
	s.results[0].panics = true
	return s
}

// Run attaches a side-effect callback invoked with the live arguments each
// time the setup resolves, before the outcome is produced.
func (s *Setup) Run(fn func(args []any)) *Setup {
	s.run = fn
	return s
}

// Do computes the outcome from the live arguments, overriding any configured
// values.
func (s *Setup) Do(fn func(args []any) ([]any, error)) *Setup {
	s.compute = fn
	return s
}

// SetOut writes value through the pointer argument at slot when the setup
// resolves, independent of the configured return values.
func (s *Setup) SetOut(slot int, value any) *Setup {
	if s.outs == nil {
		s.outs = make(map[int]any)
	}
	s.outs[slot] = value
	return s
}

func (s *Setup) ensure() {
	if len(s.results) == 0 {
		s.results = []result{{}}
	}
}

// matches reports whether the live argument list satisfies every matcher.
// A matcher count different from the argument count never matches.
func (s *Setup) matches(args []any) bool {
	if len(s.matchers) != len(args) {
		return false
	}
	for i, matcher := range s.matchers {
		if !matcher.Matches(args[i]) {
			return false
		}
	}
	return true
}

// next produces the current outcome and advances the sequence cursor. The
// final outcome of an exhausted sequence repeats.
func (s *Setup) next() result {
	if len(s.results) == 0 {
		return result{}
	}
	idx := s.cursor
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	if s.sequence {
		s.cursor++
	}
	return s.results[idx]
}
