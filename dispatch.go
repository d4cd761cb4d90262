package mockforge

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mockforge-project/mockforge/match"
)

// Dispatch resolves one call against this mock. Generated substitute members
// forward here with their stable member identity and live arguments, and map
// the returned tuple onto their declared results.
//
// The attempt is appended to the invocation log before anything can fail, so
// verification observes calls that were subsequently rejected by strict mode
// or aborted by an injected fault.
func (m *Mock) Dispatch(member string, args ...any) ([]any, error) {
	m.record(member, args)

	if m.policy != nil && !m.chaosOff {
		if err := m.policy.Evaluate(); err != nil {
			m.logger.Debug().Str("member", member).Err(err).Msg("chaos fault injected")
			return nil, err
		}
	}

	if s := m.resolve(member, args); s != nil {
		m.logger.Debug().Str("member", member).Msg("setup resolved")
		return m.produce(s, args)
	}

	if values, handled := m.propertyFallback(member, args); handled {
		return values, nil
	}

	if m.mode == Strict {
		m.logger.Debug().Str("member", member).Msg("strict dispatch miss")
		return nil, fmt.Errorf("%w: %s invoked with %s", ErrNoSetup, m.signature(member), match.Format(args))
	}

	m.logger.Debug().Str("member", member).Msg("falling through to defaults")
	return m.defaultTuple(member), nil
}

// record appends an immutable snapshot of the call to the invocation log.
// The log is append-only and never reordered.
func (m *Mock) record(member string, args []any) {
	m.log = append(m.log, Invocation{
		Member: member,
		Args:   append([]any(nil), args...),
		Index:  len(m.log),
	})
}

// resolve scans the member's setups most-recently-registered first and
// returns the first applicable one. Setups whose matcher count differs from
// the declared parameter count are permanently inapplicable.
func (m *Mock) resolve(member string, args []any) *Setup {
	meta, declared := m.members[member]
	for i := len(m.setups) - 1; i >= 0; i-- {
		s := m.setups[i]
		if s.member != member {
			continue
		}
		if declared && len(s.matchers) != meta.Params {
			continue
		}
		if s.matches(args) {
			return s
		}
	}
	return nil
}

// produce runs the resolved setup: side-effect callback first, then out-slot
// writes, then the configured or computed outcome.
func (m *Mock) produce(s *Setup, args []any) ([]any, error) {
	if s.run != nil {
		s.run(args)
	}
	if err := m.applyOuts(s, args); err != nil {
		return nil, err
	}
	if s.compute != nil {
		return s.compute(args)
	}

	r := s.next()
	if r.panics {
		panic(r.panicV)
	}
	return r.values, r.err
}

// applyOuts writes configured out values through pointer arguments.
func (m *Mock) applyOuts(s *Setup, args []any) error {
	for slot, value := range s.outs {
		if slot < 0 || slot >= len(args) {
			return fmt.Errorf("%w: %s has no argument %d", ErrInvalidSlot, m.signature(s.member), slot)
		}

		target := reflect.ValueOf(args[slot])
		if target.Kind() != reflect.Ptr || target.IsNil() {
			return fmt.Errorf("%w: argument %d of %s is not a writable pointer", ErrInvalidSlot, slot, m.signature(s.member))
		}

		elem := target.Elem()
		if value == nil {
			elem.Set(reflect.Zero(elem.Type()))
			continue
		}

		v := reflect.ValueOf(value)
		if !v.Type().AssignableTo(elem.Type()) {
			if !v.Type().ConvertibleTo(elem.Type()) {
				return fmt.Errorf("%w: cannot write %s into argument %d of %s", ErrInvalidSlot, v.Type(), slot, m.signature(s.member))
			}
			v = v.Convert(elem.Type())
		}
		elem.Set(v)
	}
	return nil
}

// propertyFallback serves accessor dispatches once SetupAllProperties is
// enabled: writes store, reads return the last written value or a default.
func (m *Mock) propertyFallback(member string, args []any) ([]any, bool) {
	if !m.allProps {
		return nil, false
	}
	if property, found := strings.CutPrefix(member, "get:"); found && len(args) == 0 {
		if v, stored := m.props[property]; stored {
			return []any{v}, true
		}
		return m.defaultTuple(member), true
	}
	if property, found := strings.CutPrefix(member, "set:"); found && len(args) == 1 {
		m.props[property] = args[0]
		return nil, true
	}
	return nil, false
}

// defaultTuple produces loose-mode results from the default value provider
// using the declared result types. Undeclared members yield no values.
func (m *Mock) defaultTuple(member string) []any {
	meta, ok := m.members[member]
	if !ok || len(meta.Results) == 0 {
		return nil
	}
	out := make([]any, len(meta.Results))
	for i, t := range meta.Results {
		out[i] = m.defaults.Value(t)
	}
	return out
}
