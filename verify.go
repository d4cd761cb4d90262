package mockforge

import (
	"fmt"
	"strings"

	"github.com/mockforge-project/mockforge/match"
)

// Times bounds the number of matching invocations a verification accepts.
// Times values are immutable and used only at verification time.
type Times struct {
	min  int
	max  int // -1 means unbounded
	desc string
}

// Exactly accepts exactly n matching calls.
func Exactly(n int) Times {
	return Times{min: n, max: n, desc: fmt.Sprintf("exactly %d", n)}
}

// Once accepts exactly one matching call.
func Once() Times {
	return Times{min: 1, max: 1, desc: "exactly 1"}
}

// Never accepts zero matching calls.
func Never() Times {
	return Times{min: 0, max: 0, desc: "exactly 0"}
}

// AtLeast accepts n or more matching calls.
func AtLeast(n int) Times {
	return Times{min: n, max: -1, desc: fmt.Sprintf("at least %d", n)}
}

// AtMost accepts up to n matching calls.
func AtMost(n int) Times {
	return Times{min: 0, max: n, desc: fmt.Sprintf("at most %d", n)}
}

// Between accepts between lo and hi matching calls, inclusive.
func Between(lo, hi int) Times {
	return Times{min: lo, max: hi, desc: fmt.Sprintf("between %d and %d", lo, hi)}
}

// Satisfied reports whether count falls inside the bound.
func (t Times) Satisfied(count int) bool {
	if count < t.min {
		return false
	}
	if t.max >= 0 && count > t.max {
		return false
	}
	return true
}

// String describes the bound for failure messages. The zero value behaves
// like Never.
func (t Times) String() string {
	if t.desc == "" {
		return "exactly 0"
	}
	return t.desc
}

// Verify asserts how many recorded invocations of member match the supplied
// arguments. Arguments may be matchers or constants, like Setup. With no
// arguments, every invocation of the member counts regardless of arity.
// A mismatch returns ErrVerification wrapped with expected and actual counts
// and the member signature.
func (m *Mock) Verify(member string, times Times, args ...any) error {
	matchers := match.WrapAll(args)

	count := 0
	for _, inv := range m.log {
		if inv.Member != member {
			continue
		}
		if !matchInvocation(matchers, inv.Args) {
			continue
		}
		count++
	}

	if times.Satisfied(count) {
		return nil
	}

	m.logger.Debug().Str("member", member).Int("count", count).Str("expected", times.String()).Msg("verification mismatch")
	return fmt.Errorf("%w: %s with arguments %s: expected %s call(s), got %d",
		ErrVerification, m.signature(member), describeMatchers(matchers), times, count)
}

// VerifyGet asserts how many times the property read accessor was invoked.
func (m *Mock) VerifyGet(property string, times Times) error {
	return m.Verify(Getter(property), times)
}

// VerifySet asserts how many writes of property matched value, which may be
// a matcher or a constant.
func (m *Mock) VerifySet(property string, times Times, value any) error {
	return m.Verify(Setter(property), times, value)
}

// matchInvocation applies verification matchers to recorded arguments. An
// empty matcher list places no expectation on arguments.
func matchInvocation(matchers []match.Matcher, args []any) bool {
	if len(matchers) == 0 {
		return true
	}
	if len(matchers) != len(args) {
		return false
	}
	for i, matcher := range matchers {
		if !matcher.Matches(args[i]) {
			return false
		}
	}
	return true
}

func describeMatchers(matchers []match.Matcher) string {
	if len(matchers) == 0 {
		return "(any)"
	}
	parts := make([]string, len(matchers))
	for i, matcher := range matchers {
		parts[i] = matcher.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
