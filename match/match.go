package match

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
)

// Matcher decides whether a single call argument satisfies a configured
// condition. Implementations must be deterministic for a given value and
// must not carry side effects.
type Matcher interface {
	// Matches reports whether value satisfies the condition.
	Matches(value any) bool

	// String returns a human-readable description used in failure messages.
	String() string
}

// printer renders values deterministically for descriptions and failure
// messages. SortKeys keeps map output stable across runs.
var printer = spew.ConfigState{Indent: " ", SortKeys: true}

// Format renders a value the same way matcher descriptions do.
func Format(value any) string {
	return printer.Sprintf("%#v", value)
}

// Wrap converts a configured setup or verification argument into a Matcher.
// Values that already implement Matcher pass through unchanged; everything
// else compares by structural equality.
func Wrap(arg any) Matcher {
	if m, ok := arg.(Matcher); ok {
		return m
	}
	return Eq(arg)
}

// WrapAll converts a positional argument list into a matcher list.
func WrapAll(args []any) []Matcher {
	if len(args) == 0 {
		return nil
	}
	matchers := make([]Matcher, len(args))
	for i, arg := range args {
		matchers[i] = Wrap(arg)
	}
	return matchers
}

// equal compares two values structurally, tolerating nil on either side and
// unexported struct fields.
func equal(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == nil && actual == nil
	}
	return cmp.Equal(expected, actual, cmp.Exporter(func(reflect.Type) bool { return true }))
}

type anyMatcher struct{}

// Any matches every argument, including nil.
func Any() Matcher { return anyMatcher{} }

func (anyMatcher) Matches(any) bool { return true }
func (anyMatcher) String() string   { return "any()" }

type eqMatcher struct {
	expected any
}

// Eq matches arguments structurally equal to expected. Nil matches only nil.
func Eq(expected any) Matcher { return eqMatcher{expected: expected} }

func (m eqMatcher) Matches(value any) bool { return equal(m.expected, value) }
func (m eqMatcher) String() string         { return "eq(" + Format(m.expected) + ")" }

type notNilMatcher struct{}

// NotNil matches any argument that is neither a nil interface nor a nil
// pointer, map, slice, channel, or function.
func NotNil() Matcher { return notNilMatcher{} }

func (notNilMatcher) Matches(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return !rv.IsNil()
	default:
		return true
	}
}

func (notNilMatcher) String() string { return "notNil()" }

type inMatcher struct {
	values []any
}

// In matches arguments structurally equal to at least one of values.
func In(values ...any) Matcher {
	return inMatcher{values: append([]any(nil), values...)}
}

func (m inMatcher) Matches(value any) bool {
	for _, candidate := range m.values {
		if equal(candidate, value) {
			return true
		}
	}
	return false
}

func (m inMatcher) String() string {
	parts := make([]string, len(m.values))
	for i, v := range m.values {
		parts[i] = Format(v)
	}
	return "in(" + strings.Join(parts, ", ") + ")"
}

type patternMatcher struct {
	expr string
	re   *regexp.Regexp
	err  error
}

// Pattern matches textual arguments (string, []byte, or fmt.Stringer)
// against a regular expression. An invalid expression never matches and
// carries the compile error in its description.
func Pattern(expr string) Matcher {
	re, err := regexp.Compile(expr)
	return patternMatcher{expr: expr, re: re, err: err}
}

func (m patternMatcher) Matches(value any) bool {
	if m.err != nil {
		return false
	}
	switch v := value.(type) {
	case string:
		return m.re.MatchString(v)
	case []byte:
		return m.re.Match(v)
	case fmt.Stringer:
		return m.re.MatchString(v.String())
	default:
		return false
	}
}

func (m patternMatcher) String() string {
	if m.err != nil {
		return fmt.Sprintf("pattern(%q, invalid: %v)", m.expr, m.err)
	}
	return fmt.Sprintf("pattern(%q)", m.expr)
}

type predicateMatcher struct {
	description string
	fn          func(value any) bool
}

// Predicate matches arguments accepted by fn. The description names the
// condition in failure messages; fn must be deterministic and side-effect
// free.
func Predicate(description string, fn func(value any) bool) Matcher {
	return predicateMatcher{description: description, fn: fn}
}

func (m predicateMatcher) Matches(value any) bool {
	if m.fn == nil {
		return false
	}
	return m.fn(value)
}

func (m predicateMatcher) String() string {
	if m.description == "" {
		return "predicate()"
	}
	return "predicate(" + m.description + ")"
}
