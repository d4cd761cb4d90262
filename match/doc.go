/*
Package match provides the argument matchers used to decide whether a live
call satisfies a configured setup or verification.

Each matcher is a deterministic, side-effect-free predicate over a single
positional argument, paired with a human-readable description that shows up
in failure messages.

Built-in matchers:

  - Any matches everything, including nil.
  - Eq matches by structural equality (the implicit matcher for constant
    setup arguments).
  - NotNil matches any non-nil argument.
  - In matches membership in a fixed set of values.
  - Pattern matches textual arguments against a regular expression.
  - Predicate wraps an arbitrary condition with a description.

Constant arguments passed to Setup or Verify are wrapped automatically:

	m.Setup("Calculator.Add", 1, match.Any()).Return(2)

is equivalent to

	m.Setup("Calculator.Add", match.Eq(1), match.Any()).Return(2)

A setup whose matcher count differs from the call's argument count never
matches and never errors.
*/
package match
