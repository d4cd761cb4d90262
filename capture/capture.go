package capture

import (
	"fmt"
	"strings"
)

// Interaction is one recorded call against the wrapped real implementation:
// the member identity, the live arguments, and the produced results.
type Interaction struct {
	Member  string
	Args    []any
	Results []any
}

// Config configures a Recorder.
type Config struct {
	// Mock is the variable name used in rendered setup statements.
	// Defaults to "m".
	Mock string
}

// Recorder accumulates the interactions a recording wrapper forwards to a
// real implementation. The type synthesizer emits wrappers that implement
// the same contract, delegate every call, and then pass the member,
// arguments, and results here. Beyond forwarding, recording has no effect on
// the wrapped implementation.
type Recorder struct {
	mockVar string
	log     []Interaction
}

// New creates an empty recorder.
func New(config Config) *Recorder {
	mockVar := config.Mock
	if mockVar == "" {
		mockVar = "m"
	}
	return &Recorder{mockVar: mockVar}
}

// Record appends one interaction. Argument and result slices are copied so
// later mutation by the caller cannot rewrite history.
func (r *Recorder) Record(member string, args []any, results []any) {
	r.log = append(r.log, Interaction{
		Member:  member,
		Args:    append([]any(nil), args...),
		Results: append([]any(nil), results...),
	})
}

// Interactions returns a copy of the recorded log in call order.
func (r *Recorder) Interactions() []Interaction {
	out := make([]Interaction, len(r.log))
	copy(out, r.log)
	return out
}

// Render emits declarative setup statements reproducing the captured
// interactions, one per distinct member and argument list, for use as
// generated test scaffolding. When the same call was recorded more than once
// the last recorded results win, matching last-registered-wins dispatch.
func (r *Recorder) Render() string {
	index := map[string]int{}
	var lines []string

	for _, interaction := range r.log {
		args := renderList(interaction.Args)
		key := interaction.Member + "(" + args + ")"

		var b strings.Builder
		b.WriteString(r.mockVar)
		b.WriteString(".Setup(")
		b.WriteString(fmt.Sprintf("%q", interaction.Member))
		if args != "" {
			b.WriteString(", ")
			b.WriteString(args)
		}
		b.WriteString(")")
		if len(interaction.Results) > 0 {
			b.WriteString(".Return(")
			b.WriteString(renderList(interaction.Results))
			b.WriteString(")")
		}

		if at, seen := index[key]; seen {
			lines[at] = b.String()
			continue
		}
		index[key] = len(lines)
		lines = append(lines, b.String())
	}

	var out strings.Builder
	for _, line := range lines {
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// renderList renders values as comma-separated Go literals.
func renderList(values []any) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = renderLiteral(v)
	}
	return strings.Join(parts, ", ")
}

// renderLiteral renders one value as a Go literal. Errors render as
// errors.New calls so the generated scaffolding compiles.
func renderLiteral(v any) string {
	switch value := v.(type) {
	case nil:
		return "nil"
	case error:
		return fmt.Sprintf("errors.New(%q)", value.Error())
	case string:
		return fmt.Sprintf("%q", value)
	default:
		return fmt.Sprintf("%#v", value)
	}
}
