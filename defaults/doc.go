/*
Package defaults supplies the values a loose-mode mock returns when no setup
matches a dispatched call.

Two interchangeable strategies exist, selected at mock construction time:

  - Empty returns zero-equivalents: zero numerics and booleans, empty
    strings, empty concrete containers for slice/map/channel results, and
    nil for pointer, interface, and function results.
  - Recursive behaves like Empty except for interface-typed results, which
    resolve into auto-generated substitutes. Substitutes come from a
    factory registry populated by the type synthesizer and are cached per
    type, so two accesses of the same interface-typed member observe the
    identical instance.

The registry is the only process-wide shared state in the engine. It is safe
for concurrent registration and lookup because parallel test binaries
register factories for distinct contract types at startup.

	defaults.Register(reflect.TypeOf((*Store)(nil)).Elem(), func() any {
	  return NewStoreSubstitute()
	})
*/
package defaults
