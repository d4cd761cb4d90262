/*
Package capture records interactions with a real implementation and renders
them back as setup statements.

A recording wrapper — emitted by the type synthesizer — implements the same
contract as the real implementation, forwards every call, and reports each
(member, arguments, results) triple to a Recorder:

	rec := capture.New(capture.Config{Mock: "store"})
	wrapped := gen.NewStoreRecorder(realStore, rec)

	// exercise wrapped as usual...

	fmt.Print(rec.Render())
	// store.Setup("Store.Get", "user-1").Return("alice", nil)
	// store.Setup("Store.Put", "user-2", "bob").Return(nil)

Render emits one setup per distinct recorded call, so replaying the output
against a mock reproduces the captured behavior verbatim.
*/
package capture
