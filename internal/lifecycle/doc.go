// Package lifecycle drives one tool panel through Idle, Loading, Success and
// Error.
//
// A trigger is split in three steps so that the state is only ever mutated
// on the caller's goroutine:
//
//	call := ctrl.Trigger(values)   // synchronous: enters Loading
//	out := call.Run(ctx)           // anywhere: local or remote dispatch
//	ctrl.Apply(out)                // synchronous: Success or Error
//
// In the dashboard Run executes inside a tea.Cmd and Apply runs in Update.
package lifecycle
