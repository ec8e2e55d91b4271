package run

import (
	"context"
	"strings"
)

// Fake records invocations and replays scripted responses. Intended for
// tests; the zero value succeeds with empty output for every call.
type Fake struct {
	// Calls holds every command line executed, in order.
	Calls []string

	// Hook, when set, decides the outcome of each call.
	Hook func(name string, args []string) ([]byte, error)
}

// Run records the command and delegates to Hook when present.
func (f *Fake) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.Calls = append(f.Calls, strings.Join(append([]string{name}, args...), " "))
	if f.Hook != nil {
		return f.Hook(name, args)
	}
	return nil, nil
}
