// Package dispatch maps an operation name, given as the first positional
// argument, to its handler.
package dispatch

import (
	"fmt"
	"sort"

	"github.com/gorewood/dotcfg/internal/output"
)

// Exit codes for the two sentinel outcomes checked before dispatch.
const (
	ExitNoOperation      = 1
	ExitUnknownOperation = 2
)

// Table maps operation names to handlers.
type Table[H any] map[string]H

// Lookup returns the handler named by args[0] and the remaining arguments.
// It fails with "No function to call" (exit 1) when args is empty and with
// "Function with name <name> does not exist" (exit 2) for unregistered names.
func (t Table[H]) Lookup(args []string) (H, []string, error) {
	var zero H
	if len(args) == 0 || args[0] == "" {
		return zero, nil, output.NewExitError(ExitNoOperation, "No function to call")
	}

	handler, ok := t[args[0]]
	if !ok {
		return zero, nil, output.NewExitError(ExitUnknownOperation,
			fmt.Sprintf("Function with name %s does not exist", args[0]))
	}
	return handler, args[1:], nil
}

// Names returns the registered operation names in sorted order.
func (t Table[H]) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
