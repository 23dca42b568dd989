package main

import (
	"sync"

	"github.com/spf13/cobra"
)

// commandExecutionContext records which command is running so the fatal path
// in main can choose between structured logs and plain terminal output.
type commandExecutionContext struct {
	CommandPath       string
	UsesStructuredLog bool
}

var (
	commandExecMu  sync.RWMutex
	commandExecCtx commandExecutionContext
)

func setCommandExecutionContext(ctx commandExecutionContext) {
	commandExecMu.Lock()
	defer commandExecMu.Unlock()
	commandExecCtx = ctx
}

func resetCommandExecutionContext() {
	setCommandExecutionContext(commandExecutionContext{})
}

func currentCommandExecutionContext() commandExecutionContext {
	commandExecMu.RLock()
	defer commandExecMu.RUnlock()
	return commandExecCtx
}

// commandUsesStructuredLogging reports whether a command emits slog output.
// The server and CI-facing commands do; terminal commands print plainly.
func commandUsesStructuredLogging(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "serve", "validate":
		return true
	default:
		return false
	}
}
