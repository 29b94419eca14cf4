// Package interp composes the command-interpretation pipeline: tokenize,
// translate, expand wildcards, then execute in the host shell.
package interp

import (
	"context"

	"github.com/abhii767/Minishell/core/execute"
	"github.com/abhii767/Minishell/core/expand"
	"github.com/abhii767/Minishell/core/logger"
	"github.com/abhii767/Minishell/core/platform"
	"github.com/abhii767/Minishell/core/shellparse"
	"github.com/abhii767/Minishell/core/translate"
)

// Interpreter owns the per-line pipeline. It keeps no state between lines
// beyond the immutable translation table and the resolved platform, so every
// line starts from a clean slate.
type Interpreter struct {
	Platform platform.ID
	Expander *expand.Expander
	Executor *execute.Executor
	Log      *logger.Logger
}

// Run takes one raw input line through translation, wildcard expansion and
// execution. Empty lines are a no-op success; callers are expected to filter
// them before this point.
func (i *Interpreter) Run(ctx context.Context, line string) execute.Outcome {
	tokens := shellparse.Split(line)
	if len(tokens) == 0 {
		return execute.Outcome{Status: execute.Success}
	}

	translated := translate.Translate(tokens, i.Platform)
	expanded := i.Expander.Expand(translated)

	outcome := i.Executor.Execute(ctx, expanded)
	i.Log.CommandRun(line, translated, expanded, outcome)
	return outcome
}
