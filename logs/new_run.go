package logs

import (
	"context"
	"crypto/rand"
)

type RunID string

type runKey struct{}

var RunKey = runKey{}

type NewRun func(ctx context.Context, what string) (context.Context, RunID)

func (Module) NewRun(
	logger Logger,
) NewRun {
	return func(ctx context.Context, what string) (context.Context, RunID) {
		var args []any
		if v := ctx.Value(RunKey); v != nil {
			args = append(args, "parent", v.(RunID))
		}
		run := RunID(rand.Text())
		ctx = context.WithValue(ctx, RunKey, run)
		args = append(args, "what", what)
		logger.InfoContext(ctx, "new run", args...)
		return ctx, run
	}
}
