package logreflector

import "context"

type composite struct {
	Logger
	hooks []Hooks
}

// Compose returns a Logger that reports every event to primary and then to
// each of hooks in order. Correlation ids come from primary. Nil hooks are
// skipped.
func Compose(primary Logger, hooks ...Hooks) Logger {
	c := &composite{Logger: primary}
	for _, h := range hooks {
		if h != nil {
			c.hooks = append(c.hooks, h)
		}
	}
	if len(c.hooks) == 0 {
		return primary
	}
	return c
}

func (c *composite) OnEntry(ctx context.Context, md *CallMetadata, params []Parameter) {
	c.Logger.OnEntry(ctx, md, params)
	for _, h := range c.hooks {
		h.OnEntry(ctx, md, params)
	}
}

func (c *composite) OnCall(ctx context.Context, md *CallMetadata, result Result) {
	c.Logger.OnCall(ctx, md, result)
	for _, h := range c.hooks {
		h.OnCall(ctx, md, result)
	}
}

func (c *composite) OnException(ctx context.Context, md *CallMetadata, err error) {
	c.Logger.OnException(ctx, md, err)
	for _, h := range c.hooks {
		h.OnException(ctx, md, err)
	}
}

func (c *composite) OnExit(ctx context.Context, md *CallMetadata) {
	c.Logger.OnExit(ctx, md)
	for _, h := range c.hooks {
		h.OnExit(ctx, md)
	}
}
