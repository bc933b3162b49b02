package cli

import (
	"context"
	"time"

	"github.com/hauskeep/dispatch/internal/api"
	"github.com/hauskeep/dispatch/internal/config"
	"github.com/hauskeep/dispatch/internal/history"
	"github.com/hauskeep/dispatch/internal/logger"
)

// Context is shared by every subcommand: the resolved config, the backend
// client, and the local command journal.
type Context struct {
	Client  *api.Client
	Config  config.Config
	Journal *history.Store
}

// RequestContext returns a context bounded by the configured request
// timeout.
func (c *Context) RequestContext() (context.Context, context.CancelFunc) {
	timeout := c.Config.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// Journal appends are best-effort; a broken local journal must never block a
// dispatched command.
func (c *Context) RecordHistory(e history.Entry) {
	if c.Journal == nil {
		return
	}
	if err := c.Journal.Append(e); err != nil {
		logger.Warn("Failed to journal command", "error", err)
	}
}
