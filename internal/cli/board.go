package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hauskeep/dispatch/internal/constants"
	"github.com/hauskeep/dispatch/internal/tui"
)

type BoardCmd struct {
	Date string `short:"d" help:"Initial board date (YYYY-MM-DD). Defaults to today."`
}

func (c *BoardCmd) Validate() error {
	if c.Date == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *BoardCmd) Run(ctx *Context) error {
	model := tui.NewModel(ctx.Client, ctx.Journal, tui.Options{
		Catalog:  ctx.Config.Catalog(),
		Location: ctx.Config.Location(),
		Timeout:  ctx.Config.RequestTimeout,
		Date:     c.Date,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running board: %w", err)
	}
	return nil
}
