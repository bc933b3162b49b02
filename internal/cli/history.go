package cli

import (
	"fmt"
	"strings"
	"time"
)

type HistoryCmd struct {
	Limit int `short:"l" help:"Maximum entries to show." default:"25"`
}

func (c *HistoryCmd) Run(ctx *Context) error {
	if ctx.Journal == nil {
		return fmt.Errorf("command journal is not available")
	}

	entries, err := ctx.Journal.Recent(c.Limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No commands recorded yet.")
		return nil
	}

	fmt.Printf("%-20s %-8s %-12s %-12s %-12s %-8s %s\n",
		"When", "Kind", "Job", "Cleaner", "Slot", "Outcome", "Detail")
	fmt.Println(strings.Repeat("-", 90))
	for _, e := range entries {
		fmt.Printf("%-20s %-8s %-12s %-12s %-12s %-8s %s\n",
			e.At.Format(time.DateTime), e.Kind,
			truncate(e.JobID, 12), truncate(e.CleanerID, 12),
			e.Slot, e.Outcome, e.Detail)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
