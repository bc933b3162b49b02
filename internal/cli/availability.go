package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/hauskeep/dispatch/internal/constants"
	"github.com/hauskeep/dispatch/internal/grid"
	"github.com/hauskeep/dispatch/internal/models"
)

type AvailabilityCmd struct {
	Date string `short:"d" help:"Date to inspect (YYYY-MM-DD). Defaults to today."`
}

func (c *AvailabilityCmd) Validate() error {
	if c.Date == "" {
		return nil
	}
	if _, err := time.Parse(constants.DateFormat, c.Date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", c.Date)
	}
	return nil
}

func (c *AvailabilityCmd) Run(ctx *Context) error {
	date := c.Date
	if date == "" {
		date = time.Now().In(ctx.Config.Location()).Format(constants.DateFormat)
	}

	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	summary, err := ctx.Client.AvailabilitySummary(reqCtx, date)
	if err != nil {
		return err
	}
	if len(summary) == 0 {
		fmt.Printf("No cleaners reported for %s.\n", date)
		return nil
	}

	catalog := ctx.Config.Catalog()
	g := grid.Derive(date, catalog, summary, nil)

	fmt.Printf("Availability for %s:\n\n", date)
	fmt.Printf("%-20s", "Cleaner")
	for _, label := range catalog.Labels() {
		fmt.Printf("%-14s", label)
	}
	fmt.Println()
	fmt.Println(strings.Repeat("-", 20+14*catalog.Len()))

	for _, cleaner := range summary {
		fmt.Printf("%-20s", cleaner.DisplayName)
		for _, label := range catalog.Labels() {
			cell := g.Cell(cleaner.CleanerID, label)
			fmt.Printf("%-14s", cellSummary(cell))
		}
		fmt.Println()
	}
	return nil
}

func cellSummary(cell grid.Cell) string {
	if cell.Occupied() {
		return fmt.Sprintf("%d job(s)", len(cell.Jobs))
	}
	switch cell.Availability {
	case models.Available:
		return "free"
	case models.Unavailable:
		return "busy"
	default:
		return "no data"
	}
}
