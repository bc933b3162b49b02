package cli

import (
	"fmt"
	"strings"
)

type JobsCmd struct {
	ShowIDs bool `help:"Show job IDs." name:"show-ids"`
}

func (c *JobsCmd) Run(ctx *Context) error {
	reqCtx, cancel := ctx.RequestContext()
	defer cancel()

	jobs, err := ctx.Client.UnassignedJobs(reqCtx)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		fmt.Println("No unassigned jobs.")
		return nil
	}

	fmt.Printf("%-12s %-24s %-10s %-8s %-10s %s\n", "Date", "Customer", "Duration", "Total", "Status", "Address")
	fmt.Println(strings.Repeat("-", 96))
	for _, job := range jobs {
		customer := job.CustomerName
		if len(customer) > 22 {
			customer = customer[:19] + "..."
		}
		fmt.Printf("%-12s %-24s %-10s %-8s %-10s %s\n",
			job.Date, customer, fmt.Sprintf("%dm", job.DurationMin),
			job.FormatTotal(), job.Status, job.Address)
		if c.ShowIDs {
			fmt.Printf("    ID: %s\n", job.ID)
		}
	}
	return nil
}
