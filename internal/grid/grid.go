package grid

import (
	"github.com/hauskeep/dispatch/internal/models"
	"github.com/hauskeep/dispatch/internal/slots"
)

// Cell is the derived state of one (cleaner, slot) pair: the backend's
// availability signal plus the placed jobs occupying the slot.
type Cell struct {
	Availability models.AvailabilityState
	Jobs         []models.Job
}

// Occupied reports whether at least one job is placed in the cell.
func (c Cell) Occupied() bool {
	return len(c.Jobs) > 0
}

// Grid maps cleanerID -> slot label -> Cell for one selected date.
type Grid struct {
	Date     string
	Cleaners []models.CleanerAvailability
	Catalog  slots.Catalog
	cells    map[string]map[string]Cell
}

// Derive builds the grid for date from the backend availability summary and
// the placed jobs for that date. It is a pure function of its inputs: every
// (cleaner, slot) pair in the summary gets exactly one cell, cells the
// backend reported nothing for degrade to unknown availability with no jobs,
// and occupancy is layered on independently of the availability signal.
func Derive(date string, catalog slots.Catalog, cleaners []models.CleanerAvailability, jobs []models.Job) Grid {
	g := Grid{
		Date:     date,
		Cleaners: cleaners,
		Catalog:  catalog,
		cells:    make(map[string]map[string]Cell, len(cleaners)),
	}
	for _, cleaner := range cleaners {
		row := make(map[string]Cell, catalog.Len())
		for _, label := range catalog.Labels() {
			cell := Cell{Availability: models.AvailabilityUnknown}
			if info, ok := cleaner.Slots[label]; ok {
				cell.Availability = info.State()
				cell.Jobs = append(cell.Jobs, info.ExistingJobs...)
			}
			row[label] = cell
		}
		g.cells[cleaner.CleanerID] = row
	}
	// Jobs carried outside the summary still land in their cell. The backend
	// usually embeds them in existing_jobs; this keeps the invariant when it
	// does not.
	for _, job := range jobs {
		if !job.Placed() || job.Date != date {
			continue
		}
		row, ok := g.cells[job.Cleaner()]
		if !ok {
			continue
		}
		cell, ok := row[job.Slot()]
		if !ok {
			continue
		}
		if containsJob(cell.Jobs, job.ID) {
			continue
		}
		cell.Jobs = append(cell.Jobs, job)
		row[job.Slot()] = cell
	}
	return g
}

// Cell returns the derived cell for (cleanerID, slot). Unknown pairs report
// unknown availability and no jobs rather than an error.
func (g Grid) Cell(cleanerID, slot string) Cell {
	if row, ok := g.cells[cleanerID]; ok {
		if cell, ok := row[slot]; ok {
			return cell
		}
	}
	return Cell{Availability: models.AvailabilityUnknown}
}

// PlacedJobs returns every job occupying any cell, in cleaner then slot
// order.
func (g Grid) PlacedJobs() []models.Job {
	var out []models.Job
	for _, cleaner := range g.Cleaners {
		for _, label := range g.Catalog.Labels() {
			out = append(out, g.Cell(cleaner.CleanerID, label).Jobs...)
		}
	}
	return out
}

func containsJob(jobs []models.Job, id string) bool {
	for _, j := range jobs {
		if j.ID == id {
			return true
		}
	}
	return false
}
