// Package plan holds the immutable training plan served for the lifetime of the process.
package plan

import (
	"alcyxob/training-tracker/internal/domain"
	"slices"
)

// Catalog serves a fixed training plan. It is safe for concurrent use because nothing mutates it.
type Catalog struct {
	plan domain.TrainingPlan
}

// NewCatalog returns the catalog for the built-in half marathon plan.
func NewCatalog() *Catalog {
	return &Catalog{plan: halfMarathon}
}

// NewCatalogFromPlan wraps a copy of an arbitrary plan.
func NewCatalogFromPlan(p domain.TrainingPlan) *Catalog {
	p.Weeks = cloneWeeks(p.Weeks)
	return &Catalog{plan: p}
}

// Plan returns a copy of the full plan including race metadata.
func (c *Catalog) Plan() domain.TrainingPlan {
	p := c.plan
	p.Weeks = cloneWeeks(c.plan.Weeks)
	return p
}

// Weeks returns a copy of the ordered plan weeks.
func (c *Catalog) Weeks() []domain.PlanWeek {
	return cloneWeeks(c.plan.Weeks)
}

// Week looks up a week by its 1-based number.
func (c *Catalog) Week(num int) (domain.PlanWeek, bool) {
	for _, w := range c.plan.Weeks {
		if w.WeekNum == num {
			w.Workouts = slices.Clone(w.Workouts)
			return w, true
		}
	}
	return domain.PlanWeek{}, false
}

func cloneWeeks(weeks []domain.PlanWeek) []domain.PlanWeek {
	if weeks == nil {
		return nil
	}
	out := make([]domain.PlanWeek, len(weeks))
	for i, w := range weeks {
		w.Workouts = slices.Clone(w.Workouts)
		out[i] = w
	}
	return out
}
