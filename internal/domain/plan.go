package domain

import "time"

// YearEntry describes one year of a five-year plan.
type YearEntry struct {
	Year        int
	Title       string
	Description string
	Milestones  []string
}

// Plan is a user's five-year roadmap. It is created once by the generative
// collaborator and immutable afterwards except by explicit regeneration.
type Plan struct {
	ID        string
	Goal      string
	Years     []YearEntry
	Language  Language
	Formality Formality
	CreatedAt *time.Time
}

// YearFor returns the year entry covering the given plan day index,
// or nil if the plan has no years.
func (p *Plan) YearFor(dayIndex int) *YearEntry {
	if len(p.Years) == 0 {
		return nil
	}
	year := PlanYear(dayIndex)
	for i := range p.Years {
		if p.Years[i].Year == year {
			return &p.Years[i]
		}
	}
	return &p.Years[len(p.Years)-1]
}
