package models

import "time"

type SourceReport struct {
	Source   string `json:"source"`
	Strategy string `json:"strategy,omitempty"` // strategy that served the items
	Fetched  int    `json:"fetched"`
	Inserted int    `json:"inserted"`
	Known    int    `json:"known"`
	Error    string `json:"error,omitempty"`
}

// RunReport summarizes one collection pass.
type RunReport struct {
	ID        string         `json:"id"`
	StartedAt time.Time      `json:"started_at"`
	Duration  time.Duration  `json:"duration"`
	Sources   []SourceReport `json:"sources"`
}

func (r *RunReport) TotalFetched() int {
	n := 0
	for _, s := range r.Sources {
		n += s.Fetched
	}
	return n
}

func (r *RunReport) TotalInserted() int {
	n := 0
	for _, s := range r.Sources {
		n += s.Inserted
	}
	return n
}

func (r *RunReport) Failed() int {
	n := 0
	for _, s := range r.Sources {
		if s.Error != "" {
			n++
		}
	}
	return n
}
