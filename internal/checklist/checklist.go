package checklist

import (
	"time"
)

// Status classifies an inspection item.
type Status string

const (
	StatusPending          Status = "pendente"
	StatusCompleted        Status = "concluido"
	StatusNeedsReplacement Status = "necessita_troca"
	StatusIgnored          Status = "ignorado"
)

// Valid reports whether s is one of the four known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusNeedsReplacement, StatusIgnored:
		return true
	}
	return false
}

// Label returns a short display name for the status.
func (s Status) Label() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "done"
	case StatusNeedsReplacement:
		return "replace"
	case StatusIgnored:
		return "ignored"
	}
	return string(s)
}

// Vehicle identifies the motorcycle a checklist belongs to. The client only
// displays these fields; vehicle CRUD happens elsewhere.
type Vehicle struct {
	Plate        string `json:"placa"`
	Make         string `json:"marca"`
	Model        string `json:"modelo"`
	Year         int    `json:"ano"`
	Displacement int    `json:"cilindradas"`
}

// Item is a single inspection entry. ID is an opaque client-side identifier
// assigned when the item first enters local state; the wire protocol
// addresses items by position, so ID never crosses the network.
type Item struct {
	ID            string  `json:"-"`
	Name          string  `json:"nome"`
	Category      string  `json:"categoria"`
	Status        Status  `json:"status"`
	EstimatedCost float64 `json:"custo_estimado"`
}

// Aggregates holds the derived per-status counts and the estimated total.
type Aggregates struct {
	Completed        int     `json:"total_concluido"`
	Pending          int     `json:"total_pendente"`
	NeedsReplacement int     `json:"total_necessita_troca"`
	Ignored          int     `json:"total_ignorado"`
	EstimatedTotal   float64 `json:"custo_total_estimado"`
}

const revisionDateLayout = "2006-01-02"

// Checklist is one service-revision record for a vehicle, with its ordered
// item sequence and the derived aggregate fields.
type Checklist struct {
	ID           int64    `json:"id"`
	Vehicle      Vehicle  `json:"moto"`
	Odometer     int      `json:"km_atual"`
	RevisionDate string   `json:"data_revisao"`
	Finalized    bool     `json:"finalizado"`
	Paid         bool     `json:"pago"`
	ActualCost   *float64 `json:"custo_real,omitempty"`
	Items        []Item   `json:"itens"`
	Aggregates
}

// ParsedRevisionDate returns the revision date as time.Time when possible.
func (c *Checklist) ParsedRevisionDate() time.Time {
	if c.RevisionDate == "" {
		return time.Time{}
	}
	for _, layout := range []string{revisionDateLayout, time.RFC3339} {
		if t, err := time.Parse(layout, c.RevisionDate); err == nil {
			return t
		}
	}
	return time.Time{}
}

// Recompute derives the status counts and estimated total from an item
// sequence. Only items marked for replacement contribute to the total.
// Pure and idempotent; call it after every mutation of the sequence instead
// of trusting a previously cached aggregate.
func Recompute(items []Item) Aggregates {
	var agg Aggregates
	for _, item := range items {
		switch item.Status {
		case StatusCompleted:
			agg.Completed++
		case StatusNeedsReplacement:
			agg.NeedsReplacement++
			agg.EstimatedTotal += item.EstimatedCost
		case StatusIgnored:
			agg.Ignored++
		default:
			agg.Pending++
		}
	}
	return agg
}

// Refresh replaces the checklist's aggregate fields with values recomputed
// from its current item sequence.
func (c *Checklist) Refresh() {
	c.Aggregates = Recompute(c.Items)
}

// Clone returns a deep copy sharing no mutable state with the original.
func (c *Checklist) Clone() *Checklist {
	if c == nil {
		return nil
	}
	dup := *c
	if c.ActualCost != nil {
		v := *c.ActualCost
		dup.ActualCost = &v
	}
	if c.Items != nil {
		dup.Items = make([]Item, len(c.Items))
		copy(dup.Items, c.Items)
	}
	return &dup
}
