package remote

import (
	"context"

	"github.com/vloureiro/garagem/internal/checklist"
)

// CreateRequest describes a new revision checklist. The server populates the
// item sequence from its templates; the client never sends items on create.
type CreateRequest struct {
	Plate        string `json:"placa_moto"`
	Odometer     int    `json:"km_atual"`
	RevisionDate string `json:"data_revisao,omitempty"`
}

// ItemDraft is the payload for appending a custom item.
type ItemDraft struct {
	Name          string           `json:"nome"`
	Category      string           `json:"categoria"`
	Status        checklist.Status `json:"status"`
	EstimatedCost float64          `json:"custo_estimado"`
}

// ItemPatch is a partial update for a single item. Nil fields are left
// unchanged by the server.
type ItemPatch struct {
	Status        *checklist.Status `json:"status,omitempty"`
	EstimatedCost *float64          `json:"custo_estimado,omitempty"`
}

// StatusPatch is a partial update for the checklist-level scalars.
type StatusPatch struct {
	Finalized  *bool    `json:"finalizado,omitempty"`
	Paid       *bool    `json:"pago,omitempty"`
	ActualCost *float64 `json:"custo_real,omitempty"`
}

// Service is the authoritative checklist store. Every call returns the full
// server-owned checklist; which parts of a response the client may trust
// depends on the operation and is decided by the reconciliation merge, not
// here.
type Service interface {
	// FetchByID returns the checklist or a NotFoundError.
	FetchByID(ctx context.Context, id int64) (*checklist.Checklist, error)

	// Create registers a new revision and returns it fully populated with
	// the server's template items, all pending.
	Create(ctx context.Context, req CreateRequest) (*checklist.Checklist, error)

	// AppendItem adds a custom item to the end of the sequence.
	AppendItem(ctx context.Context, id int64, draft ItemDraft) (*checklist.Checklist, error)

	// UpdateItem patches the item at the given position.
	UpdateItem(ctx context.Context, id int64, index int, patch ItemPatch) (*checklist.Checklist, error)

	// UpdateStatus patches the checklist-level scalars.
	UpdateStatus(ctx context.Context, id int64, patch StatusPatch) (*checklist.Checklist, error)
}
