package remote

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/vloureiro/garagem/internal/checklist"
)

// Memory is an in-process Service for offline runs and tests. It applies the
// same validation and aggregate rules as the real API so merge behavior is
// indistinguishable from the client's point of view.
type Memory struct {
	mu         sync.Mutex
	nextID     int64
	vehicles   map[string]checklist.Vehicle
	checklists map[int64]*checklist.Checklist
}

var _ Service = (*Memory)(nil)

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		nextID:     1,
		vehicles:   make(map[string]checklist.Vehicle),
		checklists: make(map[int64]*checklist.Checklist),
	}
}

// Register adds a vehicle so checklists can be created for its plate.
func (m *Memory) Register(v checklist.Vehicle) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vehicles[strings.ToUpper(v.Plate)] = v
}

// FetchByID implements Service.
func (m *Memory) FetchByID(_ context.Context, id int64) (*checklist.Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.checklists[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return respond(c), nil
}

// Create implements Service. The new checklist gets the adaptive template
// item set, all pending. The odometer reading is checked against the
// vehicle's most recent revision.
func (m *Memory) Create(_ context.Context, req CreateRequest) (*checklist.Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	plate := strings.ToUpper(strings.TrimSpace(req.Plate))
	vehicle, ok := m.vehicles[plate]
	if !ok {
		return nil, &ValidationError{Reason: fmt.Sprintf("moto %s não cadastrada", plate)}
	}

	previous := -1
	for _, c := range m.checklists {
		if c.Vehicle.Plate == vehicle.Plate && c.Odometer > previous {
			previous = c.Odometer
		}
	}
	if err := checklist.ValidateOdometer(req.Odometer, previous); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	c := checklist.NewFromTemplate(vehicle, req.Odometer, req.RevisionDate)
	c.ID = m.nextID
	m.nextID++
	m.checklists[c.ID] = c
	return respond(c), nil
}

// AppendItem implements Service.
func (m *Memory) AppendItem(_ context.Context, id int64, draft ItemDraft) (*checklist.Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.checklists[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	if err := checklist.ValidateItemName(draft.Name); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}
	if err := checklist.ValidateCost(draft.EstimatedCost); err != nil {
		return nil, &ValidationError{Reason: err.Error()}
	}

	status := draft.Status
	if !status.Valid() {
		status = checklist.StatusPending
	}
	category := strings.TrimSpace(draft.Category)
	if category == "" {
		category = "Geral"
	}
	c.Items = append(c.Items, checklist.Item{
		Name:          strings.TrimSpace(draft.Name),
		Category:      category,
		Status:        status,
		EstimatedCost: draft.EstimatedCost,
	})
	c.Refresh()
	return respond(c), nil
}

// UpdateItem implements Service.
func (m *Memory) UpdateItem(_ context.Context, id int64, index int, patch ItemPatch) (*checklist.Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.checklists[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	if index < 0 || index >= len(c.Items) {
		return nil, &ValidationError{Reason: fmt.Sprintf("item %d fora dos limites", index)}
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return nil, &ValidationError{Reason: fmt.Sprintf("status inválido: %s", *patch.Status)}
	}
	if patch.EstimatedCost != nil {
		if err := checklist.ValidateCost(*patch.EstimatedCost); err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}
	}

	item := &c.Items[index]
	if patch.Status != nil {
		item.Status = *patch.Status
	}
	if patch.EstimatedCost != nil {
		item.EstimatedCost = *patch.EstimatedCost
	}
	c.Refresh()
	return respond(c), nil
}

// UpdateStatus implements Service. ActualCost, once set, survives later
// patches that leave it nil.
func (m *Memory) UpdateStatus(_ context.Context, id int64, patch StatusPatch) (*checklist.Checklist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c, ok := m.checklists[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	if patch.ActualCost != nil {
		if err := checklist.ValidateCost(*patch.ActualCost); err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}
	}

	if patch.Finalized != nil {
		c.Finalized = *patch.Finalized
	}
	if patch.Paid != nil {
		c.Paid = *patch.Paid
	}
	if patch.ActualCost != nil {
		v := *patch.ActualCost
		c.ActualCost = &v
	}
	c.Refresh()
	return respond(c), nil
}

// respond deep-copies the stored checklist and strips client-side item ids,
// mirroring what crosses the wire from the real API.
func respond(c *checklist.Checklist) *checklist.Checklist {
	dup := c.Clone()
	for i := range dup.Items {
		dup.Items[i].ID = ""
	}
	return dup
}
