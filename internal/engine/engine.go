package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/vloureiro/garagem/internal/checklist"
	"github.com/vloureiro/garagem/internal/notify"
	"github.com/vloureiro/garagem/internal/remote"
)

// Options configure the reconciliation engine.
type Options struct {
	Context        context.Context
	Service        remote.Service
	Bus            *notify.Bus
	Logger         *slog.Logger
	DebounceWindow time.Duration
}

// Engine owns the single in-memory checklist behind an open view. It applies
// predicted mutations immediately, coalesces cost edits into debounced
// writes, merges authoritative responses back without discarding untouched
// local data, and rolls back to the last confirmed-good snapshot when a
// write fails.
//
// All exported methods are safe for concurrent use; completions from write
// goroutines and debounce timers synchronize on the same mutex the UI-facing
// calls take.
type Engine struct {
	ctx context.Context
	svc remote.Service
	bus *notify.Bus
	log *slog.Logger
	deb *Debouncer

	mu     sync.Mutex
	cur    *checklist.Checklist
	backup backup
	saving map[string]bool // item ID -> write in flight
	index  map[string]int  // item ID -> current slot
}

// View is the read-only snapshot handed to the rendering layer.
type View struct {
	Checklist *checklist.Checklist
	Saving    map[string]bool
}

// New builds an engine. Service is required; a nil bus or logger is replaced
// with a quiet default.
func New(opts Options) *Engine {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	bus := opts.Bus
	if bus == nil {
		bus = notify.NewBus()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{
		ctx:    ctx,
		svc:    opts.Service,
		bus:    bus,
		log:    logger,
		saving: make(map[string]bool),
		index:  make(map[string]int),
	}
	e.deb = NewDebouncer(opts.DebounceWindow, e.dispatchCostWrite)
	return e
}

// Load fetches the checklist and makes it the engine's current state.
func (e *Engine) Load(ctx context.Context, id int64) error {
	c, err := e.svc.FetchByID(ctx, id)
	if err != nil {
		return fmt.Errorf("carregar checklist %d: %w", id, err)
	}

	e.mu.Lock()
	e.adopt(c)
	e.mu.Unlock()

	e.log.Info("checklist carregado", "id", id, "itens", len(c.Items))
	return nil
}

// CreateNew asks the store for a fresh server-populated checklist and adopts
// it.
func (e *Engine) CreateNew(ctx context.Context, req remote.CreateRequest) error {
	c, err := e.svc.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("criar checklist: %w", err)
	}

	e.mu.Lock()
	e.adopt(c)
	e.mu.Unlock()

	e.log.Info("checklist criado", "id", c.ID, "placa", req.Plate, "itens", len(c.Items))
	return nil
}

// Snapshot returns an independent copy of the current state plus the
// per-item saving flags.
func (e *Engine) Snapshot() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	saving := make(map[string]bool, len(e.saving))
	for id, v := range e.saving {
		if v {
			saving[id] = true
		}
	}
	return View{Checklist: e.cur.Clone(), Saving: saving}
}

// SetItemStatus applies a status change optimistically and writes it
// immediately, uncoalesced. Transitions away from needs-replacement zero the
// estimated cost; transitions into it leave the cost untouched. A call for
// an item whose write is still in flight is a no-op.
func (e *Engine) SetItemStatus(itemID string, status checklist.Status) error {
	if !status.Valid() {
		return e.reject(fmt.Sprintf("status inválido: %s", status))
	}

	e.mu.Lock()
	idx, ok := e.locate(itemID)
	if !ok {
		e.mu.Unlock()
		return nil
	}

	e.captureIfFirst()
	next := e.cur.Clone()
	item := &next.Items[idx]
	item.Status = status
	if status != checklist.StatusNeedsReplacement {
		item.EstimatedCost = 0
	}
	next.Refresh()
	e.cur = next
	e.saving[itemID] = true

	patch := remote.ItemPatch{Status: &status}
	if status != checklist.StatusNeedsReplacement {
		zero := 0.0
		patch.EstimatedCost = &zero
	}
	checklistID := e.cur.ID
	e.mu.Unlock()

	go e.writeItem(itemID, checklistID, idx, patch)
	return nil
}

// SetItemCost applies a cost change optimistically and schedules the write
// through the per-item debouncer, so a typing burst produces one network
// call carrying the final value. A call for an item whose write is in
// flight is a no-op.
func (e *Engine) SetItemCost(itemID string, cost float64) error {
	if err := checklist.ValidateCost(cost); err != nil {
		return e.reject(err.Error())
	}

	e.mu.Lock()
	idx, ok := e.locate(itemID)
	if !ok {
		e.mu.Unlock()
		return nil
	}

	e.captureIfFirst()
	next := e.cur.Clone()
	next.Items[idx].EstimatedCost = cost
	next.Refresh()
	e.cur = next
	total := next.EstimatedTotal
	name := next.Items[idx].Name
	e.mu.Unlock()

	if msg := checklist.CostWarning(name, cost); msg != "" {
		e.bus.Warn(msg)
	}
	if msg := checklist.TotalWarning(total); msg != "" {
		e.bus.Warn(msg)
	}

	c := cost
	e.deb.Schedule(itemID, remote.ItemPatch{EstimatedCost: &c}, 0)
	return nil
}

// FlushItemCost sends the item's pending cost write immediately. Used on
// blur and explicit save-now actions.
func (e *Engine) FlushItemCost(itemID string) {
	e.deb.Flush(itemID)
}

// CancelItemCost drops the item's pending cost write without sending.
func (e *Engine) CancelItemCost(itemID string) {
	e.deb.Cancel(itemID)
}

// ApplyTransition writes checklist-level scalar changes. Nothing is changed
// locally until the server confirms; the transition is not latency-sensitive
// the way cost typing is.
func (e *Engine) ApplyTransition(finalized, paid *bool, actualCost *float64) error {
	if actualCost != nil {
		if err := checklist.ValidateCost(*actualCost); err != nil {
			return e.reject(err.Error())
		}
	}

	e.mu.Lock()
	if e.cur == nil {
		e.mu.Unlock()
		return nil
	}
	e.captureIfFirst()
	checklistID := e.cur.ID
	e.mu.Unlock()

	patch := remote.StatusPatch{Finalized: finalized, Paid: paid, ActualCost: actualCost}
	go e.writeTransition(checklistID, patch)
	return nil
}

// AppendItem adds a custom item. The server constructs the new state, so
// nothing is predicted locally; the full response replaces the item list.
func (e *Engine) AppendItem(draft remote.ItemDraft) error {
	if err := checklist.ValidateItemName(draft.Name); err != nil {
		return e.reject(err.Error())
	}
	if err := checklist.ValidateCost(draft.EstimatedCost); err != nil {
		return e.reject(err.Error())
	}

	e.mu.Lock()
	if e.cur == nil {
		e.mu.Unlock()
		return nil
	}
	checklistID := e.cur.ID
	e.mu.Unlock()

	go e.writeAppend(checklistID, draft)
	return nil
}

// writeItem performs one item write and merges or rolls back.
func (e *Engine) writeItem(itemID string, checklistID int64, index int, patch remote.ItemPatch) {
	resp, err := e.svc.UpdateItem(e.ctx, checklistID, index, patch)
	if err != nil {
		e.rollback("salvar item", itemID, err)
		return
	}

	e.mu.Lock()
	delete(e.saving, itemID)
	if e.cur != nil {
		mergeItemEdit(e.cur, resp, index)
		e.backup.Capture(e.cur)
	}
	e.mu.Unlock()

	e.log.Debug("item salvo", "checklist", checklistID, "item", index)
}

// dispatchCostWrite is the debouncer's fire callback: it converts the
// coalesced payload into an in-flight write for the item.
func (e *Engine) dispatchCostWrite(itemID string, patch remote.ItemPatch) {
	e.mu.Lock()
	idx, ok := e.locate(itemID)
	if !ok {
		e.mu.Unlock()
		return
	}
	e.saving[itemID] = true
	checklistID := e.cur.ID
	e.mu.Unlock()

	go e.writeItem(itemID, checklistID, idx, patch)
}

// writeTransition performs a checklist-status write and merges the response.
func (e *Engine) writeTransition(checklistID int64, patch remote.StatusPatch) {
	resp, err := e.svc.UpdateStatus(e.ctx, checklistID, patch)
	if err != nil {
		e.rollback("atualizar status", "", err)
		return
	}

	e.mu.Lock()
	if e.cur != nil {
		mergeTransition(e.cur, resp)
		e.backup.Capture(e.cur)
	}
	e.mu.Unlock()

	e.log.Debug("status do checklist salvo", "checklist", checklistID)
}

// writeAppend performs an append and adopts the server's full response.
func (e *Engine) writeAppend(checklistID int64, draft remote.ItemDraft) {
	resp, err := e.svc.AppendItem(e.ctx, checklistID, draft)
	if err != nil {
		e.rollback("adicionar item", "", err)
		return
	}

	e.mu.Lock()
	e.adopt(resp)
	e.mu.Unlock()

	e.bus.Info(fmt.Sprintf("item %q adicionado", draft.Name))
	e.log.Debug("item adicionado", "checklist", checklistID, "nome", draft.Name)
}

// rollback restores the last confirmed-good snapshot after a failed write,
// notifies the user and logs the failure. The engine stays interactive.
func (e *Engine) rollback(op, itemID string, err error) {
	e.mu.Lock()
	if itemID != "" {
		delete(e.saving, itemID)
	}
	if !e.backup.Empty() {
		e.cur = e.backup.Restore()
		e.rebuildIndex()
	}
	e.mu.Unlock()

	e.bus.Error(failureMessage(op, err))
	e.log.Error("gravação remota falhou", "op", op, "err", err)
}

// failureMessage keeps network and server failures distinguishable for the
// user while both take the same rollback path.
func failureMessage(op string, err error) string {
	var ne *remote.NetworkError
	if errors.As(err, &ne) {
		return fmt.Sprintf("sem conexão ao %s; alterações desfeitas", op)
	}
	var ve *remote.ValidationError
	if errors.As(err, &ve) {
		return fmt.Sprintf("%s rejeitado: %s", op, ve.Reason)
	}
	return fmt.Sprintf("servidor falhou ao %s; alterações desfeitas", op)
}

// reject publishes a validation failure without touching state.
func (e *Engine) reject(reason string) error {
	e.bus.Warn(reason)
	e.log.Warn("edição rejeitada", "motivo", reason)
	return &remote.ValidationError{Reason: reason}
}

// locate resolves an item ID to its current slot. Returns false for unknown
// ids and for items with a write in flight, which makes overlapping edits to
// one item a no-op while edits to other items proceed.
func (e *Engine) locate(itemID string) (int, bool) {
	if e.cur == nil {
		return 0, false
	}
	idx, ok := e.index[itemID]
	if !ok || e.saving[itemID] {
		return 0, false
	}
	return idx, true
}

// captureIfFirst takes the initial backup from pre-mutation state. Later
// captures happen on merge, so the snapshot always holds confirmed data.
func (e *Engine) captureIfFirst() {
	if e.backup.Empty() && e.cur != nil {
		e.backup.Capture(e.cur)
	}
}

// adopt makes c the current state: stable ids are carried over by position
// for the existing prefix (the sequence is append-only), fresh ids are
// assigned to new items, and the id lookup is rebuilt. The snapshot is
// refreshed since adopted state is server-confirmed.
func (e *Engine) adopt(c *checklist.Checklist) {
	for i := range c.Items {
		if e.cur != nil && i < len(e.cur.Items) && e.cur.Items[i].ID != "" {
			c.Items[i].ID = e.cur.Items[i].ID
			continue
		}
		if c.Items[i].ID == "" {
			c.Items[i].ID = uuid.NewString()
		}
	}
	e.cur = c
	e.rebuildIndex()
	e.backup.Capture(c)
}

func (e *Engine) rebuildIndex() {
	e.index = make(map[string]int, len(e.cur.Items))
	for i, item := range e.cur.Items {
		e.index[item.ID] = i
	}
}
