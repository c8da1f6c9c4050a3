package app

import (
	"context"
	"fmt"
	"time"

	"github.com/vloureiro/garagem/internal/checklist"
	"github.com/vloureiro/garagem/internal/config"
	"github.com/vloureiro/garagem/internal/engine"
	"github.com/vloureiro/garagem/internal/logging"
	"github.com/vloureiro/garagem/internal/notify"
	"github.com/vloureiro/garagem/internal/remote"
	"github.com/vloureiro/garagem/internal/ui"
)

// Options configure the garagem application.
type Options struct {
	ConfigPath  string // empty uses default ~/.config/garagem/config.toml
	ChecklistID int64  // zero creates a fresh checklist
	Plate       string // vehicle plate for a fresh checklist
	Odometer    int    // current odometer for a fresh checklist
	Offline     bool   // force the in-memory store regardless of config
}

// Run boots the checklist TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("carregar config: %w", err)
	}
	if opts.Offline {
		cfg.Offline = true
	}

	logger, closeLog := logging.Setup(cfg.LogFile, cfg.LogLevel)
	defer func() { _ = closeLog() }()

	svc, err := buildService(cfg, opts)
	if err != nil {
		return err
	}

	bus := notify.NewBus()
	eng := engine.New(engine.Options{
		Context:        ctx,
		Service:        svc,
		Bus:            bus,
		Logger:         logger,
		DebounceWindow: cfg.DebounceWindow(),
	})

	if err := openChecklist(ctx, eng, opts); err != nil {
		return err
	}

	return ui.Run(ui.Options{
		Context: ctx,
		Engine:  eng,
		Bus:     bus,
	})
}

// buildService picks the HTTP client or, offline, an in-memory store seeded
// with the requested vehicle.
func buildService(cfg config.Config, opts Options) (remote.Service, error) {
	if !cfg.Offline {
		client, err := remote.NewClient(cfg.APIBind)
		if err != nil {
			return nil, fmt.Errorf("iniciar cliente da api: %w", err)
		}
		return client, nil
	}

	mem := remote.NewMemory()
	plate := opts.Plate
	if plate == "" {
		plate = "ABC1D23"
	}
	mem.Register(checklist.Vehicle{
		Plate: plate,
		Make:  "Honda",
		Model: "CB 500F",
	})
	return mem, nil
}

// openChecklist loads the requested checklist or creates a new one.
func openChecklist(ctx context.Context, eng *engine.Engine, opts Options) error {
	if opts.ChecklistID > 0 {
		return eng.Load(ctx, opts.ChecklistID)
	}

	plate := opts.Plate
	if plate == "" {
		plate = "ABC1D23"
	}
	odometer := opts.Odometer
	if odometer <= 0 {
		odometer = 10000
	}
	return eng.CreateNew(ctx, remote.CreateRequest{
		Plate:        plate,
		Odometer:     odometer,
		RevisionDate: time.Now().Format("2006-01-02"),
	})
}
