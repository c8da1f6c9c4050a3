package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/vloureiro/garagem/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	checklistID := flag.Int64("checklist", 0, "open an existing checklist by id")
	plate := flag.String("placa", "", "vehicle plate for a new checklist")
	odometer := flag.Int("km", 0, "current odometer for a new checklist")
	offline := flag.Bool("offline", false, "use the in-memory store instead of the api")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:  *configPath,
		ChecklistID: *checklistID,
		Plate:       *plate,
		Odometer:    *odometer,
		Offline:     *offline,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "garagem: %v\n", err)
		return 1
	}
	return 0
}
