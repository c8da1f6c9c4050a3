// Package app is the composition root for garagem.
//
// Run connects the pieces in order:
//
//  1. config.Load reads ~/.config/garagem/config.toml (defaults on absence)
//  2. logging.Setup opens the structured log file
//  3. buildService picks the HTTP client, or the seeded in-memory store when
//     offline
//  4. engine.New builds the reconciliation engine around the service
//  5. the checklist is loaded by ID or freshly created from the mileage
//     template
//  6. ui.Run starts the TUI and blocks until exit or context cancellation
//
// Failures before the UI starts are fatal and returned to main. After that,
// write failures are the engine's business: it rolls state back and reports
// over the notify bus, and the app layer stays out of the way.
package app
