// Package app wires configuration, logging, the backend client, polling and
// the UI into the recordify control panel.
//
// # Startup
//
//  1. Load config.toml and apply command-line overrides
//  2. Open the log file (the terminal belongs to the UI)
//  3. Build the recordify.Client for the backend API
//  4. Start the Poller goroutine: one poll immediately, then one per interval
//  5. Run the UI until the user quits or the context is cancelled
//  6. Cancel the poller and any in-flight request, then wait for the poller
//
// # Polling
//
// Polls run strictly one after another; a slow request delays the next tick
// instead of overlapping it. Every result, success or failure, lands in the
// state.Store, and a coalescing signal on Updates tells the UI to re-read
// it. A failed poll clears the playback data and is logged, never alerted.
//
// # Headless Commands
//
// NowPlaying, SaveTag and PlayTag run the same operations without the UI
// for the CLI's now, save and play subcommands. They share the panel's
// validation and logging policy.
package app
