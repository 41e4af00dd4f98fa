// Package ui provides the terminal control panel for recordify.
//
// The panel is a Bubble Tea program with two cards: a tag editor for
// binding an RFID UID to a Spotify track and triggering playback, and a
// now-playing card fed by the background poller.
//
// # Event Flow
//
//  1. Run builds the Model and starts the program.
//  2. Init loads the current state.Store snapshot and waits on the
//     poller's update channel; each signal delivers a fresh snapshot and
//     re-arms the wait.
//  3. Save and play run as tea.Cmds against recordify.Backend and report
//     back as result messages that clear the busy flag.
//  4. Validation problems and request failures open a blocking alert;
//     failure detail goes to the log file, never to the screen.
//  5. Cancelling the context stops the program and aborts in-flight
//     requests.
//
// # Layout
//
// The editor and the now-playing card sit side by side when the terminal
// is at least WideLayoutMin columns wide and stack otherwise. The layout is
// recomputed on every resize.
//
// # Key Bindings
//
//   - tab / shift+tab: Move between the UID and track fields
//   - enter: Next field, or save from the track field
//   - ctrl+s: Save tag
//   - ctrl+p: Play tag
//   - ctrl+o: Open the current track in the browser
//   - ctrl+t: Cycle theme
//   - ctrl+l: Show the log file
//   - f1: Toggle help
//   - ctrl+q or ctrl+c: Quit
package ui
