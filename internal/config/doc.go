// Package config loads the control panel's TOML configuration.
//
// # Configuration Discovery
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/recordify/config.toml
//  3. If the file doesn't exist, fall back to defaults
//  4. If the file exists but fields are empty, use defaults for those fields
//
// # Fields
//
//	api_base         = "http://localhost:8000"   # backend address
//	poll_interval    = "2s"                      # now-playing refresh cadence
//	request_timeout  = ""                        # empty: no timeout
//	log_file         = "~/.local/state/recordify/recordify.log"
//	log_level        = "info"                    # debug, info, warn, error
//	wide_layout_min  = 86                        # columns for the two-column layout
//
// A file that exists but cannot be parsed, or holds an invalid duration, is
// an error: the panel refuses to start rather than guess.
package config
