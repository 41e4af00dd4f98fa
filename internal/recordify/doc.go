// Package recordify provides an HTTP client for the recordify backend API.
//
// # Overview
//
// The backend maps RFID tag identifiers to Spotify references and drives
// Spotify playback. This package is the only place that knows its wire
// format; the control panel and the poller depend on the Backend interface
// so tests can substitute a stub.
//
// # API Endpoints
//
//   - POST /api/tags/{uid}    body {"spotify_uri": "..."}; any 2xx is success
//   - POST /api/play/{uid}    no body; any 2xx is success
//   - GET  /api/now_playing   {"is_playing": bool, "progress_ms": int, "item": {...} | null}
//
// The uid is placed in the path as typed. Escaping beyond what a valid URL
// requires, and any validation, is the backend's job.
//
// # Request Handling
//
// All requests:
//   - take a context, so the caller can cancel them on shutdown
//   - set Accept: application/json and User-Agent: recordify/0.1
//   - carry an X-Request-ID (uuid v4) that also appears in errors
//   - have no timeout unless one is passed to NewClient
//
// # Error Handling
//
//   - ErrEmptyUID / ErrEmptyTrackRef: pre-flight validation, no request sent
//   - *StatusError: the backend answered with a non-2xx status; Body holds
//     the first 4 KiB of the response for logging
//   - wrapped transport and decode errors ("execute request", "decode response")
//
// Nothing is retried. Callers decide how to surface each failure.
package recordify
