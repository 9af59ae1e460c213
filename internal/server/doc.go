// Package server exposes a Pathfinder over HTTP.
//
// Routes:
//
//	POST /api/pathfind    {"algorithm": "A*", "start": [lat, lon], "end": [lat, lon]}
//	GET  /api/algorithms  supported algorithm names
//	GET  /api/graph       size, bounds and speed calibration of the loaded graph
//	GET  /healthz
//	GET  /metrics         prometheus
//
// Each query runs on its own goroutine under the configured deadline; when
// the deadline passes first the client gets 504 and the result is dropped.
// Searches are not interrupted.
package server
