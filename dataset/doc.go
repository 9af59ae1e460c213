// Package dataset reads and writes the road-network input file.
//
// The canonical format is the JSON document produced by the OSM graph
// generator:
//
//	{
//	  "nodes": [{"id": 1, "lat": 27.95, "lon": -82.46}, ...],
//	  "edges": [{"source": 1, "target": 2, "distance": 84.1, "travel_time": 6.2}, ...]
//	}
//
// Region-sized files run to hundreds of megabytes, so besides the plain
// Decode/LoadFile pair the package offers:
//
//   - LoadAsync, which parses on a separate goroutine and hands the outcome
//     back on a channel so callers can keep serving (or give up) meanwhile;
//   - a gob cache next to the JSON file (SaveGob/LoadGob, CacheFresh) that
//     skips JSON parsing on later starts;
//   - Clip, which cuts a dataset down to a bounding box.
//
// A null or missing travel_time decodes as 0. Structural checks (unknown
// edge endpoints, negative weights) belong to roadgraph.New, not here.
package dataset
