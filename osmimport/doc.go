// Package osmimport turns OpenStreetMap extracts into the road-network
// dataset consumed by roadgraph.
//
// Supported inputs are OSM XML (.osm, .xml) and OSM PBF (.pbf). Only ways
// carrying a drivable highway tag are kept (motorway down to living_street,
// plus service roads that are not parking aisles or driveways); private
// roads and areas are dropped.
//
// Every consecutive pair of way nodes becomes one directed edge. A reverse
// edge is added unless the way is one-way: oneway=yes/true/1, a motorway,
// or a roundabout, with oneway=-1 flipping the direction. Edge weights are
//
//	distance    = great-circle metres between the two nodes
//	travel_time = distance / (speed / 3.6)   seconds
//
// where speed comes from the maxspeed tag (km/h, "mph" suffix, "none",
// "walk", ";"-separated values averaged) or a per-highway default.
//
// An optional bounding box keeps only segments whose both endpoints lie
// inside it. Nodes that end up on no edge are not emitted.
//
// PBF input is read in two passes (ways, then the nodes they reference),
// so Import needs an io.ReadSeeker.
package osmimport
