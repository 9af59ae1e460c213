// Package geo provides the coordinate primitives shared by the road graph,
// the A* heuristic and the OSM importer.
//
// Two distance measures live here and they are deliberately not
// interchangeable:
//
//   - SquaredDistance is the planar Δlat²+Δlon² in degrees². It is only used
//     to snap a raw query point to the closest graph node, where ordering is
//     all that matters.
//   - Haversine is the great-circle distance in metres on a sphere of radius
//     EarthRadius. It measures real ground distance and feeds the travel-time
//     heuristic and edge lengths.
//
// LatLon converts to and from orb.Point (lon, lat order) so bounding boxes
// can be expressed with orb.Bound.
package geo
