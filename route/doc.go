// Package route is the query engine of roadtrip.
//
// An Engine wraps an immutable atlas.Atlas and answers two kinds of
// question over two different relations:
//
//   - Distance looks up capital-to-capital distances, trying both key orders
//     and falling back to the shortest chain of known capital distances.
//   - FindPath, Itinerary and FewestCrossings walk the border graph, by
//     total border length (Dijkstra) or by number of crossings (BFS).
//   - Reachable lists every country within a number of crossings.
//
// The relations share identifiers only. A bordering pair may have no
// capital distance, in which case Itinerary reports CapitalKm as -1.
//
// Unknown identifiers fail with ErrUnknownCountry. An unreachable
// destination is not an error for the path queries: they return an empty
// slice, while Distance returns ErrNotFound.
package route
