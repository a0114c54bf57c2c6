// Package roadtrip answers "how do I drive from one country to another"
// questions over three public data sets: land borders with their lengths,
// distances between capital cities, and the historical list of country
// names with their identifiers.
//
// The work is split into small packages, leaves first:
//
//	core/         thread-safe undirected weighted graph keyed by string IDs
//	records/      parsers for the borders, capital-distance and country-name files
//	identity/     free-text country name → canonical identifier resolution
//	atlas/        builds the immutable border and capital graphs
//	dijkstra/     least-cost paths with a deterministic tie-break
//	bfs/          fewest-hop paths
//	dfs/          depth-first traversal and connected components
//	route/        the query engine: Distance, FindPath, Itinerary, FewestCrossings
//	session/      the interactive prompt
//	config/       startup configuration from arguments, environment and .env
//	cmd/roadtrip  the command-line entry point
//
// Quick start:
//
//	a, err := atlas.Load(atlas.Sources{
//	    Borders:    "borders.txt",
//	    Capitals:   "capdist.csv",
//	    StateNames: "state_name.tsv",
//	}, atlas.WithAliases(identity.DefaultAliases()))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	e := route.New(a)
//	path, _ := e.FindPath("ESP", "DEU") // [ESP FRA DEU]
package roadtrip
