// Package atlas builds the immutable, identifier-keyed view of the dataset
// that every query runs against.
//
//	records (raw tables) ──► identity (registry) ──► atlas.Build ──► *Atlas
//
// An Atlas holds the identity registry, the undirected border graph and the
// capital-distance relation (both as a key table for direct lookups and as a
// graph for path search). Repairs and merges performed during the build are
// listed in Diagnostics instead of being applied silently.
package atlas
