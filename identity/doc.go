// Package identity resolves country names to canonical identifiers.
//
// A Registry is built once from the country name rows: one Record (latest
// display name) per identifier, a case-insensitive name index over every
// name the rows ever carried, and an optional YAML alias table for names
// the source files spell differently ("Korea, South" vs "Korea, Republic
// of"). A default alias table is embedded.
//
// A Resolver wraps the Registry for graph construction. Names it cannot
// resolve pass through unchanged, and are collected so callers can see
// which entries stayed keyed by free text.
package identity
