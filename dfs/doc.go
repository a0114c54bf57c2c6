// Package dfs implements depth-first search on core.Graph and the
// connected-component split built on it.
//
// DFS supports a pre-order hook, cancellation through a context and a full
// traversal mode that covers disconnected graphs. Components uses the full
// traversal to tell which countries can reach each other over land.
//
// Complexity:
//
//   - Time:   O(V + E), plus the cost of the hook.
//   - Memory: O(V) for the recursion stack and result maps.
package dfs
