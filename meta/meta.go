// meta/meta.go
package meta

// SEARCH_DEPTH is the default alpha-beta lookahead in plies.
const SEARCH_DEPTH = 4

// MAX_TURNS caps a self-play game that fails to terminate on its own.
const MAX_TURNS = 300
