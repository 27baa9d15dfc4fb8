// Package hashtable implements two hash-table flavours:
//
//   - KeyTable: an open-addressing, linear-probing table keyed by arbitrary
//     byte strings. No other package of this module uses it (the edge-list
//     reader keys node labels with a builtin map).
//   - IntMultiMap: a separate-chaining integer multimap keyed by a 64-bit
//     hash, used by the series-parallel reducer to find candidate
//     parallel rows and columns. Multiple
//     values may share a hash; callers confirm equality themselves via
//     FindFirst/FindNext.
//
// Neither has a direct analogue in a codebase that uses Go's builtin map
// throughout; a builtin map cannot provide the bit-for-bit-deterministic
// signed-hash projection reproducible certificates require, so both are
// built from scratch in the same fail-fast, heavily-commented style used
// elsewhere in this module.
package hashtable
