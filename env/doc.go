// Package env carries the per-call resource context the decomposition
// driver threads through every task: a context.Context-derived
// deadline check, a LIFO scratch-slice arena, and a Stats accumulator.
//
// The functional-option constructor idiom (New + With... closures) and
// the periodic cancellation checks inside the driver's phase loop follow
// the same shape used for other long-running traversal options elsewhere
// in this module, re-targeted here to the decomposition driver's
// task-dequeue and per-O(n+m)-operation checkpoints instead of a single
// traversal.
package env
