// Package engine implements deferred execution for a query.
//
// An Engine owns one sequence and a FIFO queue of operation descriptors.
// Chainable operators are only enqueued. A drain pops descriptors in order and
// applies each to the current sequence, replacing it with the result, until
// the queue is empty or an immediate operator produces a value. Whatever is
// still queued at that point is discarded.
//
// A failed drain keeps the sequence produced by the last successful operator
// and discards the rest of the queue. Errors are returned unmodified.
//
// An Engine is not safe for concurrent use.
package engine
