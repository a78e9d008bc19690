// Package cache provides compute-once, publish-once memoization for pure
// table loaders.
//
// Allocators for different source categories frequently pull the same
// auxiliary table (a use table, a price vector); recomputing or refetching
// it per allocator is wasted work, and a naive lazy global is a data race
// once allocators run concurrently. Memo guards the computation with
// singleflight (exactly one caller computes, the rest wait) and publishes
// the result through an RWMutex-protected map, so every later call is a
// cheap read.
//
// Errors are not cached: a failed computation may be retried on the next
// call for its key.
package cache
