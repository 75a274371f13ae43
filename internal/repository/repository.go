// Package repository owns the data the service operates on.
//
// The post store is an in-memory ordered sequence guarded by a single
// mutex; the sequence's order is part of the API contract (a sorted
// list stays sorted for later requests), so the store exposes ordering
// operations rather than hiding them. Data lives for the lifetime of
// the process.
package repository
