// Package lsh provides an incremental Locality-Sensitive Hashing index
// for near-duplicate signature retrieval in Hamming space.
//
// Signatures are subdivided into contiguous bit windows ("bands"); each
// band hashes into its own bucket table. Signatures that agree on any
// single band collide in that band's table, so similar signatures are
// surfaced as candidates in sub-linear time. Candidates are verified
// with an exact Hamming check before Query returns them, so Query never
// reports a false positive. False negatives are an inherent LSH
// trade-off: a true match whose bits diverge inside every band is
// missed.
//
// The index is append-only: identifiers are assigned sequentially at
// insert time and are never reused, reassigned, or removed.
package lsh
