// Package store provides the concurrency-safe deduplication structures the
// parallel engines share between workers of a single query.
//
// What:
//
//   - VisitedSet[N]: set with an atomic "insert, report whether new"
//     operation. The first successful Insert of a node wins; every other
//     concurrent Insert of an equal node reports false.
//   - DistanceTable[N, W]: node → best tentative distance, with an atomic
//     write-if-smaller (Relax). Once written, an entry only decreases.
//   - BucketMap[N, W]: bucket index → pending nodes. Push appends, Take
//     removes a whole bucket, Min finds the lowest non-empty index. Stale
//     entries are never removed eagerly.
//
// All three sit on xsync.MapOf, a striped-lock hash map; no operation
// takes a structure-wide lock. Instances are meant to live for one query
// and then be dropped.
package store
