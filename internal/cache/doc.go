// Package cache decides when the persisted team snapshot can be reused and
// when a full refetch cycle is required. A snapshot younger than the
// freshness threshold is served as-is; a stale or missing one triggers a
// parallel per-team fetch; a corrupt one is deleted and refetched. A cycle
// where every team fails never erases a still-readable previous snapshot.
package cache
