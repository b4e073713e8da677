// Package stats fetches, caches, filters, and sorts league-wide player
// statistics from the CPBL record endpoint. Results are cached per exact
// query tuple with a fixed TTL and are never persisted to disk.
package stats
