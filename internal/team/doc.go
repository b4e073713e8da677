// Package team defines the normalized data model for CPBL teams: rosters,
// standings, venue splits, recent results, and the persisted snapshot that
// bundles them. It also owns the static league tables (team codes, canonical
// names, founding years) that are never scraped.
package team
