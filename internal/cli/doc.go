// Package cli implements the command-line interface for the dashboard core.
//
// The cli package provides the Cobra-based CLI with subcommands for listing
// cached team data, forcing a refresh, querying player statistics, asking
// free-text questions, and projecting recent form. It coordinates the
// scraper, cache, stats, and assistant packages and renders text or JSON.
package cli
