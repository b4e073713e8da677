// Package scraper fetches CPBL pages over HTTP and assembles the combined
// team records. Every fetched team page is persisted as a raw-HTML debug
// artifact before parsing, so site-layout drift can be diagnosed offline.
package scraper
