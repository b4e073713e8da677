// Package extract parses fetched CPBL pages into the normalized team model.
// Extraction is best-effort per field: a missing or malformed fragment leaves
// that field at its zero value and never aborts the rest of the document.
package extract
