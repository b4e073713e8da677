// Package assistant answers free-text questions about teams and players.
//
// Two answerers share one data-access contract: a rule-based lookup that
// matches entities against the cached dataset, and a chat client that hands
// the serialized dataset to an external language model.
package assistant
