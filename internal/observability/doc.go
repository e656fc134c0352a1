// Package observability records generator runs in an append-only JSON Lines
// event log and summarizes past runs from it.
package observability
