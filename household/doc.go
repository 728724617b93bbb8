// Package household defines the plain value types describing a household's financial
// situation: assets, liabilities, recurring cash flows and savings goals.
//
// Callers build them fresh for every engine run. Every type has an explicit Clone that
// returns a fully independent deep copy, and a Set method used by scenario overrides
// that only accepts the fields whitelisted for its Target.
package household
