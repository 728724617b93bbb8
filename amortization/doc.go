// Package amortization generates fixed-payment loan schedules, with or without extra
// principal payments, and derives payoff analyses from them.
//
// Interest for a period is balance × rate / 1200, rounded half-up to the cent. The last
// period always pays exactly the remaining balance so every schedule ends at zero.
package amortization
