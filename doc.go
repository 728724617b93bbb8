// Package finengine provides the deterministic financial calculation engine of a
// personal-finance application. It operates on fixed-point currency values and is
// designed to be stateless, exact to the cent and reproducible: the same input
// always produces the same output, including the ordering of tied results.
//
// The root package holds the money primitives every other package builds on:
//   - Cents: an integer amount of cents within the safe-integer range, with
//     checked arithmetic and explicit rounding modes.
//   - Allocation: fair splitting of an amount into equal parts or by ratios, the
//     remainder going to the earliest shares so parts always sum to the input.
//   - Error categories: invalid input, arithmetic failures and domain invariant
//     violations, so that callers can branch with errors.Is.
//
// The calculation components live in sub packages:
//   - scenario: non-destructive field overrides over household entities.
//   - amortization: loan payment schedules, extra payments and early payoff.
//   - projection: multi-year net worth simulation.
//   - rentvsbuy: year by year comparison of buying and renting.
//   - investment: holdings aggregation and transaction bucketing.
//   - insights: rule based findings over household metrics.
//
// None of these packages read the clock, the environment or any file. Callers
// supply every reference date explicitly.
package finengine
