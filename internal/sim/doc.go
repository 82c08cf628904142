// Package sim runs Monte Carlo Farkle games and reports the average score
// earned per scored roll.
//
// A game plays turns until its score reaches the target. Each turn rolls six
// dice and keeps rolling while a hand uses up every face slot. Runs can be
// split across workers; each worker owns an independently seeded generator
// and the per-worker totals are summed at the end.
package sim
