// SPDX-License-Identifier: MIT

// Package fieldstat estimates the statistics of generated random fields.
//
// Summarize reports the moments of one field. Estimator pools many
// independent realizations of the same grid and estimates the marginal
// mean and variance and the correlation between nodes a given number of
// steps apart along each axis, which for an SCMD field should approach
// exp(-2·lag·de/θ).
package fieldstat
