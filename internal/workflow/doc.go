// Package workflow implements Temporal workflow definitions for go-solid.
//
// Workflows hold only deterministic control flow. Cost aggregation and
// access checks run as activities in the payroll package; workflows must
// not read the clock, draw random numbers, or perform I/O directly.
package workflow
