package domain

import "fmt"

// Cents represents monetary values in cents (1/100 of a dollar).
// Integer cents keep every payroll sum exact, so aggregation order never
// changes a total.
type Cents int64

const (
	// CentsPerDollar represents the number of cents in a dollar.
	CentsPerDollar = 100
)

// String formats cents as a dollar amount (e.g., 150 → "$1.50").
func (c Cents) String() string { return fmt.Sprintf("$%.2f", float64(c)/CentsPerDollar) }

// IsZero returns true if the amount is zero.
func (c Cents) IsZero() bool { return c == 0 }

// Add returns the sum of two cent amounts.
func (c Cents) Add(x Cents) Cents { return c + x }

// Mul scales the amount by an integer factor.
func (c Cents) Mul(factor int64) Cents { return c * Cents(factor) }
