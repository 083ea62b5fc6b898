package domain

import (
	"testing"
	"testing/quick"
)

// clampCost folds an arbitrary int64 into [0, MaxCostCents].
func clampCost(v int64) Cents {
	if v < 0 {
		v = -(v + 1)
	}
	return Cents(v % (int64(MaxCostCents) + 1))
}

func FuzzTotal(f *testing.F) {
	f.Add(int64(40000), int64(700000), int64(9999999))
	f.Add(int64(0), int64(0), int64(0))
	f.Add(int64(MaxCostCents), int64(MaxCostCents), int64(MaxCostCents))
	f.Add(int64(-1), int64(1<<62), int64(7))

	f.Fuzz(func(t *testing.T, dev, mgr, pm int64) {
		d, m, p := clampCost(dev), clampCost(mgr), clampCost(pm)
		team := []Contributor{NewDeveloperRole(d), NewManagerRole(m), NewProjectManagerRole(p)}

		want := d*5 + m*7 + p*9
		if got := Total(team); got != want {
			t.Fatalf("Total = %d, want %d", got, want)
		}

		reversed := []Contributor{team[2], team[1], team[0]}
		if got := Total(reversed); got != want {
			t.Fatalf("Total of reversed team = %d, want %d", got, want)
		}
		if want < 0 {
			t.Fatalf("total overflowed: %d", want)
		}
	})
}

// Property: each role contributes exactly cost × multiplier for any bounded cost.
func TestContribution_MultiplierProperty(t *testing.T) {
	f := func(raw int64) bool {
		c := clampCost(raw)
		return NewDeveloperRole(c).Contribution() == c*5 &&
			NewManagerRole(c).Contribution() == c*7 &&
			NewProjectManagerRole(c).Contribution() == c*9
	}

	if err := quick.Check(f, nil); err != nil {
		t.Errorf("Contribution() multiplier property failed: %v", err)
	}
}

// Property: Total is the same for a team and any rotation of it.
func TestTotal_RotationProperty(t *testing.T) {
	f := func(raw []int64, shift uint8) bool {
		team := make([]Contributor, 0, len(raw))
		for i, v := range raw {
			c := clampCost(v)
			switch i % 3 {
			case 0:
				team = append(team, NewDeveloperRole(c))
			case 1:
				team = append(team, NewManagerRole(c))
			default:
				team = append(team, NewProjectManagerRole(c))
			}
		}
		if len(team) == 0 {
			return Total(team) == 0
		}

		k := int(shift) % len(team)
		rotated := append(append([]Contributor(nil), team[k:]...), team[:k]...)
		return Total(team) == Total(rotated) && Total(team) >= 0
	}

	if err := quick.Check(f, nil); err != nil {
		t.Errorf("Total() rotation property failed: %v", err)
	}
}
