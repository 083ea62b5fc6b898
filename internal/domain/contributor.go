// Package domain defines the payroll cost model: contributors that compute
// their own weighted contribution, and the aggregator that sums them without
// knowing which variant it holds. It also holds the access, post and shape
// value types and the activity contracts.
//
// New roles are added by implementing Contributor. Total never inspects the
// concrete type, so it stays closed to modification as the role set grows.
package domain

// Role multipliers applied to a contributor's base cost.
const (
	DeveloperMultiplier      int64 = 5
	ManagerMultiplier        int64 = 7
	ProjectManagerMultiplier int64 = 9
)

// Contributor is anything that can report its weighted payroll contribution.
type Contributor interface {
	Contribution() Cents
}

// DeveloperRole is a contributor weighted at DeveloperMultiplier.
type DeveloperRole struct {
	cost Cents
}

// NewDeveloperRole returns a developer with the given base cost.
func NewDeveloperRole(cost Cents) DeveloperRole { return DeveloperRole{cost: cost} }

// Cost returns the unweighted base cost.
func (d DeveloperRole) Cost() Cents { return d.cost }

// Contribution returns cost × DeveloperMultiplier.
func (d DeveloperRole) Contribution() Cents { return d.cost.Mul(DeveloperMultiplier) }

// ManagerRole is a contributor weighted at ManagerMultiplier.
type ManagerRole struct {
	cost Cents
}

// NewManagerRole returns a manager with the given base cost.
func NewManagerRole(cost Cents) ManagerRole { return ManagerRole{cost: cost} }

// Cost returns the unweighted base cost.
func (m ManagerRole) Cost() Cents { return m.cost }

// Contribution returns cost × ManagerMultiplier.
func (m ManagerRole) Contribution() Cents { return m.cost.Mul(ManagerMultiplier) }

// ProjectManagerRole is a contributor weighted at ProjectManagerMultiplier.
type ProjectManagerRole struct {
	cost Cents
}

// NewProjectManagerRole returns a project manager with the given base cost.
func NewProjectManagerRole(cost Cents) ProjectManagerRole {
	return ProjectManagerRole{cost: cost}
}

// Cost returns the unweighted base cost.
func (p ProjectManagerRole) Cost() Cents { return p.cost }

// Contribution returns cost × ProjectManagerMultiplier.
func (p ProjectManagerRole) Contribution() Cents {
	return p.cost.Mul(ProjectManagerMultiplier)
}

// Total sums the contribution of every contributor. An empty or nil slice
// totals zero. Integer arithmetic makes the result independent of order.
func Total(contributors []Contributor) Cents {
	var total Cents
	for _, c := range contributors {
		total = total.Add(c.Contribution())
	}
	return total
}

// Aggregator holds a fixed set of contributors captured at construction.
type Aggregator struct {
	contributors []Contributor
}

// NewAggregator copies the given contributors so later changes to the
// caller's slice do not affect the aggregate.
func NewAggregator(contributors ...Contributor) Aggregator {
	owned := make([]Contributor, len(contributors))
	copy(owned, contributors)
	return Aggregator{contributors: owned}
}

// Len reports how many contributors the aggregator holds.
func (a Aggregator) Len() int { return len(a.contributors) }

// Total returns the summed contribution of the held contributors.
func (a Aggregator) Total() Cents { return Total(a.contributors) }
