package daterange

import "fmt"

// Overlap decides whether a stored stay [start, end] conflicts with a requested range.
type Overlap string

const (
	// OverlapInterval is the closed-interval test: start <= to AND end >= from.
	OverlapInterval Overlap = "interval"
	// OverlapEndpoint only looks at whether start or end falls inside [from, to]. A stay that
	// begins before and ends after the requested range is not reported as a conflict.
	OverlapEndpoint Overlap = "endpoint"
)

// ParseOverlap maps a configuration value to a policy, defaulting to OverlapInterval.
func ParseOverlap(value string) Overlap {
	if Overlap(value) == OverlapEndpoint {
		return OverlapEndpoint
	}

	return OverlapInterval
}

// Predicate renders the policy as a parenthesised SQL condition over the given columns,
// binding the range through the named parameters fromArg and toArg.
func (o Overlap) Predicate(startColumn, endColumn, fromArg, toArg string) string {
	if o == OverlapEndpoint {
		return fmt.Sprintf(
			"((%[1]s >= :%[3]s AND %[1]s <= :%[4]s) OR (%[2]s >= :%[3]s AND %[2]s <= :%[4]s))",
			startColumn, endColumn, fromArg, toArg,
		)
	}

	return fmt.Sprintf("(%s <= :%s AND %s >= :%s)", startColumn, toArg, endColumn, fromArg)
}
