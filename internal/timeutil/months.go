package timeutil

import (
	"fmt"
	"sort"
	"time"
)

// MonthLabelLayout parses labels like "August 25" (month name, 2-digit year).
const MonthLabelLayout = "January 06"

// ParseMonthLabel parses a "MonthName YY" label to the first of that month.
func ParseMonthLabel(label string) (time.Time, error) {
	t, err := time.Parse(MonthLabelLayout, label)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month label %q: %w", label, err)
	}
	return t, nil
}

// FormatMonthLabel renders a time as a "MonthName YY" label.
func FormatMonthLabel(t time.Time) string {
	return t.Format(MonthLabelLayout)
}

// NextMonthLabel rolls a label forward one month, crossing year boundaries
// ("December 25" -> "January 26").
func NextMonthLabel(label string) (string, error) {
	t, err := ParseMonthLabel(label)
	if err != nil {
		return "", err
	}
	return FormatMonthLabel(t.AddDate(0, 1, 0)), nil
}

// MonthOrder selects how month labels are compared. The stored data orders
// labels as plain strings; chronological ordering is available behind the
// same comparer so callers never branch on the strategy themselves.
type MonthOrder string

const (
	OrderLexicographic MonthOrder = "lexicographic"
	OrderChronological MonthOrder = "chronological"
)

// ParseOrder maps a config value to a MonthOrder, defaulting to
// lexicographic for anything unrecognized.
func ParseOrder(s string) MonthOrder {
	if MonthOrder(s) == OrderChronological {
		return OrderChronological
	}
	return OrderLexicographic
}

// Comparer compares month labels under a fixed ordering strategy.
type Comparer struct {
	Order MonthOrder
}

func (c Comparer) Less(a, b string) bool {
	if c.Order == OrderChronological {
		ta, errA := ParseMonthLabel(a)
		tb, errB := ParseMonthLabel(b)
		switch {
		case errA == nil && errB == nil:
			return ta.Before(tb)
		case errA == nil:
			// Unparsable labels always sort after parsable ones, and
			// among themselves as plain strings, keeping the ordering
			// total when both kinds appear in one sort.
			return true
		case errB == nil:
			return false
		}
	}
	return a < b
}

// InRange reports whether label m falls inside the inclusive [start, end]
// range under the comparer's ordering.
func (c Comparer) InRange(m, start, end string) bool {
	return !c.Less(m, start) && !c.Less(end, m)
}

// Sort orders labels ascending in place.
func (c Comparer) Sort(labels []string) {
	sort.Slice(labels, func(i, j int) bool {
		return c.Less(labels[i], labels[j])
	})
}
