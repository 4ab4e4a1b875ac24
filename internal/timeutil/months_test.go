package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseMonthLabel(t *testing.T) {
	got, err := ParseMonthLabel("August 25")
	assert.NoError(t, err)
	assert.Equal(t, time.August, got.Month())
	assert.Equal(t, 2025, got.Year())

	_, err = ParseMonthLabel("Augst 25")
	assert.Error(t, err)
	_, err = ParseMonthLabel("")
	assert.Error(t, err)
}

func TestNextMonthLabel(t *testing.T) {
	next, err := NextMonthLabel("August 25")
	assert.NoError(t, err)
	assert.Equal(t, "September 25", next)

	// Year boundary
	next, err = NextMonthLabel("December 25")
	assert.NoError(t, err)
	assert.Equal(t, "January 26", next)
}

func TestComparerLexicographic(t *testing.T) {
	c := Comparer{Order: OrderLexicographic}

	// Plain string ordering: "April" < "August" < "December" < "July".
	labels := []string{"July 25", "April 25", "December 25", "August 25"}
	c.Sort(labels)
	assert.Equal(t, []string{"April 25", "August 25", "December 25", "July 25"}, labels)

	// July sorts after December as a string, so it falls outside the
	// April..December range.
	assert.True(t, c.InRange("August 25", "April 25", "December 25"))
	assert.False(t, c.InRange("July 25", "April 25", "December 25"))
}

func TestComparerChronological(t *testing.T) {
	c := Comparer{Order: OrderChronological}

	labels := []string{"July 25", "April 25", "December 24", "August 25"}
	c.Sort(labels)
	assert.Equal(t, []string{"December 24", "April 25", "July 25", "August 25"}, labels)

	assert.True(t, c.InRange("July 25", "April 25", "December 25"))
	assert.False(t, c.InRange("March 25", "April 25", "December 25"))
}

func TestComparerChronologicalMixedLabels(t *testing.T) {
	c := Comparer{Order: OrderChronological}

	// Labels that fail to parse always land after parsable ones, in
	// plain string order, so the sort stays stable however the input
	// is shuffled.
	labels := []string{"bogus", "August 25", "apartment", "April 25"}
	c.Sort(labels)
	assert.Equal(t, []string{"April 25", "August 25", "apartment", "bogus"}, labels)

	assert.True(t, c.Less("December 99", "apartment"))
	assert.False(t, c.Less("apartment", "December 99"))
	assert.True(t, c.Less("apartment", "bogus"))
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, OrderChronological, ParseOrder("chronological"))
	assert.Equal(t, OrderLexicographic, ParseOrder("lexicographic"))
	assert.Equal(t, OrderLexicographic, ParseOrder(""))
	assert.Equal(t, OrderLexicographic, ParseOrder("bogus"))
}
