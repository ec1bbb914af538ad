package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOrder(t *testing.T) {
	assert.Len(t, WeekdayOrder, 7)
	assert.Equal(t, "Monday", WeekdayOrder[0])
	assert.Equal(t, "Sunday", WeekdayOrder[6])
}

func TestWeekdayIndex(t *testing.T) {
	assert.Equal(t, 0, WeekdayIndex("Monday"))
	assert.Equal(t, 4, WeekdayIndex("Friday"))
	assert.Equal(t, 6, WeekdayIndex("Sunday"))
	assert.Equal(t, -1, WeekdayIndex("Caturday"))
	assert.Equal(t, -1, WeekdayIndex(""))
}
