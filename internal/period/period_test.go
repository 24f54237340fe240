package period_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/clinic-mouzaia-it/mouzaia-clinic-kitchenApp/internal/period"
	"github.com/stretchr/testify/assert"
)

func at(hour, min, sec int) time.Time {
	return time.Date(2025, time.January, 10, hour, min, sec, 0, time.Local)
}

func TestClassify(t *testing.T) {
	tests := []struct {
		now  time.Time
		want period.Period
	}{
		{at(10, 59, 59), period.None},
		{at(11, 0, 0), period.Lunch},
		{at(12, 0, 0), period.Lunch},
		{at(14, 59, 59), period.Lunch},
		{at(15, 0, 0), period.None},
		{at(15, 30, 0), period.None},
		{at(16, 0, 0), period.None},
		{at(9, 0, 0), period.None},
		{at(18, 29, 59), period.None},
		{at(18, 30, 0), period.Dinner},
		{at(18, 45, 0), period.Dinner},
		{at(19, 0, 0), period.Dinner},
		{at(20, 59, 59), period.Dinner},
		{at(21, 0, 0), period.Dinner},
		{at(21, 29, 59), period.Dinner},
		{at(21, 30, 0), period.Dinner},
		{at(21, 30, 1), period.None},
		{at(21, 31, 0), period.None},
		{at(22, 0, 0), period.None},
		{at(0, 0, 0), period.None},
	}

	for _, tt := range tests {
		t.Run(tt.now.Format("15:04:05"), func(t *testing.T) {
			assert.Equal(t, tt.want, period.Classify(tt.now))
		})
	}
}

func TestClassifySubSecondDinnerEnd(t *testing.T) {
	end := time.Date(2025, time.January, 10, 21, 30, 0, 1, time.Local)
	assert.Equal(t, period.None, period.Classify(end))
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Lunch ", "lunch"},
		{"  DINNER", "dinner"},
		{"lunch", "lunch"},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, period.Normalize(tt.in))
		})
	}
}
