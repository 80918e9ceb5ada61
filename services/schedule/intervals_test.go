package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"slotwise/models"
)

func iv(start, end int) models.Interval {
	return models.Interval{Start: start, End: end}
}

func TestMergeIntervals(t *testing.T) {
	cases := []struct {
		name string
		in   []models.Interval
		want []models.Interval
	}{
		{name: "empty", in: nil, want: nil},
		{name: "single", in: []models.Interval{iv(60, 120)}, want: []models.Interval{iv(60, 120)}},
		{
			name: "overlapping",
			in:   []models.Interval{iv(60, 180), iv(120, 240)},
			want: []models.Interval{iv(60, 240)},
		},
		{
			name: "touching merges",
			in:   []models.Interval{iv(60, 120), iv(120, 180)},
			want: []models.Interval{iv(60, 180)},
		},
		{
			name: "disjoint stay apart",
			in:   []models.Interval{iv(300, 360), iv(60, 120)},
			want: []models.Interval{iv(60, 120), iv(300, 360)},
		},
		{
			name: "contained",
			in:   []models.Interval{iv(60, 600), iv(120, 180)},
			want: []models.Interval{iv(60, 600)},
		},
		{
			name: "degenerate dropped",
			in:   []models.Interval{iv(90, 90), iv(60, 120)},
			want: []models.Interval{iv(60, 120)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MergeIntervals(tc.in))
		})
	}
}

func TestMergeIntervals_Idempotent(t *testing.T) {
	in := []models.Interval{iv(540, 600), iv(0, 540), iv(580, 620), iv(1000, 1439)}
	once := MergeIntervals(in)
	assert.Equal(t, once, MergeIntervals(once))
}

func TestMergeIntervals_OutputSortedAndDisjoint(t *testing.T) {
	in := []models.Interval{iv(700, 800), iv(0, 100), iv(100, 150), iv(400, 500)}
	out := MergeIntervals(in)
	for i := 1; i < len(out); i++ {
		assert.Less(t, out[i-1].End, out[i].Start, "intervals %d and %d overlap or touch", i-1, i)
	}
}

func TestInvertIntervals(t *testing.T) {
	cases := []struct {
		name string
		in   []models.Interval
		want []models.Interval
	}{
		{
			name: "empty means whole day free",
			in:   nil,
			want: []models.Interval{iv(models.DayStart, models.DayEnd)},
		},
		{
			name: "whole day busy means nothing free",
			in:   []models.Interval{iv(models.DayStart, models.DayEnd)},
			want: nil,
		},
		{
			name: "busy edges leave middle free",
			in:   []models.Interval{iv(0, 540), iv(1020, 1439)},
			want: []models.Interval{iv(540, 1020)},
		},
		{
			name: "busy middle leaves edges free",
			in:   []models.Interval{iv(540, 1020)},
			want: []models.Interval{iv(0, 540), iv(1020, 1439)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, InvertDay(tc.in))
		})
	}
}

func TestInvertIntervals_SelfInverse(t *testing.T) {
	sets := [][]models.Interval{
		nil,
		{iv(0, 60)},
		{iv(120, 300), iv(600, 900)},
		{iv(0, 540), iv(1020, 1439)},
		{iv(0, 1439)},
	}
	for _, s := range sets {
		merged := MergeIntervals(s)
		assert.Equal(t, merged, MergeIntervals(InvertDay(InvertDay(merged))))
	}
}
