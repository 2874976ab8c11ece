package folio

import (
	"reflect"
	"slices"
	"testing"
)

func TestRange_Contains(t *testing.T) {
	r := NewRange(NewDate(2024, 1, 10), NewDate(2024, 1, 20))

	for _, tc := range []struct {
		date Date
		want bool
	}{
		{NewDate(2024, 1, 9), false},
		{NewDate(2024, 1, 10), true},
		{NewDate(2024, 1, 15), true},
		{NewDate(2024, 1, 20), true},
		{NewDate(2024, 1, 21), false},
	} {
		if got := r.Contains(tc.date); got != tc.want {
			t.Errorf("Contains(%s) = %v, want %v", tc.date, got, tc.want)
		}
	}
}

func TestNewRange_SwapsReversedBounds(t *testing.T) {
	r := NewRange(NewDate(2024, 1, 20), NewDate(2024, 1, 10))
	if r.From != NewDate(2024, 1, 10) || r.To != NewDate(2024, 1, 20) {
		t.Errorf("NewRange did not swap reversed bounds: %v", r)
	}
}

func TestRange_Periods(t *testing.T) {
	tests := []struct {
		name     string
		r        Range
		p        Period
		expected []Range
	}{
		{
			name: "Weekly periods over two weeks",
			r:    NewRange(NewDate(2024, 1, 10), NewDate(2024, 1, 17)), // Wednesday to Wednesday
			p:    Weekly,
			expected: []Range{
				NewRange(NewDate(2024, 1, 8), NewDate(2024, 1, 14)),
				NewRange(NewDate(2024, 1, 15), NewDate(2024, 1, 21)),
			},
		},
		{
			name: "Monthly periods over parts of three months",
			r:    NewRange(NewDate(2024, 2, 15), NewDate(2024, 4, 10)),
			p:    Monthly,
			expected: []Range{
				NewRange(NewDate(2024, 2, 1), NewDate(2024, 2, 29)),
				NewRange(NewDate(2024, 3, 1), NewDate(2024, 3, 31)),
				NewRange(NewDate(2024, 4, 1), NewDate(2024, 4, 30)),
			},
		},
		{
			name: "Daily periods",
			r:    NewRange(NewDate(2024, 1, 1), NewDate(2024, 1, 3)),
			p:    Daily,
			expected: []Range{
				NewRange(NewDate(2024, 1, 1), NewDate(2024, 1, 1)),
				NewRange(NewDate(2024, 1, 2), NewDate(2024, 1, 2)),
				NewRange(NewDate(2024, 1, 3), NewDate(2024, 1, 3)),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(tt.r.Periods(tt.p))
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Range.Periods() = %v, want %v", got, tt.expected)
			}
		})
	}
}
