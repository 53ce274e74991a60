package layout

import (
	"reflect"
	"testing"
)

func ivs(ranges ...[2]float64) []Interval {
	out := make([]Interval, len(ranges))
	for i, r := range ranges {
		out[i] = Interval{Start: r[0], End: r[1], Tag: string(rune('a' + i)), Seq: i}
	}
	return out
}

func TestStackEmptyAndSingle(t *testing.T) {
	if got := Stack(nil, 100); got != nil {
		t.Errorf("empty input should produce nil, got %v", got)
	}

	got := Stack([]Interval{{Start: 5, End: 15, Tag: "a"}}, 100)
	if len(got) != 1 {
		t.Fatalf("expected 1 placement, got %d", len(got))
	}
	if got[0].Y != 0 || got[0].Height != 100 {
		t.Errorf("single interval should fill the full height, got Y=%v H=%v", got[0].Y, got[0].Height)
	}
}

func TestStackNonOverlappingFullHeight(t *testing.T) {
	placed := Stack(ivs([2]float64{0, 10}, [2]float64{20, 30}), 80)
	for _, p := range placed {
		if p.Y != 0 || p.Height != 80 {
			t.Errorf("non-overlapping interval [%v,%v] should fill full height, got Y=%v H=%v",
				p.Start, p.End, p.Y, p.Height)
		}
	}
}

func TestStackOverlapChain(t *testing.T) {
	const h = 90.0
	placed := Stack(ivs([2]float64{0, 20}, [2]float64{10, 30}, [2]float64{25, 40}), h)
	if len(placed) != 3 {
		t.Fatalf("expected 3 placements, got %d", len(placed))
	}

	// No two time-overlapping intervals may share any part of a band.
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			a, b := placed[i], placed[j]
			if a.Start > b.End || b.Start > a.End {
				continue
			}
			if a.Y < b.Y+b.Height && b.Y < a.Y+a.Height {
				t.Errorf("bands of [%v,%v] (%v+%v) and [%v,%v] (%v+%v) overlap",
					a.Start, a.End, a.Y, a.Height, b.Start, b.End, b.Y, b.Height)
			}
		}
	}

	// At any time slice the covering bands must fit within the total height.
	for _, x := range []float64{5, 15, 27, 35} {
		var sum float64
		for _, p := range placed {
			if x >= p.Start && x <= p.End {
				sum += p.Height
			}
		}
		if sum > h+1e-9 {
			t.Errorf("band heights at x=%v sum to %v, exceeds %v", x, sum, h)
		}
	}
}

func TestStackStableTieBreak(t *testing.T) {
	in := []Interval{
		{Start: 10, End: 20, Tag: "b", Seq: 1},
		{Start: 10, End: 30, Tag: "a", Seq: 0},
	}
	placed := Stack(in, 60)
	if len(placed) != 2 {
		t.Fatalf("expected 2 placements, got %d", len(placed))
	}
	// Insertion order wins on equal starts: Seq 0 is placed first (on top).
	if placed[0].Seq != 0 || placed[0].Y != 0 {
		t.Errorf("first-inserted interval should be placed on top, got %+v", placed[0])
	}
	if placed[1].Y <= placed[0].Y {
		t.Errorf("later-inserted interval should stack below, got %+v", placed[1])
	}
}

func TestMergeSameTag(t *testing.T) {
	tests := []struct {
		name string
		in   []Interval
		want []Interval
	}{
		{
			name: "touching same tag",
			in: []Interval{
				{Start: 0, End: 10, Tag: "a", Seq: 0},
				{Start: 10, End: 20, Tag: "a", Seq: 1},
			},
			want: []Interval{{Start: 0, End: 20, Tag: "a", Seq: 0}},
		},
		{
			name: "overlapping same tag",
			in: []Interval{
				{Start: 0, End: 15, Tag: "a", Seq: 0},
				{Start: 5, End: 12, Tag: "a", Seq: 1},
			},
			want: []Interval{{Start: 0, End: 15, Tag: "a", Seq: 0}},
		},
		{
			name: "overlapping different tags kept",
			in: []Interval{
				{Start: 0, End: 15, Tag: "a", Seq: 0},
				{Start: 5, End: 20, Tag: "b", Seq: 1},
			},
			want: []Interval{
				{Start: 0, End: 15, Tag: "a", Seq: 0},
				{Start: 5, End: 20, Tag: "b", Seq: 1},
			},
		},
		{
			name: "gap same tag kept",
			in: []Interval{
				{Start: 0, End: 10, Tag: "a", Seq: 0},
				{Start: 11, End: 20, Tag: "a", Seq: 1},
			},
			want: []Interval{
				{Start: 0, End: 10, Tag: "a", Seq: 0},
				{Start: 11, End: 20, Tag: "a", Seq: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Merge = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMergeIdempotent(t *testing.T) {
	in := []Interval{
		{Start: 0, End: 10, Tag: "a", Seq: 0},
		{Start: 5, End: 20, Tag: "a", Seq: 1},
		{Start: 15, End: 30, Tag: "b", Seq: 2},
		{Start: 28, End: 40, Tag: "b", Seq: 3},
	}
	once := Merge(in)
	twice := Merge(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("Merge is not idempotent: %+v vs %+v", once, twice)
	}
}
