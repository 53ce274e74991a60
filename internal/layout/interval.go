// Package layout stacks one-dimensional time intervals into vertical bands
// so that overlapping intervals never share a band.
package layout

import "sort"

// Interval is a time range on the shared horizontal axis. Seq records the
// original insertion position and breaks ties between equal starts.
type Interval struct {
	Start float64
	End   float64
	Tag   string
	Seq   int
}

// Placement is a laid-out interval. The embedded Interval keeps the Seq
// of the earliest input interval surviving in the merged range; the rest
// of the constituents were merged away and dropped.
type Placement struct {
	Interval
	Y      float64
	Height float64
}

// Stack lays out the given intervals within the total height. The input
// need not be sorted. The algorithm runs in three passes: merge adjacent
// same-tag ranges, compute overlap chain depth, then assign bands top to
// bottom in start order.
func Stack(in []Interval, total float64) []Placement {
	if len(in) == 0 {
		return nil
	}

	sorted := make([]Interval, len(in))
	copy(sorted, in)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].Seq < sorted[j].Seq
	})

	merged := mergeSameTag(sorted)

	if len(merged) == 1 {
		return []Placement{{Interval: merged[0], Y: 0, Height: total}}
	}

	depths := chainDepths(merged)

	out := make([]Placement, len(merged))
	for i, iv := range merged {
		// Stack below every already-placed interval that overlaps
		// this one on the time axis.
		var y float64
		for j := 0; j < i; j++ {
			if overlaps(merged[j], iv) {
				if bottom := out[j].Y + out[j].Height; bottom > y {
					y = bottom
				}
			}
		}

		var h float64
		if !hasForwardOverlap(merged, i) {
			// Last member of its chain: fill the remaining space.
			h = total - y
		} else {
			d := depths[i]
			for j := 0; j < i; j++ {
				if overlaps(merged[j], iv) && depths[j] > d {
					d = depths[j]
				}
			}
			h = total / float64(d)
		}
		if y+h > total {
			h = total - y
		}
		if h < 0 {
			h = 0
		}

		out[i] = Placement{Interval: iv, Y: y, Height: h}
	}

	return out
}

// Merge merges touching or overlapping same-tag intervals, scanning left
// to right. The input must be sorted by start; the output is the
// canonical merged set. Merging is idempotent.
func Merge(sorted []Interval) []Interval {
	return mergeSameTag(sorted)
}

func mergeSameTag(sorted []Interval) []Interval {
	if len(sorted) == 0 {
		return nil
	}

	out := make([]Interval, 0, len(sorted))
	out = append(out, sorted[0])
	for _, next := range sorted[1:] {
		curr := &out[len(out)-1]
		if next.Tag == curr.Tag && next.Start <= curr.End {
			if next.End > curr.End {
				curr.End = next.End
			}
			continue
		}
		out = append(out, next)
	}
	return out
}

// chainDepths computes, for each interval, the length of the longest
// chain of forward overlaps starting at it. Computed right to left so
// each entry is resolved before anything that can reach it.
func chainDepths(sorted []Interval) []int {
	depths := make([]int, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		depths[i] = 1
		for j := i + 1; j < len(sorted); j++ {
			if sorted[j].Start > sorted[i].End {
				break
			}
			if d := 1 + depths[j]; d > depths[i] {
				depths[i] = d
			}
		}
	}
	return depths
}

func hasForwardOverlap(sorted []Interval, i int) bool {
	return i+1 < len(sorted) && sorted[i+1].Start <= sorted[i].End
}

func overlaps(a, b Interval) bool {
	return a.Start <= b.End && b.Start <= a.End
}
