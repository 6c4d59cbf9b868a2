// Package minmax finds the minimum and maximum of a numeric slice in one
// divide-and-conquer pass. It is a standalone utility with no relation to the
// planning pipeline.
package minmax

import (
	"errors"
	"math"
)

// ErrEmptyInput is returned by Range when the slice holds no values.
var ErrEmptyInput = errors.New("empty input slice")

// Range returns the minimum and maximum of values.
//
// The slice is split recursively; halves of size one or two resolve directly,
// and results merge on the way back up. O(n) comparisons, O(log n) stack.
func Range(values []float64) (float64, float64, error) {
	if len(values) == 0 {
		return 0, 0, ErrEmptyInput
	}
	lo, hi := scan(values, 0, len(values)-1)
	return lo, hi, nil
}

func scan(values []float64, left, right int) (float64, float64) {
	if left == right {
		return values[left], values[left]
	}
	if right == left+1 {
		if values[left] < values[right] {
			return values[left], values[right]
		}
		return values[right], values[left]
	}

	mid := (left + right) / 2
	leftMin, leftMax := scan(values, left, mid)
	rightMin, rightMax := scan(values, mid+1, right)

	return math.Min(leftMin, rightMin), math.Max(leftMax, rightMax)
}
