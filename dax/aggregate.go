package dax

import (
	"math"

	mapset "github.com/deckarep/golang-set/v2"
)

// Sum adds the Number entries of a column, skipping every other kind.
// An empty or wholly non-numeric column sums to 0.
func (t *Table) Sum(column string) (float64, bool) {
	var sum float64
	ok := t.withColumn(column, func(values []Value) {
		for _, v := range values {
			if n, isNum := v.Float(); isNum {
				sum += n
			}
		}
	})
	return sum, ok
}

// Average divides the sum of the Number entries by how many there are.
// A column without numbers averages to 0 rather than reporting no result.
func (t *Table) Average(column string) (float64, bool) {
	var sum float64
	var count int
	ok := t.withColumn(column, func(values []Value) {
		for _, v := range values {
			if n, isNum := v.Float(); isNum {
				sum += n
				count++
			}
		}
	})
	if !ok {
		return 0, false
	}
	if count == 0 {
		return 0, true
	}
	return sum / float64(count), true
}

// Min returns the smallest Number entry of a column. NaN entries are
// ignored; ok is false when no other number remains.
func (t *Table) Min(column string) (float64, bool) {
	return t.reduce(column, func(candidate, best float64) bool {
		return compareFloat(candidate, best) < 0
	})
}

// Max returns the largest Number entry of a column. NaN entries are
// ignored; ok is false when no other number remains.
func (t *Table) Max(column string) (float64, bool) {
	return t.reduce(column, func(candidate, best float64) bool {
		return compareFloat(candidate, best) > 0
	})
}

// reduce folds the non-NaN numbers of a column, replacing the running
// best whenever better reports true
func (t *Table) reduce(column string, better func(candidate, best float64) bool) (float64, bool) {
	var best float64
	found := false
	t.withColumn(column, func(values []Value) {
		for _, v := range values {
			n, isNum := v.Float()
			if !isNum || math.IsNaN(n) {
				continue
			}
			if !found || better(n, best) {
				best = n
				found = true
			}
		}
	})
	return best, found
}

// Count returns the number of entries in a column, whatever their kind
func (t *Table) Count(column string) (int, bool) {
	var count int
	ok := t.withColumn(column, func(values []Value) {
		count = len(values)
	})
	return count, ok
}

// DistinctCount returns the number of distinct entries in a column under
// Value.Equal, so all NaNs count once and +Inf and -Inf count separately.
func (t *Table) DistinctCount(column string) (int, bool) {
	var count int
	ok := t.withColumn(column, func(values []Value) {
		seen := mapset.NewThreadUnsafeSet[valueKey]()
		for _, v := range values {
			seen.Add(v.key())
		}
		count = seen.Cardinality()
	})
	return count, ok
}

// Divide returns numerator/denominator. When the denominator is zero it
// returns the optional alternate result, or ok=false if none was given.
func Divide(numerator, denominator float64, alternate ...float64) (float64, bool) {
	if denominator == 0 {
		if len(alternate) > 0 {
			return alternate[0], true
		}
		return 0, false
	}
	return numerator / denominator, true
}
