// Package utils provides small, dependency-free helpers shared by the
// rkyv core and its sinks: overflow-checked arithmetic, error wrapping,
// a scratch-buffer pool, and byte-order helpers.
package utils

import (
	"fmt"
	"math"
)

// CheckMultiplyOverflow checks if multiplying two uint64 values would overflow.
// Returns an error if overflow would occur.
func CheckMultiplyOverflow(a, b uint64) error {
	if a == 0 || b == 0 {
		return nil // No overflow when either is zero
	}

	if a > math.MaxUint64/b {
		return fmt.Errorf("multiplication overflow: %d * %d exceeds uint64 max", a, b)
	}

	return nil
}

// SafeMultiply multiplies two uint64 values and returns the result if no overflow occurs.
// Returns 0 and an error if overflow would occur.
func SafeMultiply(a, b uint64) (uint64, error) {
	if err := CheckMultiplyOverflow(a, b); err != nil {
		return 0, err
	}
	return a * b, nil
}

// ValidateBufferSize validates that a buffer size is within reasonable limits.
// maxSize parameter allows different limits for different use cases.
func ValidateBufferSize(size, maxSize uint64, description string) error {
	if size == 0 {
		return fmt.Errorf("%s: size cannot be zero", description)
	}

	if size > maxSize {
		return fmt.Errorf("%s: size %d exceeds maximum %d", description, size, maxSize)
	}

	return nil
}

// CheckOffsetRange computes to-from and reports an error instead of
// truncating when the difference does not fit in an int32, or when either
// position is negative. Positions themselves are not capped: any pair
// whose difference fits in an int32 is accepted. This backs RelPtr's
// constructor, which must never silently wrap a too-large offset.
func CheckOffsetRange(from, to int) (int32, error) {
	if from < 0 || to < 0 {
		return 0, fmt.Errorf("rkyv: archive position cannot be negative (from=%d, to=%d)", from, to)
	}
	diff := int64(to) - int64(from)
	if diff > math.MaxInt32 || diff < math.MinInt32 {
		return 0, fmt.Errorf("rkyv: relative offset %d (from=%d, to=%d) exceeds int32 range", diff, from, to)
	}
	return int32(diff), nil
}
