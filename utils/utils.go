package utils

import (
	"strconv"

	"golang.org/x/exp/constraints"
)

func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}

	return n, nil
}

// ToInts converts every field, stopping at the first one that is not an integer.
func ToInts(fields []string) ([]int, error) {
	nums := make([]int, 0, len(fields))
	for _, field := range fields {
		n, err := ToInt(field)
		if err != nil {
			return nil, err
		}
		nums = append(nums, n)
	}

	return nums, nil
}

func Abs[T constraints.Signed | constraints.Float](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
