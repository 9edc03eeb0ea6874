package pure_utils

import (
	"github.com/hashicorp/go-set/v2"
)

func ContainsSameElements[T comparable](a, b []T) bool {
	return set.From(a).Equal(set.From(b))
}

// Check if all elements of a are present in b
func AllElementsIn[T comparable](a, b []T) bool {
	bSet := make(map[T]bool, len(b))
	for _, item := range b {
		bSet[item] = true
	}
	for _, item := range a {
		if !bSet[item] {
			return false
		}
	}
	return true
}
