// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package enumerable has slice helpers for building listings.
package enumerable

// Filter returns the elements of slice for which keep is true, in order.
// The result is never nil.
func Filter[T any](slice []T, keep func(T) bool) []T {
	kept := make([]T, 0, len(slice))
	for _, elem := range slice {
		if keep(elem) {
			kept = append(kept, elem)
		}
	}
	return kept
}

// Map returns f applied to each element of slice.
func Map[T, R any](slice []T, f func(T) R) []R {
	out := make([]R, len(slice))
	for i, elem := range slice {
		out[i] = f(elem)
	}
	return out
}
