// Package query holds small order-preserving transformations over slices:
// filtering, inner joins and group-by. Groups keep the order in which their
// keys were first seen.
package query

import "github.com/samber/lo"

// Pair is one row produced by InnerJoin.
type Pair[L, R any] struct {
	Left  L
	Right R
}

// Group is a run of items sharing a key.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// Filter returns the items satisfying keep, in input order.
func Filter[T any](items []T, keep func(T) bool) []T {
	return lo.Filter(items, func(item T, _ int) bool { return keep(item) })
}

// Map applies fn to every item.
func Map[T, U any](items []T, fn func(T) U) []U {
	return lo.Map(items, func(item T, _ int) U { return fn(item) })
}

// InnerJoin pairs every outer item with every inner item whose key matches.
// Rows are ordered by outer position, then inner position.
func InnerJoin[L, R any, K comparable](outer []L, inner []R, outerKey func(L) K, innerKey func(R) K) []Pair[L, R] {
	index := lo.GroupBy(inner, innerKey)

	out := make([]Pair[L, R], 0)
	for _, l := range outer {
		for _, r := range index[outerKey(l)] {
			out = append(out, Pair[L, R]{Left: l, Right: r})
		}
	}
	return out
}

// GroupBy partitions items by key. Groups appear in first-seen key order and
// items keep their input order inside a group.
func GroupBy[T any, K comparable](items []T, key func(T) K) []Group[K, T] {
	return lo.Map(lo.PartitionBy(items, key), func(part []T, _ int) Group[K, T] {
		return Group[K, T]{Key: key(part[0]), Items: part}
	})
}

// Flatten concatenates the items of every group in group order.
func Flatten[K comparable, T any](groups []Group[K, T]) []T {
	return lo.Flatten(lo.Map(groups, func(g Group[K, T], _ int) []T { return g.Items }))
}

// MinBy returns the first item with the smallest key. ok is false for an empty slice.
func MinBy[T any](items []T, less func(a, b T) bool) (best T, ok bool) {
	if len(items) == 0 {
		return best, false
	}
	return lo.MinBy(items, less), true
}

// Distinct returns the keys of items in first-seen order.
func Distinct[T any, K comparable](items []T, key func(T) K) []K {
	return lo.Uniq(Map(items, key))
}
