// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"golang.org/x/exp/constraints"

	"github.com/bitmark-inc/avlbag/fault"
)

// Element - an opaque handle to caller owned data
type Element interface{}

// Comparator - three way comparison of two elements
// returns negative if a < b, zero if a == b and positive if a > b
//
// the bag always calls compare(new element, stored element)
type Comparator func(a Element, b Element) int

// Item - an element that can order itself against another element
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// ItemCompare - comparator for elements that implement Item
func ItemCompare(a Element, b Element) int {
	return a.(Item).Compare(b)
}

// AllEqual - comparator that treats every element as equal
func AllEqual(a Element, b Element) int {
	return 0
}

// Ordered - comparator for elements of a built-in ordered type
func Ordered[T constraints.Ordered]() Comparator {
	return func(a Element, b Element) int {
		x := a.(T)
		y := b.(T)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		default:
			return 0
		}
	}
}

// Reverse - comparator giving the opposite order of c
func Reverse(c Comparator) Comparator {
	return func(a Element, b Element) int {
		return c(b, a)
	}
}

// NamedOrder - comparator for a built-in ordered type selected by
// name: "ascending", "descending" or "equal"
func NamedOrder[T constraints.Ordered](name string) (Comparator, error) {
	switch name {
	case "", "ascending", "asc":
		return Ordered[T](), nil
	case "descending", "desc":
		return Reverse(Ordered[T]()), nil
	case "equal":
		return AllEqual, nil
	default:
		return nil, fault.ErrInvalidOrder
	}
}
