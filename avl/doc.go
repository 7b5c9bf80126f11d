// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - a bag (multiset) of opaque elements kept in an AVL
// balanced tree
//
// Note: an individual bag is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node stores its subtree height (1 for a leaf, 0 for a missing
// child) and any node whose children differ in height by more than
// one is rotated back into balance on the way up from an insert or
// remove.
//
// Duplicates are allowed.  An equal element is inserted into the
// shorter subtree, so equal elements may be found on either side of
// a node.  Which of several equal elements a remove deletes is not
// specified.
//
// The bag never looks inside an element, it only passes elements to
// the comparator given to New and to the caller's callbacks.  The
// caller owns the element data.
package avl
