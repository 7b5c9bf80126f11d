// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avlbag/avl"
	"github.com/bitmark-inc/avlbag/fault"
)

type stringItem struct {
	s string
}

func (s stringItem) String() string {
	return s.s
}

func (s stringItem) Compare(x interface{}) int {
	return strings.Compare(s.s, x.(stringItem).s)
}

var removals = []avl.Removal{avl.RecursiveRemoval, avl.IterativeRemoval}

func newItemBag(t *testing.T, removal avl.Removal) *avl.Bag {
	bag, err := avl.New(avl.ItemCompare)
	require.NoError(t, err, "new bag")
	require.NoError(t, bag.SetRemoval(removal), "set removal")
	return bag
}

// all the structural checks in one place
func checkBag(t *testing.T, bag *avl.Bag, when string) {
	t.Helper()
	if bag.IsBalanced() && bag.CheckHeights() && bag.CheckOrder() && bag.CheckCount() {
		return
	}
	buffer := &bytes.Buffer{}
	depth := bag.Print(buffer, 4, nil)
	t.Logf("depth: %d\n%s", depth, buffer.String())
	t.Fatalf("%s: inconsistent tree: balanced: %v  heights: %v  order: %v  count: %v",
		when, bag.IsBalanced(), bag.CheckHeights(), bag.CheckOrder(), bag.CheckCount())
}

func TestNilComparator(t *testing.T) {
	bag, err := avl.New(nil)
	assert.Nil(t, bag, "bag")
	assert.Equal(t, fault.ErrNilComparator, err, "error")
}

func TestEmpty(t *testing.T) {
	bag, err := avl.New(avl.Ordered[int]())
	require.NoError(t, err, "new bag")

	assert.True(t, bag.IsEmpty(), "empty")
	assert.Equal(t, 0, bag.Count(), "count")
	assert.Equal(t, 0, bag.Height(), "height")
	assert.False(t, bag.Contains(1), "contains")
	assert.False(t, bag.Remove(1), "remove")
	assert.False(t, bag.RemoveIterative(1), "remove iterative")
	assert.True(t, bag.IsBalanced(), "balanced")
	assert.Equal(t, []avl.Element{}, bag.Slice(), "slice")

	_, ok := bag.Min()
	assert.False(t, ok, "min")
	_, ok = bag.Max()
	assert.False(t, ok, "max")

	n, err := bag.Elements(nil)
	assert.NoError(t, err, "elements")
	assert.Equal(t, 0, n, "elements count")
}

func TestRemovalSelection(t *testing.T) {
	bag, err := avl.New(avl.Ordered[int]())
	require.NoError(t, err, "new bag")

	assert.Equal(t, avl.RecursiveRemoval, bag.Removal(), "default")
	assert.NoError(t, bag.SetRemoval(avl.IterativeRemoval), "iterative")
	assert.Equal(t, avl.IterativeRemoval, bag.Removal(), "selected")
	assert.Equal(t, fault.ErrInvalidRemoval, bag.SetRemoval(avl.Removal(99)), "invalid")
	assert.Equal(t, avl.IterativeRemoval, bag.Removal(), "unchanged")

	for _, r := range removals {
		p, err := avl.ParseRemoval(r.String())
		assert.NoError(t, err, "parse: %s", r)
		assert.Equal(t, r, p, "round trip: %s", r)
	}
	_, err = avl.ParseRemoval("sideways")
	assert.Equal(t, fault.ErrInvalidRemoval, err, "parse invalid")
	assert.Equal(t, "unknown", avl.Removal(99).String(), "unknown name")
}

func TestScenario(t *testing.T) {
	for _, r := range removals {
		t.Run(r.String(), func(t *testing.T) {
			bag, err := avl.New(avl.Ordered[int]())
			require.NoError(t, err, "new bag")
			require.NoError(t, bag.SetRemoval(r), "set removal")

			for _, v := range []int{2, 3, 8, 1, 9} {
				assert.True(t, bag.Insert(v), "insert: %d", v)
			}
			assert.Equal(t, 5, bag.Count(), "count")
			assert.Equal(t, []avl.Element{1, 2, 3, 8, 9}, bag.Slice(), "elements")
			assert.True(t, bag.IsBalanced(), "balanced")

			assert.True(t, bag.Remove(8), "remove")
			assert.Equal(t, 4, bag.Count(), "count after remove")
			assert.Equal(t, []avl.Element{1, 2, 3, 9}, bag.Slice(), "elements after remove")
			assert.True(t, bag.IsBalanced(), "balanced after remove")
			assert.True(t, bag.Height() <= 4, "height: %d", bag.Height())
			checkBag(t, bag, "scenario")

			assert.False(t, bag.Remove(8), "second remove")
			assert.Equal(t, 4, bag.Count(), "count after miss")
		})
	}
}

func TestAllEqual(t *testing.T) {
	for _, r := range removals {
		t.Run(r.String(), func(t *testing.T) {
			bag, err := avl.New(avl.AllEqual)
			require.NoError(t, err, "new bag")
			require.NoError(t, bag.SetRemoval(r), "set removal")

			assert.True(t, bag.Insert(5), "first insert")
			assert.True(t, bag.Insert(5), "second insert")
			assert.Equal(t, 2, bag.Count(), "count")
			assert.Equal(t, 2, bag.Occurrences(5), "occurrences")

			assert.True(t, bag.Contains(5), "contains before removal")
			assert.True(t, bag.Remove(5), "first removal")
			assert.Equal(t, 1, bag.Count(), "count after first removal")
			assert.True(t, bag.Contains(5), "contains after first removal")
			assert.True(t, bag.Remove(5), "second removal")
			assert.Equal(t, 0, bag.Count(), "count after second removal")
			assert.False(t, bag.Contains(5), "contains after second removal")
			assert.False(t, bag.Remove(5), "third removal")
			assert.True(t, bag.IsEmpty(), "empty")
		})
	}
}

func TestPrint(t *testing.T) {
	bag, err := avl.New(avl.Ordered[int]())
	require.NoError(t, err, "new bag")
	for _, v := range []int{2, 3, 8, 1, 9} {
		bag.Insert(v)
	}

	buffer := &bytes.Buffer{}
	depth := bag.Print(buffer, 2, func(e avl.Element) string {
		return fmt.Sprintf("<%d>", e.(int))
	})

	expected := "" +
		"    <9> [1]\n" +
		"  <8> [2]\n" +
		"<3> [3]\n" +
		"  <2> [2]\n" +
		"    <1> [1]\n"
	assert.Equal(t, 3, depth, "depth")
	assert.Equal(t, expected, buffer.String(), "print")

	buffer.Reset()
	bag.Print(buffer, -1, nil)
	assert.Equal(t, "9 [1]\n8 [2]\n3 [3]\n2 [2]\n1 [1]\n", buffer.String(), "print without indent")
}

func TestElementsBuffer(t *testing.T) {
	bag, err := avl.New(avl.Ordered[string]())
	require.NoError(t, err, "new bag")
	for _, s := range []string{"pear", "apple", "fig", "apple"} {
		bag.Insert(s)
	}

	small := []avl.Element{"x", "y", "z"}
	n, err := bag.Elements(small)
	assert.Equal(t, fault.ErrBufferTooSmall, err, "small buffer")
	assert.Equal(t, 0, n, "nothing copied")
	assert.Equal(t, []avl.Element{"x", "y", "z"}, small, "buffer untouched")

	large := make([]avl.Element, 6)
	n, err = bag.Elements(large)
	assert.NoError(t, err, "large buffer")
	assert.Equal(t, 4, n, "copied")
	assert.Equal(t, []avl.Element{"apple", "apple", "fig", "pear", nil, nil}, large, "large contents")

	visited := []string{}
	bag.Traverse(func(e avl.Element) {
		visited = append(visited, e.(string))
	})
	assert.Equal(t, []string{"apple", "apple", "fig", "pear"}, visited, "traverse")

	min, ok := bag.Min()
	assert.True(t, ok, "min")
	assert.Equal(t, "apple", min, "min value")
	max, ok := bag.Max()
	assert.True(t, ok, "max")
	assert.Equal(t, "pear", max, "max value")
}

func TestReverse(t *testing.T) {
	bag, err := avl.New(avl.Reverse(avl.Ordered[int]()))
	require.NoError(t, err, "new bag")
	for _, v := range []int{4, 1, 3, 5, 2} {
		bag.Insert(v)
	}
	assert.Equal(t, []avl.Element{5, 4, 3, 2, 1}, bag.Slice(), "descending")
	assert.True(t, bag.CheckOrder(), "order")
}

func TestNamedOrder(t *testing.T) {
	items := []int{3, 1, 2}
	expected := map[string][]avl.Element{
		"ascending":  {1, 2, 3},
		"descending": {3, 2, 1},
		"equal":      {2, 3, 1}, // ties fill the shorter side
	}
	for name, result := range expected {
		compare, err := avl.NamedOrder[int](name)
		require.NoError(t, err, "order: %s", name)
		bag, err := avl.New(compare)
		require.NoError(t, err, "new bag")
		for _, v := range items {
			bag.Insert(v)
		}
		assert.Equal(t, result, bag.Slice(), "order: %s", name)
	}

	_, err := avl.NamedOrder[int]("sideways")
	assert.Equal(t, fault.ErrInvalidOrder, err, "invalid order")
}

func TestMembership(t *testing.T) {
	bag, err := avl.New(avl.Ordered[int]())
	require.NoError(t, err, "new bag")

	inserted := []int{10, 4, 4, 17, 4, 8, 23, 10, 1}
	for _, v := range inserted {
		bag.Insert(v)
	}
	checkBag(t, bag, "membership")

	expected := map[int]int{}
	for _, v := range inserted {
		expected[v] += 1
	}
	for v := -1; v < 30; v += 1 {
		assert.Equal(t, expected[v] > 0, bag.Contains(v), "contains: %d", v)
		assert.Equal(t, expected[v], bag.Occurrences(v), "occurrences: %d", v)
	}
}

// a missing element leaves the tree exactly as it was
func TestRemoveMissing(t *testing.T) {
	for _, r := range removals {
		t.Run(r.String(), func(t *testing.T) {
			bag, err := avl.New(avl.Ordered[int]())
			require.NoError(t, err, "new bag")
			require.NoError(t, bag.SetRemoval(r), "set removal")
			for v := 0; v < 40; v += 2 {
				bag.Insert(v)
			}

			before := &bytes.Buffer{}
			bag.Print(before, 1, nil)

			for v := -1; v < 41; v += 2 {
				assert.False(t, bag.Remove(v), "remove: %d", v)
			}

			after := &bytes.Buffer{}
			bag.Print(after, 1, nil)
			assert.Equal(t, 20, bag.Count(), "count")
			assert.Equal(t, before.String(), after.String(), "shape")
		})
	}
}

func TestInsertRemoveInverse(t *testing.T) {
	for _, r := range removals {
		t.Run(r.String(), func(t *testing.T) {
			bag, err := avl.New(avl.Ordered[int]())
			require.NoError(t, err, "new bag")
			require.NoError(t, bag.SetRemoval(r), "set removal")
			for v := 0; v < 100; v += 1 {
				bag.Insert(v % 13)
			}
			for v := 0; v < 20; v += 1 {
				n := bag.Count()
				bag.Insert(v)
				assert.True(t, bag.Remove(v), "remove: %d", v)
				assert.Equal(t, n, bag.Count(), "count: %d", v)
				checkBag(t, bag, "inverse")
			}
		})
	}
}

func TestDestroy(t *testing.T) {
	bag, err := avl.New(avl.Ordered[int]())
	require.NoError(t, err, "new bag")
	for v := 0; v < 50; v += 1 {
		bag.Insert(v)
	}

	before := avl.AllocatorStats()
	bag.Destroy()
	after := avl.AllocatorStats()

	assert.True(t, bag.IsEmpty(), "empty")
	assert.Equal(t, 0, bag.Count(), "count")
	assert.Equal(t, before.FreeNodes+50, after.FreeNodes, "nodes reclaimed")

	// reclaimed nodes are reused
	for v := 0; v < 10; v += 1 {
		bag.Insert(v)
	}
	reused := avl.AllocatorStats()
	assert.Equal(t, after.TotalNodes, reused.TotalNodes, "no new nodes")
	assert.Equal(t, after.FreeNodes-10, reused.FreeNodes, "free list shrinks")
	checkBag(t, bag, "reuse")
}

// ascending values without rotations degenerate into a chain
func TestInsertUnbalanced(t *testing.T) {
	bag, err := avl.New(avl.Ordered[int]())
	require.NoError(t, err, "new bag")

	for v := 1; v <= 5; v += 1 {
		assert.True(t, bag.InsertUnbalanced(v), "insert: %d", v)
	}
	assert.Equal(t, 5, bag.Count(), "count")
	assert.Equal(t, 5, bag.Height(), "height")
	assert.False(t, bag.IsBalanced(), "balanced")
	assert.True(t, bag.CheckHeights(), "a chain has exact heights")
	assert.True(t, bag.CheckCount(), "count consistent")
	assert.Equal(t, []avl.Element{1, 2, 3, 4, 5}, bag.Slice(), "elements")

	// the same values with rebalancing
	balanced, err := avl.New(avl.Ordered[int]())
	require.NoError(t, err, "new bag")
	for v := 1; v <= 5; v += 1 {
		balanced.Insert(v)
	}
	assert.Equal(t, 3, balanced.Height(), "balanced height")
	assert.True(t, balanced.IsBalanced(), "balanced")
}

// heights only ever grow on the unbalanced path
func TestInsertUnbalancedOvercounts(t *testing.T) {
	bag, err := avl.New(avl.Ordered[int]())
	require.NoError(t, err, "new bag")

	for _, v := range []int{5, 3, 7, 2, 4} {
		bag.InsertUnbalanced(v)
	}
	// root visited four times, actual height is three
	assert.Equal(t, 5, bag.Height(), "stored root height")
	assert.False(t, bag.CheckHeights(), "heights are inflated")
	assert.True(t, bag.CheckOrder(), "order is kept")
}

func TestListShort(t *testing.T) {
	addList := []stringItem{
		{"4201"}, {"1254"}, {"8608"}, {"1639"}, {"8950"},
		{"6740"},
	}
	for _, r := range removals {
		doList(t, addList, r)
		doTraverse(t, addList, r)
	}
}

// to make sure that lots of duplicates do not upset the count or the
// balance
func TestListDuplicates(t *testing.T) {
	addList := []stringItem{
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1247"},
		{"1250"}, {"1264"}, {"1258"}, {"1255"}, {"2247"},
		{"2004"}, {"2194"}, {"2644"}, {"2169"}, {"8133"},
		{"2136"}, {"9651"}, {"4079"}, {"1042"}, {"3579"},
		{"1720"}, {"0506"}, {"8382"}, {"6774"}, {"1042"},

		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
		{"1042"}, {"1042"}, {"1042"}, {"1042"}, {"1042"},
	}
	for _, r := range removals {
		doList(t, addList, r)
		doTraverse(t, addList, r)
	}
}

func TestListLong(t *testing.T) {
	addList := []stringItem{
		{"8133"}, {"2136"}, {"9651"}, {"4079"}, {"1042"},
		{"3579"}, {"3630"}, {"1427"}, {"5843"}, {"9549"},
		{"5433"}, {"1274"}, {"9034"}, {"4724"}, {"6179"},
		{"5072"}, {"9272"}, {"4030"}, {"4205"}, {"3363"},
		{"8582"}, {"1720"}, {"0506"}, {"8382"}, {"6774"},
		{"3088"}, {"2329"}, {"9039"}, {"6703"}, {"1027"},
		{"7297"}, {"6063"}, {"4156"}, {"1005"}, {"0982"},
		{"3065"}, {"2553"}, {"0795"}, {"8426"}, {"2377"},
		{"0877"}, {"9085"}, {"5918"}, {"2581"}, {"7797"},
		{"3028"}, {"5880"}, {"3061"}, {"5212"}, {"6539"},
		{"1320"}, {"3581"}, {"3334"}, {"4348"}, {"2934"},
		{"8342"}, {"8814"}, {"8736"}, {"1353"}, {"3082"},
		{"9620"}, {"0056"}, {"5063"}, {"1245"}, {"7066"},
		{"7435"}, {"2999"}, {"7803"}, {"1303"}, {"1697"},
		{"0017"}, {"4314"}, {"9926"}, {"7587"}, {"2531"},
		{"8123"}, {"5693"}, {"7495"}, {"9975"}, {"5465"},
		{"4342"}, {"7958"}, {"7138"}, {"9382"}, {"0672"},
		{"5402"}, {"0204"}, {"2397"}, {"2712"}, {"0938"},
		{"9610"}, {"3611"}, {"2140"}, {"4289"}, {"9271"},
		{"4786"}, {"4145"}, {"1066"}, {"4366"}, {"6716"},
		{"8579"}, {"1012"}, {"5935"}, {"8278"}, {"5761"},
		{"1871"}, {"6257"}, {"2649"}, {"8643"}, {"1239"},
		{"3416"}, {"6146"}, {"7127"}, {"9517"}, {"5788"},
		{"9025"}, {"6880"}, {"9064"}, {"4849"}, {"4503"},
		{"4898"}, {"6815"}, {"8811"}, {"6745"}, {"6907"},
		{"7503"}, {"9869"}, {"5491"}, {"9940"}, {"5955"},
		{"3764"}, {"3254"}, {"8048"}, {"5339"}, {"2406"},
		{"3137"}, {"0251"}, {"0486"}, {"4202"}, {"1844"},
		{"1741"}, {"7154"}, {"4286"}, {"5160"}, {"9472"},
		{"2998"}, {"1935"}, {"4758"}, {"6478"}, {"9572"},
		{"9254"}, {"6848"}, {"3126"}, {"1848"}, {"7692"},
	}
	for _, r := range removals {
		doList(t, addList, r)
		doTraverse(t, addList, r)
	}
}

// insert everything, delete the first i items then the remainder,
// checking the tree after each phase
func doList(t *testing.T, addList []stringItem, removal avl.Removal) {

	for i := 0; i < len(addList)+1; i += 1 {

		bag := newItemBag(t, removal)
		for _, key := range addList {
			bag.Insert(key)
		}
		checkBag(t, bag, "add")
		if len(addList) != bag.Count() {
			t.Fatalf("count: actual: %d  expected: %d", bag.Count(), len(addList))
		}

		for _, key := range addList[:i] {
			if !bag.Remove(key) {
				t.Fatalf("%s: remove: %q  not found", removal, key)
			}
		}
		checkBag(t, bag, "delete")
		if len(addList)-i != bag.Count() {
			t.Fatalf("count: actual: %d  expected: %d", bag.Count(), len(addList)-i)
		}

		for _, key := range addList[i:] {
			if !bag.Remove(key) {
				t.Fatalf("%s: remove remainder: %q  not found", removal, key)
			}
			checkBag(t, bag, "delete remainder")
		}
		if !bag.IsEmpty() {
			buffer := &bytes.Buffer{}
			bag.Print(buffer, 4, nil)
			t.Logf("remaining:\n%s", buffer.String())
			t.Fatal("remaining nodes")
		}
	}
}

// traverse the bag forwards to check ordering including duplicates
func doTraverse(t *testing.T, addList []stringItem, removal avl.Removal) {

	bag := newItemBag(t, removal)
	expected := make([]string, 0, len(addList))
	for _, key := range addList {
		expected = append(expected, key.String())
		bag.Insert(key)
	}
	sort.Strings(expected)

	n := 0
	bag.Traverse(func(e avl.Element) {
		if expected[n] != e.(stringItem).String() {
			t.Fatalf("next item: actual: %q  expected: %q", e, expected[n])
		}
		n += 1
	})
	if n != len(expected) {
		t.Fatalf("item count: actual: %d  expected: %d", n, len(expected))
	}
	if n != bag.Count() {
		t.Fatalf("bag count: actual: %d  expected: %d", bag.Count(), n)
	}

	// delete in sorted order
	for _, key := range expected {
		if !bag.Remove(stringItem{key}) {
			t.Fatalf("remove: %q  not found", key)
		}
	}

	if !bag.IsEmpty() {
		t.Fatal("remaining nodes")
	}
	if 0 != bag.Count() {
		t.Fatalf("remaining count not zero: %d", bag.Count())
	}
}

func makeKey() stringItem {

	b := make([]byte, 4)
	_, err := rand.Read(b)
	if nil != err {
		panic("rand failed")
	}
	n := int(binary.BigEndian.Uint32(b))
	return stringItem{fmt.Sprintf("%03d", n%1000)}
}

func TestRandomTree(t *testing.T) {
	for _, r := range removals {
		randomTree(t, 2200, 2000, r)
		randomTree(t, 3400, 2760, r)
		randomTree(t, 5467, 1234, r)
	}
}

func randomTree(t *testing.T, total int, toDelete int, removal avl.Removal) {

	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	bag := newItemBag(t, removal)
	d := make([]stringItem, toDelete)

	for i := 0; i < total; i += 1 {
		key := makeKey()
		if i < len(d) {
			d[i] = key
		}
		bag.Insert(key)
	}
	checkBag(t, bag, "random add")

	for _, key := range d {
		if !bag.Remove(key) {
			t.Fatalf("%s: remove: %q  not found", removal, key)
		}
	}
	checkBag(t, bag, "random delete")

	if total-toDelete != bag.Count() {
		t.Fatalf("count: actual: %d  expected: %d", bag.Count(), total-toDelete)
	}

	// add back a test value outside the random key space
	testKey := stringItem{"5000"}
	bag.Insert(testKey)
	if !bag.Contains(testKey) {
		t.Fatalf("could not find test key: %q", testKey)
	}
	if !bag.Remove(testKey) {
		t.Fatalf("could not remove test key: %q", testKey)
	}
	if bag.Contains(testKey) {
		t.Fatalf("test key not deleted: %q", testKey)
	}
	checkBag(t, bag, "random final")
}
