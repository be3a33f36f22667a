package Trees

import (
	"fmt"
	"math/rand"
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
)

var rg = *rand.New(rand.NewSource(0))

const (
	tAddN        = 40000
	tAddValRange = 20000
)

// shape renders the tree in pre-order as v(left,right), "_" standing for a missing child
// and a leaf written as just v.
func (u *SplayTree[T]) shape() string {
	var sb strings.Builder
	var rec func(*node[T])
	rec = func(n *node[T]) {
		if n == nil {
			sb.WriteByte('_')
			return
		}
		fmt.Fprint(&sb, n.v)
		if n.l != nil || n.r != nil {
			sb.WriteByte('(')
			rec(n.l)
			sb.WriteByte(',')
			rec(n.r)
			sb.WriteByte(')')
		}
	}
	if u.root != nil {
		rec(u.root)
	}
	return sb.String()
}

func (u *SplayTree[T]) keys() (s []T) {
	for _, v := range u.Walk() {
		s = append(s, v)
	}
	return
}

func (u *SplayTree[T]) averageDepth() float32 {
	var n, sum int
	for d := range u.Walk() {
		n++
		sum += d
	}
	if n == 0 {
		return 0
	}
	return float32(sum) / float32(n)
}

func TestTree_Insert(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	for range tAddN {
		b := rg.Intn(tAddValRange)
		_, in := content[b]
		if e := tree.Insert(b); !in && e != nil {
			t.Errorf("failed to insert key %v: %v", b, e)
		} else if in && e == nil {
			t.Errorf("inserted key %v twice", b)
		}
		if !in && tree.root.v != b {
			t.Errorf("root is %v after inserting %v", tree.root.v, b)
		}
		content[b] = struct{}{}
	}
	if tree.Size() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
	t.Logf("depth: %f, size: %d.\n", tree.averageDepth(), tree.Size())
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
	for _, v := range tree.keys() {
		if _, in := content[v]; !in {
			t.Errorf("tree has non existent key %v", v)
		}
	}
}

func TestTree_Remove(t *testing.T) {
	tree := New[int]()
	content := make(map[int]struct{})
	if tree.Remove(0) != false {
		t.Errorf("empty tree has non existent key %v", 0)
	}
	a := make([]int, tAddN)
	for i := range a {
		a[i] = rg.Intn(tAddValRange)
		_ = tree.Insert(a[i])
		content[a[i]] = struct{}{}
	}
	for i := range rg.Intn(len(a)) {
		_, in := content[a[i]]
		sz := tree.Size()
		if b := tree.Remove(a[i]); b != in {
			t.Errorf("failed to delete key %v", a[i])
		} else if b && tree.Size() != sz-1 {
			t.Errorf("tree size is %d after removal, want %d", tree.Size(), sz-1)
		}
		if tree.Remove(a[i]) {
			t.Errorf("can delete a second time key %v", a[i])
		}
		delete(content, a[i])
	}
	if tree.Size() != len(content) {
		t.Errorf("tree size is %d, want %d", tree.Size(), len(content))
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
	t.Logf("depth: %f, size: %d.\n", tree.averageDepth(), tree.Size())
	for k := range content {
		if !tree.Contains(k) {
			t.Errorf("tree does not have key %v", k)
		}
	}
}

func TestTree_Contains(t *testing.T) {
	tree := New[int]()
	oracle := btree.NewOrderedG[int](8)
	for range tAddN / 4 {
		b := rg.Intn(tAddValRange)
		_ = tree.Insert(b)
		oracle.ReplaceOrInsert(b)
	}
	for range tAddN {
		b := rg.Intn(tAddValRange + 100)
		sz := tree.Size()
		st := make([]*node[int], 0)
		for cur := tree.root; cur != nil; {
			st = append(st, cur)
			if b < cur.v {
				cur = cur.l
			} else if b > cur.v {
				cur = cur.r
			} else {
				break
			}
		}
		last := st[len(st)-1]
		if tree.Contains(b) != oracle.Has(b) {
			t.Errorf("contains %v is %v, want %v", b, !oracle.Has(b), oracle.Has(b))
		}
		if tree.root != last {
			t.Errorf("root is %v after looking up %v, want %v", tree.root.v, b, last.v)
		}
		if tree.Size() != sz {
			t.Errorf("tree size is %d after lookup, want %d", tree.Size(), sz)
		}
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}

// TestTree_Oracle runs a random mix of operations against the red-black tree of gods.
func TestTree_Oracle(t *testing.T) {
	tree := New[int]()
	oracle := redblacktree.NewWithIntComparator()
	for i := range tAddN {
		b := rg.Intn(tAddValRange / 10)
		switch rg.Intn(3) {
		case 0:
			_, in := oracle.Get(b)
			if e := tree.Insert(b); (e == nil) == in {
				t.Fatalf("op %d: insert %v returned %v with key present=%v", i, b, e, in)
			}
			oracle.Put(b, struct{}{})
		case 1:
			_, in := oracle.Get(b)
			if tree.Remove(b) != in {
				t.Fatalf("op %d: remove %v disagrees with oracle", i, b)
			}
			oracle.Remove(b)
		default:
			_, in := oracle.Get(b)
			if tree.Contains(b) != in {
				t.Fatalf("op %d: contains %v disagrees with oracle", i, b)
			}
		}
	}
	if tree.Size() != oracle.Size() {
		t.Errorf("tree size is %d, want %d", tree.Size(), oracle.Size())
	}
	want := make([]int, 0, oracle.Size())
	for _, k := range oracle.Keys() {
		want = append(want, k.(int))
	}
	if got := tree.keys(); !slices.Equal(got, want) {
		t.Errorf("tree keys differ from oracle keys")
	}
}

func TestTree_Walk(t *testing.T) {
	tree := New[int]()
	for _, v := range rg.Perm(500) {
		_ = tree.Insert(v)
	}
	var s []int
	for d, v := range tree.Walk() {
		s = append(s, v)
		if dv, ok := tree.Depth(v); !ok || dv != d {
			t.Errorf("walk gives depth %d for %v, Depth gives %d", d, v, dv)
		}
	}
	if len(s) != tree.Size() {
		t.Errorf("walk size is %d, want %d", len(s), tree.Size())
	}
	if !slices.IsSorted(s) {
		t.Errorf("walk is not sorted")
	}
	// stop early, then start over.
	n := 0
	for range tree.Walk() {
		if n++; n == 10 {
			break
		}
	}
	if again := tree.keys(); !slices.Equal(again, s) {
		t.Errorf("second walk differs from the first")
	}
}

func TestTree_Custom(t *testing.T) {
	type rec struct {
		id   int
		name string
	}
	tree := NewC(func(a, b rec) int { return b.id - a.id }) // descending by id
	for _, v := range rg.Perm(200) {
		if e := tree.Insert(rec{v, fmt.Sprint(v)}); e != nil {
			t.Errorf("failed to insert %v: %v", v, e)
		}
	}
	if !tree.Contains(rec{id: 42}) {
		t.Errorf("tree does not have id 42")
	}
	if tree.root.v.name != "42" {
		t.Errorf("root is %v after looking up 42", tree.root.v)
	}
	ks := tree.keys()
	if ks[0].id != 199 || ks[len(ks)-1].id != 0 {
		t.Errorf("tree isn't ordered by the comparator")
	}
	if tree.Corrupt() {
		t.Errorf("tree is corrupt")
	}
}
