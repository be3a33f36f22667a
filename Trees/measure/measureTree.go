// Command measure reports how deep the splay tree has to go to find a key under uniform and
// under skewed access, and how long the accesses take.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"testing"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/g-m-twostay/go-splay/Trees"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
)

var (
	bAddN = 1 << 16
	bQryN = 1 << 18
)
var _R rand.Rand = *rand.New(rand.NewSource(0))

type workload struct {
	name string
	next func() int
}

func workloads() []workload {
	ws := []workload{{"uniform", func() int { return _R.Intn(bAddN) }}}
	for _, s := range []float64{1.01, 1.2, 1.5, 2} {
		z := rand.NewZipf(&_R, s, 1, uint64(bAddN-1))
		ws = append(ws, workload{"zipf " + strconv.FormatFloat(s, 'f', -1, 64), func() int { return int(z.Uint64()) }})
	}
	return ws
}

func create() *Trees.SplayTree[int] {
	tree := Trees.New[int]()
	for _, v := range _R.Perm(bAddN) {
		_ = tree.Insert(v)
	}
	return tree
}

// depths looks up bQryN keys and records the depth each was found at before the lookup
// splayed it. Also returns the mean depth of every window of bQryN/64 lookups.
func depths(w workload) (*hdrhistogram.Histogram, []float64) {
	tree := create()
	h := hdrhistogram.New(0, int64(bAddN), 3)
	window := bQryN / 64
	var curve []float64
	var sum int
	for i := range bQryN {
		k := w.next()
		d, _ := tree.Depth(k)
		tree.Contains(k)
		if err := h.RecordValue(int64(d)); err != nil {
			panic(err)
		}
		if sum += d; (i+1)%window == 0 {
			curve = append(curve, float64(sum)/float64(window))
			sum = 0
		}
	}
	return h, curve
}

var __r1 bool

func timing(w workload) testing.BenchmarkResult {
	return testing.Benchmark(func(b *testing.B) {
		for range b.N {
			b.StopTimer()
			tree := create()
			b.StartTimer()
			for range bQryN {
				__r1 = tree.Contains(w.next())
			}
		}
	})
}

func main() {
	testing.Init()
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"workload", "mean depth", "p50", "p99", "max", "ns/lookup"})
	for _, w := range workloads() {
		h, curve := depths(w)
		br := timing(w)
		table.Append([]string{
			w.name,
			strconv.FormatFloat(h.Mean(), 'f', 2, 64),
			strconv.FormatInt(h.ValueAtQuantile(50), 10),
			strconv.FormatInt(h.ValueAtQuantile(99), 10),
			strconv.FormatInt(h.Max(), 10),
			strconv.FormatInt(br.NsPerOp()/int64(bQryN), 10),
		})
		fmt.Println(asciigraph.Plot(curve, asciigraph.Height(8), asciigraph.Caption(w.name+": mean depth per window")))
		fmt.Println()
	}
	table.Render()
}
