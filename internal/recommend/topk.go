package recommend

import (
	"container/heap"
	"sort"
	"time"

	"github.com/keleoz/quizpath/internal/catalog"
	"github.com/keleoz/quizpath/internal/stats"
)

// DefaultCount is how many questions a recommendation round suggests.
const DefaultCount = 5

// Item is one ranked recommendation.
type Item struct {
	QuestionID int
	Score      float64
}

// candidateHeap is a min-heap of size <= k holding the best candidates seen
// so far; the root is the weakest of the current winners. Ordering inverts
// the final ranking: lowest score first, and for equal scores the higher
// question ID first, so that ties resolve to ascending IDs in the output.
type candidateHeap []Item

func (h candidateHeap) Len() int { return len(h) }

func (h candidateHeap) Less(i, j int) bool {
	if h[i].Score != h[j].Score {
		return h[i].Score < h[j].Score
	}
	return h[i].QuestionID > h[j].QuestionID
}

func (h candidateHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *candidateHeap) Push(x any) { *h = append(*h, x.(Item)) }

func (h *candidateHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// TopK scores every question in the catalog against now and returns the
// K highest-scoring ones, best first. K is capped at the catalog size.
// Equal scores order by ascending question ID so results are stable run
// to run. An empty catalog yields an empty slice.
func TopK(cat *catalog.Catalog, statsByID map[int]stats.QuestionStat, now time.Time, k int) []Item {
	if cat == nil || cat.Len() == 0 || k <= 0 {
		return nil
	}
	if k > cat.Len() {
		k = cat.Len()
	}

	h := make(candidateHeap, 0, k)
	heap.Init(&h)

	for _, q := range cat.All() {
		item := Item{QuestionID: q.ID, Score: Score(q, statsByID[q.ID], now)}
		if h.Len() < k {
			heap.Push(&h, item)
			continue
		}
		// Replace the weakest current winner when this one beats it.
		if betterThan(item, h[0]) {
			h[0] = item
			heap.Fix(&h, 0)
		}
	}

	result := make([]Item, len(h))
	copy(result, h)
	sort.Slice(result, func(i, j int) bool {
		if result[i].Score != result[j].Score {
			return result[i].Score > result[j].Score
		}
		return result[i].QuestionID < result[j].QuestionID
	})
	return result
}

// betterThan reports whether a should displace b among the winners.
func betterThan(a, b Item) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.QuestionID < b.QuestionID
}
