package breadth

import (
	"sync"
	"time"
)

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/HaloV36/project-folder-Association-Mining/config"
	"github.com/HaloV36/project-folder-Association-Mining/miners"
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
	"github.com/HaloV36/project-folder-Association-Mining/types/tx"
)

// Miner is the levelwise (breadth first) strategy over the horizontal
// representation: candidate k-itemsets are joined from the frequent
// (k-1)-level, pruned by downward closure, then counted with one scan
// of the database per level.
type Miner struct {
	Config *config.Config
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		Config: conf,
	}
}

func (m *Miner) Mine(db *tx.Database) (*itemset.Result, time.Duration, error) {
	if err := miners.ValidSupport(m.Config.Support); err != nil {
		return nil, 0, err
	}
	start := time.Now()
	result := itemset.NewResult(db.Size())
	if db.Size() == 0 {
		return result, time.Since(start), nil
	}
	minCount := miners.MinCount(m.Config.Support, db.Size())
	total := float64(db.Size())

	counts := make(map[string]int)
	for _, items := range db.Txs {
		for item, next := items.Items()(); next != nil; item, next = next() {
			counts[string(item.(types.String))]++
		}
	}
	level := make([]*set.SortedSet, 0, len(counts))
	for item, count := range counts {
		if count >= minCount {
			items := itemset.FromItems(item)
			if err := result.Add(items, float64(count)/total); err != nil {
				return nil, 0, err
			}
			level = append(level, items)
		}
	}

	for k := 2; len(level) > 0; k++ {
		candidates, err := m.candidates(level, k)
		if err != nil {
			return nil, 0, err
		}
		if len(candidates) == 0 {
			break
		}
		counts := m.count(db, candidates)
		level = level[:0]
		for i, c := range candidates {
			if counts[i] >= minCount {
				if err := result.Add(c, float64(counts[i])/total); err != nil {
					return nil, 0, err
				}
				level = append(level, c)
			}
		}
	}
	return result, time.Since(start), nil
}

// candidates is the join + prune step: union every pair of frequent
// (k-1)-itemsets whose union has exactly k items, then drop any
// candidate with an infrequent (k-1)-subset so it is never counted.
func (m *Miner) candidates(level []*set.SortedSet, k int) ([]*set.SortedSet, error) {
	prev := hashtable.NewLinearHash()
	for _, items := range level {
		if err := prev.Put(items, nil); err != nil {
			return nil, err
		}
	}
	seen := hashtable.NewLinearHash()
	candidates := make([]*set.SortedSet, 0, len(level))
	for i := 0; i < len(level); i++ {
		for j := i + 1; j < len(level); j++ {
			u, err := level[i].Union(level[j])
			if err != nil {
				return nil, err
			}
			union := u.(*set.SortedSet)
			if union.Size() != k || seen.Has(union) {
				continue
			}
			closed, err := downwardClosed(union, prev)
			if err != nil {
				return nil, err
			}
			if !closed {
				continue
			}
			if err := seen.Put(union, nil); err != nil {
				return nil, err
			}
			candidates = append(candidates, union)
		}
	}
	return candidates, nil
}

func downwardClosed(candidate *set.SortedSet, prev *hashtable.LinearHash) (bool, error) {
	for item, next := candidate.Items()(); next != nil; item, next = next() {
		sub := candidate.Copy()
		if err := sub.Delete(item); err != nil {
			return false, err
		}
		if !prev.Has(sub) {
			return false, nil
		}
	}
	return true, nil
}

// count scans the database once, counting for each candidate the
// transactions it is a subset of. The candidate list is split across
// Config.Workers() goroutines; each slice is disjoint so the only
// synchronization is waiting for all of them.
func (m *Miner) count(db *tx.Database, candidates []*set.SortedSet) []int {
	counts := make([]int, len(candidates))
	workers := m.Config.Workers()
	if workers <= 1 || len(candidates) <= workers {
		countRange(db, candidates, counts)
		return counts
	}
	batch := (len(candidates) + workers - 1) / workers
	var wg sync.WaitGroup
	for lo := 0; lo < len(candidates); lo += batch {
		hi := lo + batch
		if hi > len(candidates) {
			hi = len(candidates)
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			countRange(db, candidates[lo:hi], counts[lo:hi])
		}(lo, hi)
	}
	wg.Wait()
	return counts
}

func countRange(db *tx.Database, candidates []*set.SortedSet, counts []int) {
	for _, items := range db.Txs {
		for i, c := range candidates {
			if c.Subset(items) {
				counts[i]++
			}
		}
	}
}
