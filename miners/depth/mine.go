package depth

import (
	"sort"
	"sync"
	"time"
)

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/HaloV36/project-folder-Association-Mining/config"
	"github.com/HaloV36/project-folder-Association-Mining/miners"
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
	"github.com/HaloV36/project-folder-Association-Mining/types/tx"
)

// Miner is the depth first strategy over the vertical representation:
// each item is mapped to the set of transactions containing it, and
// frequent itemsets are grown by intersecting TID-sets, pruning any
// extension that falls under the support count before recursing.
type Miner struct {
	Config *config.Config
}

// entry pairs an item with the TID-set of the current prefix extended
// by that item. Every recursive call owns its working list outright;
// sibling branches never alias each other's entries.
type entry struct {
	item string
	tids *set.SortedSet
}

func NewMiner(conf *config.Config) *Miner {
	return &Miner{
		Config: conf,
	}
}

// Index builds the vertical representation in one linear pass.
// Transaction identifiers are renumbered to dense int32 indices (in
// sorted tid order) to keep the TID-sets compact; the engines only
// ever need their sizes and intersections, never the original ids.
func Index(db *tx.Database) map[string]*set.SortedSet {
	tids := make([]string, 0, len(db.Txs))
	for tid := range db.Txs {
		tids = append(tids, tid)
	}
	sort.Strings(tids)
	index := make(map[string]*set.SortedSet)
	for i, tid := range tids {
		for item, next := db.Txs[tid].Items()(); next != nil; item, next = next() {
			token := string(item.(types.String))
			s, has := index[token]
			if !has {
				s = set.NewSortedSet(10)
				index[token] = s
			}
			s.Add(types.Int32(int32(i)))
		}
	}
	return index
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

	index := Index(db)
	work := make([]entry, 0, len(index))
	for item, tids := range index {
		work = append(work, entry{item, tids})
	}
	sort.Slice(work, func(i, j int) bool {
		return work[i].item < work[j].item
	})

	var err error
	if m.Config.Workers() <= 1 {
		err = m.search(set.NewSortedSet(0), work, minCount, total, result)
	} else {
		err = m.parallelSearch(work, minCount, total, db.Size(), result)
	}
	if err != nil {
		return nil, 0, err
	}
	return result, time.Since(start), nil
}

// search walks every branch of the working list depth first.
func (m *Miner) search(prefix *set.SortedSet, work []entry, minCount int, total float64, result *itemset.Result) error {
	for i := len(work) - 1; i >= 0; i-- {
		if err := m.expand(prefix, work, i, minCount, total, result); err != nil {
			return err
		}
	}
	return nil
}

// expand takes the i'th entry out of the working list, records the
// extended itemset when supported, and recurses into a fresh working
// list built from intersections with the entries still remaining.
func (m *Miner) expand(prefix *set.SortedSet, work []entry, i int, minCount int, total float64, result *itemset.Result) error {
	e := work[i]
	if e.tids.Size() < minCount {
		return nil
	}
	items := prefix.Copy()
	if err := items.Add(types.String(e.item)); err != nil {
		return err
	}
	if err := result.Add(items, float64(e.tids.Size())/total); err != nil {
		return err
	}
	rest := make([]entry, 0, i)
	for j := 0; j < i; j++ {
		is, err := e.tids.Intersect(work[j].tids)
		if err != nil {
			return err
		}
		inter := is.(*set.SortedSet)
		if inter.Size() >= minCount {
			rest = append(rest, entry{work[j].item, inter})
		}
	}
	return m.search(items, rest, minCount, total, result)
}

// parallelSearch fans the first level branches out across
// Config.Workers() goroutines. Each worker accumulates into its own
// result; the only synchronization is the merge after all branches
// finish, so the merged content never depends on worker count.
func (m *Miner) parallelSearch(work []entry, minCount int, total float64, dbSize int, result *itemset.Result) error {
	workers := m.Config.Workers()
	branches := make(chan int)
	results := make([]*itemset.Result, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			results[w] = itemset.NewResult(dbSize)
			empty := set.NewSortedSet(0)
			for i := range branches {
				if errs[w] != nil {
					continue
				}
				errs[w] = m.expand(empty, work, i, minCount, total, results[w])
			}
		}(w)
	}
	for i := len(work) - 1; i >= 0; i-- {
		branches <- i
	}
	close(branches)
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	for _, partial := range results {
		if partial == nil {
			continue
		}
		err := partial.Do(func(p *itemset.Pattern) error {
			return result.Add(p.Items, p.Support)
		})
		if err != nil {
			return err
		}
	}
	return nil
}
