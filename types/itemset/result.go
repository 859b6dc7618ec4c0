package itemset

import (
	"math"
)

import (
	"github.com/timtadh/data-structures/hashtable"
	"github.com/timtadh/data-structures/set"
)

// Result maps frequent itemsets to their supports. It is produced by
// exactly one mining run and never shared between runs. Both mining
// strategies produce the same Result content for the same database
// and threshold; iteration order is unspecified.
type Result struct {
	total    int
	patterns *hashtable.LinearHash
}

func NewResult(total int) *Result {
	return &Result{
		total:    total,
		patterns: hashtable.NewLinearHash(),
	}
}

// Total is the number of transactions in the mined database,
// including any empty transactions it tolerated.
func (r *Result) Total() int {
	return r.total
}

func (r *Result) Size() int {
	return r.patterns.Size()
}

func (r *Result) Add(items *set.SortedSet, support float64) error {
	return r.patterns.Put(items, &Pattern{Items: items, Support: support})
}

func (r *Result) Has(items *set.SortedSet) bool {
	return r.patterns.Has(items)
}

// Support looks up the support of items. The second return is false
// when the itemset is not frequent in this result.
func (r *Result) Support(items *set.SortedSet) (float64, bool) {
	if !r.patterns.Has(items) {
		return 0, false
	}
	v, err := r.patterns.Get(items)
	if err != nil {
		return 0, false
	}
	return v.(*Pattern).Support, true
}

func (r *Result) Do(do func(*Pattern) error) error {
	for _, v, next := r.patterns.Iterate()(); next != nil; _, v, next = next() {
		if err := do(v.(*Pattern)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Result) Patterns() []*Pattern {
	patterns := make([]*Pattern, 0, r.patterns.Size())
	r.Do(func(p *Pattern) error {
		patterns = append(patterns, p)
		return nil
	})
	return patterns
}

// Equiv reports whether two results contain the same itemsets with
// supports equal within tol. Used to cross-check the two mining
// strategies against each other.
func (r *Result) Equiv(o *Result, tol float64) bool {
	if r.Size() != o.Size() {
		return false
	}
	equiv := true
	r.Do(func(p *Pattern) error {
		sup, has := o.Support(p.Items)
		if !has || math.Abs(sup-p.Support) > tol {
			equiv = false
		}
		return nil
	})
	return equiv
}
