package reporters

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

import (
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
)

type Unique struct {
	Seen     *set.SortedSet
	Reporter Reporter
}

func NewUnique(reporter Reporter) *Unique {
	return &Unique{
		Seen:     set.NewSortedSet(10),
		Reporter: reporter,
	}
}

func (r *Unique) Report(p *itemset.Pattern) error {
	label := types.ByteSlice(p.Label())
	if r.Seen.Has(label) {
		return nil
	}
	r.Seen.Add(label)
	return r.Reporter.Report(p)
}

func (r *Unique) Close() error {
	return r.Reporter.Close()
}
