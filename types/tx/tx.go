package tx

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

// Database is a snapshot of transactions: tid -> purchased items. It
// is read-only input to the mining engines; a well formed database
// has no empty transactions but the engines tolerate them (an empty
// transaction supports no candidate while still counting toward the
// transaction total).
type Database struct {
	Txs map[string]*set.SortedSet
}

type Stats struct {
	Transactions int
	TotalItems   int
	UniqueItems  int
}

func NewDatabase() *Database {
	return &Database{
		Txs: make(map[string]*set.SortedSet),
	}
}

func (db *Database) Add(tid string, items ...string) {
	s, has := db.Txs[tid]
	if !has {
		s = set.NewSortedSet(len(items))
		db.Txs[tid] = s
	}
	for _, item := range items {
		s.Add(types.String(item))
	}
}

func (db *Database) Size() int {
	return len(db.Txs)
}

// Items is the universe of items appearing in the database.
func (db *Database) Items() *set.SortedSet {
	universe := set.NewSortedSet(10)
	for _, items := range db.Txs {
		for item, next := items.Items()(); next != nil; item, next = next() {
			universe.Add(item)
		}
	}
	return universe
}

func (db *Database) Stats() Stats {
	total := 0
	for _, items := range db.Txs {
		total += items.Size()
	}
	return Stats{
		Transactions: len(db.Txs),
		TotalItems:   total,
		UniqueItems:  db.Items().Size(),
	}
}
