package tx

import (
	"strings"
	"testing"
)

import "github.com/stretchr/testify/assert"

import (
	"github.com/timtadh/data-structures/set"
	"github.com/timtadh/data-structures/types"
)

func validSet(items ...string) *set.SortedSet {
	s := set.NewSortedSet(len(items))
	for _, item := range items {
		s.Add(types.String(item))
	}
	return s
}

func TestDatabase(x *testing.T) {
	t := assert.New(x)
	db := NewDatabase()
	db.Add("t1", "milk", "bread")
	db.Add("t1", "milk") // duplicate inserts collapse
	db.Add("t2", "bread", "eggs")
	t.Equal(2, db.Size())
	t.Equal(2, db.Txs["t1"].Size())
	t.True(db.Items().Has(types.String("eggs")))
	t.Equal(3, db.Items().Size())

	stats := db.Stats()
	t.Equal(2, stats.Transactions)
	t.Equal(4, stats.TotalItems)
	t.Equal(3, stats.UniqueItems)
}

func TestStandardizeItem(x *testing.T) {
	t := assert.New(x)
	t.Equal("whole milk", StandardizeItem("  Whole   Milk "))
	t.Equal("milk", StandardizeItem("MILK"))
	t.Equal("a b c", StandardizeItem("a\tb\n c"))
	t.Equal("", StandardizeItem("   "))
}

func TestClean(x *testing.T) {
	t := assert.New(x)
	db := NewDatabase()
	db.Add("t1", " Milk ", "BREAD")
	db.Add("t2", "milk")
	db.Add("t3")
	db.Add("t4", "bread", "eggs", "unknown")

	valid := validSet("milk", "bread", "eggs")
	cleaned, report := db.Clean(valid)

	t.Equal(2, cleaned.Size())
	t.True(cleaned.Txs["t1"].Has(types.String("milk")))
	t.True(cleaned.Txs["t1"].Has(types.String("bread")))
	t.False(cleaned.Txs["t4"].Has(types.String("unknown")))

	t.Equal(4, report.Before)
	t.Equal(2, report.After)
	t.Equal(1, report.Empty)
	t.Equal(1, report.SingleItem)
	t.Equal(1, report.InvalidItems)
	t.Equal(2, report.Removed)
	t.Equal(4, report.TotalItems)
	t.Equal(3, report.UniqueItems)
	t.Contains(report.String(), "Valid transactions: 2")

	// the original is untouched
	t.Equal(4, db.Size())
	t.True(db.Txs["t4"].Has(types.String("unknown")))
}

func TestCleanNoFilter(x *testing.T) {
	t := assert.New(x)
	db := NewDatabase()
	db.Add("t1", "Anything", "goes")
	cleaned, report := db.Clean(nil)
	t.Equal(1, cleaned.Size())
	t.Equal(0, report.InvalidItems)
	t.True(cleaned.Txs["t1"].Has(types.String("anything")))
}

func TestLoadLines(x *testing.T) {
	t := assert.New(x)
	input := "milk bread eggs\nbread butter\n\nmilk\n"
	db, err := LoadLines(strings.NewReader(input))
	t.Nil(err)
	t.Equal(3, db.Size())
	t.Equal(3, db.Txs["1"].Size())
	t.True(db.Txs["2"].Has(types.String("butter")))
	t.Equal(1, db.Txs["4"].Size())
}

func TestLoadCSVLong(x *testing.T) {
	t := assert.New(x)
	input := "transaction_id,item\n" +
		"t1,milk\n" +
		"t1,bread\n" +
		"t2,\"eggs, butter\"\n" +
		",milk\n"
	db, err := LoadCSV(strings.NewReader(input))
	t.Nil(err)
	t.Equal(2, db.Size())
	t.Equal(2, db.Txs["t1"].Size())
	t.True(db.Txs["t2"].Has(types.String("eggs")))
	t.True(db.Txs["t2"].Has(types.String("butter")))
}

func TestLoadCSVWide(x *testing.T) {
	t := assert.New(x)
	input := "id,c1,c2,c3\n" +
		"t1,milk,bread,\n" +
		"t2,eggs,,\n"
	db, err := LoadCSV(strings.NewReader(input))
	t.Nil(err)
	t.Equal(2, db.Size())
	t.Equal(2, db.Txs["t1"].Size())
	t.Equal(1, db.Txs["t2"].Size())
}

func TestLoadCSVEmpty(x *testing.T) {
	t := assert.New(x)
	db, err := LoadCSV(strings.NewReader(""))
	t.Nil(err)
	t.Equal(0, db.Size())
}

func TestLoadProducts(x *testing.T) {
	t := assert.New(x)
	input := "product_id,name\n" +
		"p1, Whole  Milk\n" +
		"p2,Bread\n"
	valid, err := LoadProducts(strings.NewReader(input))
	t.Nil(err)
	t.True(valid.Has(types.String("p1")))
	t.True(valid.Has(types.String("whole milk")))
	t.True(valid.Has(types.String("bread")))
	t.False(valid.Has(types.String("butter")))
}
