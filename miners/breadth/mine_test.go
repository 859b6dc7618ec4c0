package breadth

import "testing"
import "github.com/stretchr/testify/assert"

import (
	"github.com/HaloV36/project-folder-Association-Mining/config"
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
	"github.com/HaloV36/project-folder-Association-Mining/types/tx"
)

func groceries() *tx.Database {
	db := tx.NewDatabase()
	db.Add("t1", "a", "b")
	db.Add("t2", "a", "b", "c")
	db.Add("t3", "a")
	db.Add("t4", "b", "c")
	return db
}

func TestMine(x *testing.T) {
	t := assert.New(x)
	m := NewMiner(&config.Config{Support: .5})
	result, elapsed, err := m.Mine(groceries())
	t.Nil(err)
	t.True(elapsed >= 0)
	t.Equal(5, result.Size())
	expected := []struct {
		items   []string
		support float64
	}{
		{[]string{"a"}, .75},
		{[]string{"b"}, .75},
		{[]string{"c"}, .5},
		{[]string{"a", "b"}, .5},
		{[]string{"b", "c"}, .5},
	}
	for _, e := range expected {
		sup, has := result.Support(itemset.FromItems(e.items...))
		t.True(has, "%v not frequent", e.items)
		t.InDelta(e.support, sup, 1e-9)
	}
	t.False(result.Has(itemset.FromItems("a", "c")))
	t.False(result.Has(itemset.FromItems("a", "b", "c")))
}

func TestMineEmptyDatabase(x *testing.T) {
	t := assert.New(x)
	m := NewMiner(&config.Config{Support: .5})
	result, _, err := m.Mine(tx.NewDatabase())
	t.Nil(err)
	t.Equal(0, result.Size())
	t.Equal(0, result.Total())
}

func TestMineInvalidSupport(x *testing.T) {
	t := assert.New(x)
	for _, sup := range []float64{-0.1, 1.1, 2} {
		m := NewMiner(&config.Config{Support: sup})
		result, _, err := m.Mine(groceries())
		t.NotNil(err, "support %v should be rejected", sup)
		t.Nil(result)
	}
}

func TestMineZeroSupport(x *testing.T) {
	t := assert.New(x)
	// min support 0 still requires at least one occurrence
	m := NewMiner(&config.Config{Support: 0})
	result, _, err := m.Mine(groceries())
	t.Nil(err)
	t.Equal(7, result.Size())
	t.False(result.Has(itemset.FromItems("d")))
}

func TestMineFullSupport(x *testing.T) {
	t := assert.New(x)
	m := NewMiner(&config.Config{Support: 1})
	result, _, err := m.Mine(groceries())
	t.Nil(err)
	t.Equal(0, result.Size())
}

func TestMineToleratesEmptyTransaction(x *testing.T) {
	t := assert.New(x)
	db := groceries()
	db.Add("t5")
	m := NewMiner(&config.Config{Support: .4})
	result, _, err := m.Mine(db)
	t.Nil(err)
	t.Equal(5, result.Total())
	sup, has := result.Support(itemset.FromItems("a"))
	t.True(has)
	t.InDelta(.6, sup, 1e-9)
}

func TestMineMonotoneInSupport(x *testing.T) {
	t := assert.New(x)
	db := groceries()
	prev := -1
	for _, sup := range []float64{0, .25, .5, .75, 1} {
		m := NewMiner(&config.Config{Support: sup})
		result, _, err := m.Mine(db)
		t.Nil(err)
		if prev >= 0 {
			t.True(result.Size() <= prev, "raising support %v grew the result", sup)
		}
		prev = result.Size()
	}
}

func TestMineParallelMatchesSerial(x *testing.T) {
	t := assert.New(x)
	db := groceries()
	serial, _, err := NewMiner(&config.Config{Support: .25}).Mine(db)
	t.Nil(err)
	parallel, _, err := NewMiner(&config.Config{Support: .25, Parallelism: 4}).Mine(db)
	t.Nil(err)
	t.True(serial.Equiv(parallel, 0))
}
