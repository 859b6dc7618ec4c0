package miners

import (
	"math"
	"time"
)

import (
	"github.com/timtadh/data-structures/errors"
)

import (
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
	"github.com/HaloV36/project-folder-Association-Mining/types/tx"
)

// A Miner is one frequent itemset mining strategy. The strategies are
// interchangeable: for the same database and support threshold every
// Miner produces the same result content, so callers and tests can
// swap or cross-validate them without special casing.
type Miner interface {
	Mine(db *tx.Database) (*itemset.Result, time.Duration, error)
}

// ValidSupport rejects a minimum support outside [0, 1] before any
// computation begins.
func ValidSupport(support float64) error {
	if support < 0 || support > 1 {
		return errors.Errorf("minimum support %v outside [0, 1]", support)
	}
	return nil
}

// MinCount converts the relative support threshold into the absolute
// occurrence count both strategies prune with. Never less than 1, so
// an itemset appearing zero times is never reported.
func MinCount(support float64, total int) int {
	count := int(math.Ceil(support * float64(total)))
	if count < 1 {
		count = 1
	}
	return count
}
