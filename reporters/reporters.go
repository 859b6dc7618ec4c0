package reporters

import (
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
)

// A Reporter consumes the frequent patterns of a mining run. The
// engines themselves return whole results; the caller streams the
// patterns through a reporter chain for logging and output.
type Reporter interface {
	Report(p *itemset.Pattern) error
	Close() error
}

type Chain struct {
	Reporters []Reporter
}

func (r *Chain) Report(p *itemset.Pattern) error {
	for _, rpt := range r.Reporters {
		err := rpt.Report(p)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Chain) Close() error {
	for _, rpt := range r.Reporters {
		err := rpt.Close()
		if err != nil {
			return err
		}
	}
	return nil
}
