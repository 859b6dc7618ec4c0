package reporters

import (
	"fmt"
	"io"
	"os"
)

import (
	"github.com/HaloV36/project-folder-Association-Mining/config"
	"github.com/HaloV36/project-folder-Association-Mining/types/itemset"
)

type File struct {
	config   *config.Config
	fmtr     itemset.Formatter
	patterns io.WriteCloser
}

func NewFile(c *config.Config, fmtr itemset.Formatter, patternsFilename string) (*File, error) {
	patterns, err := os.Create(c.OutputFile(patternsFilename + fmtr.FileExt()))
	if err != nil {
		return nil, err
	}
	r := &File{
		config:   c,
		fmtr:     fmtr,
		patterns: patterns,
	}
	return r, nil
}

func (r *File) Report(p *itemset.Pattern) error {
	_, err := fmt.Fprintln(r.patterns, r.fmtr.FormatPattern(p))
	return err
}

func (r *File) Close() error {
	return r.patterns.Close()
}
