package config

import (
	"path/filepath"
	"runtime"
)

type Config struct {
	Output      string
	Support     float64
	Confidence  float64
	Recommend   string
	Parallelism int
}

func (c *Config) Copy() *Config {
	return &Config{
		Output:      c.Output,
		Support:     c.Support,
		Confidence:  c.Confidence,
		Recommend:   c.Recommend,
		Parallelism: c.Parallelism,
	}
}

func (c *Config) Workers() int {
	if c.Parallelism == 0 {
		return 1
	} else if c.Parallelism == -1 {
		return runtime.NumCPU()
	} else {
		return c.Parallelism
	}
}

func (c *Config) OutputFile(name string) string {
	return filepath.Join(c.Output, name)
}
