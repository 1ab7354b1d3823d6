package project

import (
	"github.com/DobbiKov/translate-dir-lib/internal/lang"
	"github.com/DobbiKov/translate-dir-lib/internal/snapshot"
)

// LangDir pairs a directory snapshot with the language it holds.
type LangDir struct {
	Dir      snapshot.Directory `json:"dir" yaml:"dir"`
	Language lang.Language      `json:"language" yaml:"language"`
}

// Config is the project document persisted at the project root. It owns
// every snapshot it holds; callers only ever receive clones.
type Config struct {
	Version  string    `json:"version" yaml:"version"`
	Name     string    `json:"name" yaml:"name"`
	RootPath string    `json:"root_path" yaml:"root_path"`
	SrcDir   *LangDir  `json:"src_dir" yaml:"src_dir"`
	LangDirs []LangDir `json:"lang_dirs" yaml:"lang_dirs"`
}

func (l LangDir) Clone() LangDir {
	return LangDir{Dir: l.Dir.Clone(), Language: l.Language}
}

func (c Config) Clone() Config {
	out := c
	if c.SrcDir != nil {
		src := c.SrcDir.Clone()
		out.SrcDir = &src
	}
	out.LangDirs = make([]LangDir, len(c.LangDirs))
	for i, ld := range c.LangDirs {
		out.LangDirs[i] = ld.Clone()
	}
	return out
}

// target returns the index of the LangDir for l, or -1.
func (c *Config) target(l lang.Language) int {
	for i := range c.LangDirs {
		if c.LangDirs[i].Language == l {
			return i
		}
	}
	return -1
}

func (c *Config) languages() []lang.Language {
	out := make([]lang.Language, len(c.LangDirs))
	for i, ld := range c.LangDirs {
		out[i] = ld.Language
	}
	return out
}
