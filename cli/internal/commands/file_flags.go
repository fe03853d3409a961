package commands

import (
	"github.com/kuchuk-borom-debbarma/htmltool/core"
	"github.com/spf13/pflag"
)

// fileFlags are the flags every command uses to pick its target files.
type fileFlags struct {
	singleFile    string
	filePattern   string
	rootDirectory string
}

func (f *fileFlags) bind(flags *pflag.FlagSet) {
	flags.StringVar(&f.singleFile, "single-file", "", "Path of the file to update")
	flags.StringVar(&f.filePattern, "file-pattern", "", "Glob pattern to find files to update")
	flags.StringVar(&f.rootDirectory, "root-directory", "", "Root directory for glob pattern (default: working directory)")
}

func (f *fileFlags) fileSet() core.FileSet {
	return core.FileSet{
		SingleFile:    f.singleFile,
		Pattern:       f.filePattern,
		RootDirectory: f.rootDirectory,
	}
}
