// Package cli implements the error-parser command line interface.
package cli

import (
	"io"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/terascope/error-parser/logrushook"
)

// NewRootCommand returns the error-parser root command reading files from
// the host filesystem.
func NewRootCommand() *cobra.Command {
	return newRootCommand(osfs.New("/"))
}

func newRootCommand(fs billy.Filesystem) *cobra.Command {
	root := &cobra.Command{
		Use:   "error-parser",
		Short: "Normalize and render service errors",
		Long: `Normalize heterogeneous error documents (search-engine errors, HTTP
responses, plain text) into structured errors and render them.`,
		SilenceUsage: true,
	}
	root.AddCommand(newParseCommand(fs))
	return root
}

// newLogger returns a logrus logger writing to w that expands parsed errors.
func newLogger(w io.Writer, level string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(lvl)
	logger.AddHook(logrushook.New())
	return logger, nil
}
