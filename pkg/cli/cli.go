package cli

import (
	"io"

	"github.com/alecthomas/kong"
	"go.uber.org/zap"
)

// Context is handed to every command's Run method.
type Context struct {
	Logger *zap.Logger
	Out    io.Writer
}

// CLI is the command line of settrie.
type CLI struct {
	Verbose bool `help:"Log every loaded record" short:"v"`

	List      ListCmd      `cmd:"" help:"List every stored set with its values"`
	Contains  ContainsCmd  `cmd:"" help:"Check whether a set is stored"`
	Supersets SupersetsCmd `cmd:"" help:"List the stored sets containing the query set"`
	Subsets   SubsetsCmd   `cmd:"" help:"List the stored sets contained in the query set"`
	Tree      TreeCmd      `cmd:"" help:"Print the set trie as a rotated tree"`
	Stats     StatsCmd     `cmd:"" help:"Print the size and shape of the set trie"`
}

// Options are the kong options shared by the binary and Execute.
func Options() []kong.Option {
	return []kong.Option{
		kong.Name("settrie"),
		kong.Description("Query families of sets read from CSV or JSON files."),
		kong.UsageOnError(),
	}
}

// NewLogger builds the development logger used by the binary; verbose lowers the level to debug.
func NewLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// Execute parses args and runs the selected command, writing results to out.
func Execute(args []string, out io.Writer, logger *zap.Logger) error {
	var c CLI
	parser, err := kong.New(&c, append(Options(), kong.Writers(out, out))...)
	if err != nil {
		return err
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	return ctx.Run(&Context{Logger: logger, Out: out})
}
