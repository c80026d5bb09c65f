package cli

import (
	"github.com/fatih/color"
	"github.com/khalid-nowaf/settrie/pkg/settrie"
	"go.uber.org/zap"
)

// Output selects the format of the results.
type Output struct {
	Format string `help:"Output format" enum:"text,json" default:"text"`
}

// Query is the set a command is asked about.
type Query struct {
	Query string `help:"Elements of the query set, separated by --element-del" required:""`
}

type ListCmd struct {
	Input  `embed:""`
	Output `embed:""`
	Mode   string `help:"Result shape" enum:"pairs,keys,values" default:"pairs"`
}

// Run executes the list command.
func (cmd *ListCmd) Run(ctx *Context) error {
	sets, _, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	mode, err := settrie.ParseMode(cmd.Mode)
	if err != nil {
		return err
	}
	return newWriter(cmd.Format, ctx.Out).WriteEntries(sets.Items(mode), mode)
}

type ContainsCmd struct {
	Input  `embed:""`
	Output `embed:""`
	Query  `embed:""`
}

// Run executes the contains command.
func (cmd *ContainsCmd) Run(ctx *Context) error {
	sets, _, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	query := cmd.splitSet(cmd.Query.Query)
	found := sets.Contains(query)
	ctx.Logger.Debug("contains", zap.Strings("query", query), zap.Int("values", sets.Count(query)))
	return newWriter(cmd.Format, ctx.Out).WriteBool("contains", found)
}

type SupersetsCmd struct {
	Input  `embed:""`
	Output `embed:""`
	Query  `embed:""`
	Mode   string `help:"Result shape" enum:"pairs,keys,values" default:"pairs"`
}

// Run executes the supersets command.
func (cmd *SupersetsCmd) Run(ctx *Context) error {
	sets, _, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	mode, err := settrie.ParseMode(cmd.Mode)
	if err != nil {
		return err
	}
	return newWriter(cmd.Format, ctx.Out).WriteEntries(sets.Supersets(cmd.splitSet(cmd.Query.Query), mode), mode)
}

type SubsetsCmd struct {
	Input  `embed:""`
	Output `embed:""`
	Query  `embed:""`
	Mode   string `help:"Result shape" enum:"pairs,keys,values" default:"pairs"`
}

// Run executes the subsets command.
func (cmd *SubsetsCmd) Run(ctx *Context) error {
	sets, _, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	mode, err := settrie.ParseMode(cmd.Mode)
	if err != nil {
		return err
	}
	return newWriter(cmd.Format, ctx.Out).WriteEntries(sets.Subsets(cmd.splitSet(cmd.Query.Query), mode), mode)
}

type TreeCmd struct {
	Input   `embed:""`
	NoColor bool `help:"Do not colorize the markers of stored sets"`
}

// Run executes the tree command.
func (cmd *TreeCmd) Run(ctx *Context) error {
	sets, _, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	marker := color.New(color.FgGreen, color.Bold)
	if cmd.NoColor {
		marker.DisableColor()
	}
	return sets.WriteTree(ctx.Out, settrie.DumpOptions{
		Decorate: func(m string) string { return marker.Sprint(m) },
	})
}

type StatsCmd struct {
	Input  `embed:""`
	Output `embed:""`
}

// Run executes the stats command.
func (cmd *StatsCmd) Run(ctx *Context) error {
	sets, loaded, err := cmd.load(ctx)
	if err != nil {
		return err
	}
	return newWriter(cmd.Format, ctx.Out).WriteStats(Stats{
		LoadStats: loaded,
		Sets:      sets.Len(),
		Values:    len(sets.Values()),
		Stats:     sets.Stats(),
	})
}
