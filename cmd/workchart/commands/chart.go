// Package commands implements the CLI command handlers for workchart.
package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/workchart/internal/activity"
	"github.com/Sumatoshi-tech/workchart/internal/config"
	"github.com/Sumatoshi-tech/workchart/internal/heatmap"
	"github.com/Sumatoshi-tech/workchart/internal/svg"
	"github.com/Sumatoshi-tech/workchart/internal/viewer"
	"github.com/Sumatoshi-tech/workchart/pkg/gitlog"
)

// ChartCommand holds the collaborators of the chart command. Tests inject
// synthetic implementations.
type ChartCommand struct {
	reader gitlog.Reader
	open   func(path string)
	now    func() time.Time
	out    io.Writer
}

// NewChartCommand creates the root chart command wired to libgit2 and the
// system viewer.
func NewChartCommand() *cobra.Command {
	return newChartCommandWithDeps(gitlog.NewCommitReader(), viewer.Open, time.Now, os.Stdout)
}

func newChartCommandWithDeps(
	reader gitlog.Reader,
	open func(path string),
	now func() time.Time,
	out io.Writer,
) *cobra.Command {
	cc := &ChartCommand{reader: reader, open: open, now: now, out: out}

	return &cobra.Command{
		Use:   "workchart [path...]",
		Short: "Generate a chart of commits per day",
		Long: `Workchart reads the commit history of one or more git repositories and
builds a chart with commit activity per day, similar to the commit chart on
GitHub but generated locally. It writes an SVG file to the current directory
and launches a file viewer to display it.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return cc.run(args)
		},
	}
}

// run aggregates commit counts, renders the chart, opens the viewer and
// prints the summary line. Any repository or output failure aborts before
// later steps run, so a failed scan never leaves a chart behind.
func (cc *ChartCommand) run(paths []string) error {
	cfg, err := config.LoadConfig("")
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	if len(paths) == 0 {
		// Assume that the current directory holds a repository.
		paths = []string{cwd}
	}

	counts, err := activity.Aggregate(cc.reader, paths)
	if err != nil {
		return err
	}

	today := activity.DayOf(cc.now())
	layout := heatmap.NewLayout(today, cfg.Chart.Days)
	style := cfg.Style()
	geo := layout.Geometry(style)

	outPath := cfg.Chart.Output
	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(cwd, outPath)
	}

	canvas, err := svg.New(outPath, geo.Width, geo.Height)
	if err != nil {
		return err
	}

	heatmap.Render(canvas, layout, counts, style)

	err = canvas.Close()
	if err != nil {
		return err
	}

	if cfg.Chart.OpenViewer {
		cc.open(outPath)
	}

	fmt.Fprintf(cc.out, "Changes as of: %s: %d\n", today, counts.Total())

	return nil
}
