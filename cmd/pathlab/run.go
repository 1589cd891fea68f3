package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlab/grid"
	"github.com/katalvlaran/pathlab/pathfinder"
	"github.com/katalvlaran/pathlab/search"
)

// errNoEndpoints is returned for boards without both 'S' and 'T'.
var errNoEndpoints = errors.New("pathlab: board needs one 'S' and one 'T'")

// pathMark overlays path cells between start and target.
const pathMark = '*'

func (c *cli) runCmd() *cobra.Command {
	var algName, file string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run searches on a board read from text ('.' open, '#' wall, 'S' start, 'T' target)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var algs []pathfinder.Algorithm
			if strings.EqualFold(algName, "all") {
				algs = pathfinder.Algorithms()
			} else {
				alg, err := pathfinder.ParseAlgorithm(algName)
				if err != nil {
					return err
				}
				algs = []pathfinder.Algorithm{alg}
			}

			in := cmd.InOrStdin()
			if file != "-" {
				f, err := os.Open(file)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			g, start, target, err := readBoard(in)
			if err != nil {
				return err
			}

			for _, alg := range algs {
				if err := c.runOne(cmd, g, start, target, alg); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "bfs", `algorithm name, menu key 1-6, or "all"`)
	cmd.Flags().StringVarP(&file, "grid", "g", "-", `board file; "-" reads stdin`)
	return cmd
}

// readBoard parses rows from r, skipping blank lines and surrounding space.
func readBoard(r io.Reader) (*grid.Grid, *grid.Cell, *grid.Cell, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if row := strings.TrimSpace(sc.Text()); row != "" {
			rows = append(rows, row)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, nil, nil, err
	}
	g, start, target, err := grid.Parse(rows)
	if err != nil {
		return nil, nil, nil, err
	}
	if start == nil || target == nil {
		return nil, nil, nil, errNoEndpoints
	}
	return g, start, target, nil
}

// runOne prints a summary line followed by the board with the path overlaid.
func (c *cli) runOne(cmd *cobra.Command, g *grid.Grid, start, target *grid.Cell, alg pathfinder.Algorithm) error {
	res, err := alg.Run(g, start, target,
		search.WithContext(cmd.Context()),
		search.WithDepthLimit(c.cfg.DepthLimit),
	)
	if err != nil {
		return err
	}
	shortest := g.Distances(start)[target.Index()]
	c.log.WithFields(logrus.Fields{
		"algorithm": alg.String(),
		"found":     res.Found(),
		"edges":     res.Edges(),
		"expanded":  res.Expanded,
	}).Debug("search finished")

	out := cmd.OutOrStdout()
	switch {
	case res.Found():
		fmt.Fprintf(out, "%s: %d moves, %d expanded, shortest %d\n", alg, res.Edges(), res.Expanded, shortest)
	case shortest == grid.Unreachable:
		_, breach, _ := g.MinBreach(start, target)
		fmt.Fprintf(out, "%s: no path, %d expanded; remove %d wall(s) to connect\n", alg, res.Expanded, breach)
	default:
		fmt.Fprintf(out, "%s: no path within depth limit %d, %d expanded; shortest %d\n",
			alg, c.cfg.DepthLimit, res.Expanded, shortest)
	}

	marks := map[*grid.Cell]byte{start: 'S', target: 'T'}
	for _, cell := range res.Path {
		if cell != start && cell != target {
			marks[cell] = pathMark
		}
	}
	fmt.Fprint(out, g.Format(marks))
	return nil
}
