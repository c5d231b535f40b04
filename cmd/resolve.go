/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/cogpn/cogpn/internal/ioresolve"
	"github.com/cogpn/cogpn/pkg/config"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

var resolveFlags = append(
	append([]pathFlag{}, inputFlags...),
	outputFlag,
	problemOutputFlag,
)

// getResolveCmd returns the resolve command.
func getResolveCmd() *cobra.Command {
	var (
		row  int
		jobs int
	)

	resolveCmd := &cobra.Command{
		Use:   "resolve <addresses>",
		Short: "Assign suburbs and towns to addresses",
		Long: `Resolve addresses to AfriGIS suburbs and towns with a trained model.

This command:
  1. Loads the gazetteer hierarchy and the model
  2. Finds significant words of every address in the gazetteer
  3. Settles names shared by several places with the postal code or,
     if the address mentions Cape Town, with the metro
  4. Writes resolved addresses to --output and the rest to
     --problem-output

Both outputs repeat the input columns and add the place, its AfriGIS
codes, match flags, supporting terms and postal codes.

Use --row to resolve a single data row (1-based, header excluded) and
print how it was resolved.

Examples:
  cogpn resolve addresses.tsv
  cogpn resolve addresses.tsv -o done.tsv -p review.tsv --jobs 4
  cogpn resolve addresses.tsv --row 42`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runResolve(cmd, args[0], row, jobs)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addPathFlags(resolveCmd, resolveFlags)
	resolveCmd.Flags().IntVar(
		&row, "row", 0,
		"resolve only this data row",
	)
	resolveCmd.Flags().IntVarP(
		&jobs, "jobs", "j", 0,
		"number of concurrent workers (default from config)",
	)
	return resolveCmd
}

func runResolve(cmd *cobra.Command, path string, row, jobs int) error {
	resolveOpts := pathOptions(cmd, resolveFlags)
	if cmd.Flags().Changed("row") {
		resolveOpts = append(resolveOpts, config.OptOutputRow(row))
	}
	if cmd.Flags().Changed("jobs") {
		resolveOpts = append(resolveOpts, config.OptJobsNumber(jobs))
	}
	cfg.Update(resolveOpts)

	return ioresolve.New(cfg).Annotate(cmd.Context(), path)
}
