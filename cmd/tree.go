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
	"github.com/cogpn/cogpn/internal/iogazetteer"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

var treeFlags = []pathFlag{referenceFlag, exclusionsFlag}

// getTreeCmd returns the tree command.
func getTreeCmd() *cobra.Command {
	var find []string

	treeCmd := &cobra.Command{
		Use:   "tree [reference]",
		Short: "Build the place hierarchy and report on it",
		Long: `Build the gazetteer hierarchy from the AfriGIS reference list.

This command:
  1. Reads the reference list and the exclusions
  2. Nests towns of the metro municipality under the metro city
  3. Checks that every (town, municipality) pair is unique
  4. Reports the number of towns and suburbs and the depth of the tree

With --find every matching place is printed as YAML together with its
chain of parent places.

Examples:
  cogpn tree
  cogpn tree AfriGIS_Suburbs_Towns_List.csv
  cogpn tree --find "Bella Vista" --find Langa`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTree(cmd, args, find)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addPathFlags(treeCmd, treeFlags)
	treeCmd.Flags().StringSliceVarP(
		&find, "find", "f", nil,
		"place names to look up",
	)
	return treeCmd
}

func runTree(cmd *cobra.Command, args []string, find []string) error {
	treeOpts := pathOptions(cmd, treeFlags)
	if len(args) == 1 {
		treeOpts = append(treeOpts, referenceFlag.opt(args[0]))
	}
	cfg.Update(treeOpts)

	return iogazetteer.NewInspector(cfg).Inspect(cmd.Context(), find)
}
