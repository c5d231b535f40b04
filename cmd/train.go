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
	"github.com/cogpn/cogpn/internal/iotrain"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getTrainCmd returns the train command.
func getTrainCmd() *cobra.Command {
	trainCmd := &cobra.Command{
		Use:   "train <addresses>",
		Short: "Learn the association model from addresses with postal codes",
		Long: `Learn which address words point to which postal codes.

The address file is tab-separated with the columns address_row_id,
AddressLine1, AddressLine2, AddressLine3, AddressLine4 and postal_code.

This command:
  1. Builds the gazetteer hierarchy from the reference list
  2. Normalizes every address with synonyms and street types
  3. Keeps the most frequent words of every postal code
  4. Links postal codes to gazetteer suburbs
  5. Saves the model as JSON

Addresses without a postal code or with a repeated address_row_id are
reported, but do not stop training.

Examples:
  cogpn train training_addresses.tsv
  cogpn train training_addresses.tsv --model cape_town.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runTrain(cmd, args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addPathFlags(trainCmd, inputFlags)
	return trainCmd
}

func runTrain(cmd *cobra.Command, path string) error {
	cfg.Update(pathOptions(cmd, inputFlags))
	return iotrain.New(cfg).Train(cmd.Context(), path)
}
