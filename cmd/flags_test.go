package cmd

import (
	"os"
	"testing"

	"github.com/cogpn/cogpn/internal/iotesting"
	"github.com/cogpn/cogpn/pkg/config"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathOptions(t *testing.T) {
	tests := []struct {
		msg   string
		args  []string
		check func(*testing.T, *config.Config)
	}{
		{
			msg:  "no flags keep defaults",
			args: nil,
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, config.New().Files, c.Files)
				assert.Equal(t, config.New().Output, c.Output)
			},
		},
		{
			msg:  "long flags",
			args: []string{"--reference", "ref.tsv", "--model", "m.json"},
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "ref.tsv", c.Files.Reference)
				assert.Equal(t, "m.json", c.Files.Model)
				assert.Equal(t, "synonyms.csv", c.Files.Synonyms)
			},
		},
		{
			msg:  "short flags",
			args: []string{"-s", "syn.csv", "-o", "out.tsv", "-p", "review.tsv"},
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "syn.csv", c.Files.Synonyms)
				assert.Equal(t, "out.tsv", c.Output.Resolved)
				assert.Equal(t, "review.tsv", c.Output.NeedsReview)
			},
		},
		{
			msg:  "empty value is ignored",
			args: []string{"--exclusions="},
			check: func(t *testing.T, c *config.Config) {
				assert.Equal(t, "excluded_places.csv", c.Files.Exclusions)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			cmd := &cobra.Command{Use: "test"}
			addPathFlags(cmd, resolveFlags)
			require.NoError(t, cmd.ParseFlags(tt.args))

			c := config.New()
			c.Update(pathOptions(cmd, resolveFlags))
			tt.check(t, c)
		})
	}
}

func TestResolveFlagsIncludeInputs(t *testing.T) {
	assert.Len(t, resolveFlags, len(inputFlags)+2)
	assert.Len(t, inputFlags, 6, "append must not share inputFlags storage")
}

// TestTrainResolve runs the whole workflow through the command line.
func TestTrainResolve(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	c := iotesting.Config(t)
	input := iotesting.Addresses(t, iotesting.Training)
	files := []string{
		"--reference", c.Files.Reference,
		"--synonyms", c.Files.Synonyms,
		"--exclusions", c.Files.Exclusions,
		"--street-types", c.Files.StreetTypes,
		"--suburb-words", c.Files.SuburbWords,
		"--model", c.Files.Model,
	}

	root := getRootCmd()
	root.SetArgs(append([]string{"train", input}, files...))
	require.NoError(t, root.Execute())
	assert.FileExists(t, c.Files.Model)

	root = getRootCmd()
	args := append([]string{"resolve", input}, files...)
	args = append(args,
		"-o", c.Output.Resolved,
		"-p", c.Output.NeedsReview,
		"--jobs", "1",
	)
	root.SetArgs(args)
	require.NoError(t, root.Execute())
	assert.Equal(t, 1, cfg.JobsNumber)

	for _, path := range []string{c.Output.Resolved, c.Output.NeedsReview} {
		bs, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(bs), "normalized_address")
	}

	root = getRootCmd()
	root.SetArgs([]string{
		"tree", c.Files.Reference,
		"--exclusions", c.Files.Exclusions,
		"--find", "Bella Vista",
	})
	require.NoError(t, root.Execute())
}

func TestTrainMissingInput(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	root := getRootCmd()
	root.SetArgs([]string{"train", "no-such-file.tsv"})
	assert.Error(t, root.Execute())
}
