package cmd

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"puzzlebox.dev/pkg/puzzlebox/internal/domain"
	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

// errInvalidInput is returned for an --input value not shaped PUZZLE=FILE.
var errInvalidInput = errors.New("invalid input, want PUZZLE=FILE")

var runParallelFlag int
var runInputFlags []string
var runExpectFlag string
var runPartFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Solve all configured puzzle inputs",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			jobs, err := collectJobs(viper.GetStringMapString(inputsConfigKey), runInputFlags)
			if err != nil {
				return err
			}

			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Jobs:    jobs,
				Part:    m.Part(runPartFlag),
				Threads: viper.GetInt(runParallelConfigKey),
				Output:  m.Path(viper.GetString(outputFlagName)),
				Expect:  m.Path(viper.GetString(runExpectConfigKey)),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of inputs solved in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVar(&runExpectFlag, expectFlagName, viper.GetString(runExpectConfigKey), "answer sheet the answers must match")
	bindFlagToConfig(cmd.Flags().Lookup(expectFlagName), runExpectConfigKey)

	cmd.Flags().StringArrayVarP(&runInputFlags, inputFlagName, "i", nil, "puzzle input as PUZZLE=FILE (can be repeated)")
	cmd.Flags().IntVar(&runPartFlag, partFlagName, int(m.AllParts), "print only this part (1 or 2); 0 prints both")
}

// collectJobs merges configured inputs with --input flags. Configured inputs
// come first in puzzle order; exact duplicates are dropped.
func collectJobs(configured map[string]string, flags []string) ([]m.Job, error) {
	puzzles := make([]string, 0, len(configured))
	for puzzle := range configured {
		puzzles = append(puzzles, puzzle)
	}

	slices.Sort(puzzles)

	jobs := make([]m.Job, 0, len(configured)+len(flags))
	for _, puzzle := range puzzles {
		jobs = append(jobs, m.Job{Puzzle: m.Puzzle(puzzle), Input: m.Path(configured[puzzle])})
	}

	for _, value := range flags {
		job, err := parseInput(value)
		if err != nil {
			return nil, err
		}

		if !slices.Contains(jobs, job) {
			jobs = append(jobs, job)
		}
	}

	return jobs, nil
}

func parseInput(value string) (m.Job, error) {
	puzzle, path, ok := strings.Cut(value, "=")
	puzzle = strings.TrimSpace(puzzle)
	path = strings.TrimSpace(path)

	if !ok || puzzle == "" || path == "" {
		return m.Job{}, fmt.Errorf("%w: %q", errInvalidInput, value)
	}

	return m.Job{Puzzle: m.Puzzle(strings.ToLower(puzzle)), Input: m.Path(path)}, nil
}
