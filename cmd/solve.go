package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"puzzlebox.dev/pkg/puzzlebox/internal/domain"
	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

var solvePartFlag int

// solveCmd represents the solve command.
var solveCmd = newSolveCmd()

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve PUZZLE FILE",
		Short: "Solve one puzzle input",
		Long:  solveLongDescription,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Solve(cmd.Context(), domain.SolveArgs{
				Jobs:    []m.Job{{Puzzle: m.Puzzle(args[0]), Input: m.Path(args[1])}},
				Part:    m.Part(solvePartFlag),
				Threads: 1,
				Output:  m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	cmd.Flags().IntVar(&solvePartFlag, partFlagName, int(m.AllParts), "print only this part (1 or 2); 0 prints both")

	return cmd
}

func init() {
	rootCmd.AddCommand(solveCmd)
}
