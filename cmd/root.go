// Package cmd provides the root command and CLI setup for puzzlebox.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"puzzlebox.dev/pkg/puzzlebox/internal/adapter"
	"puzzlebox.dev/pkg/puzzlebox/internal/controller"
	"puzzlebox.dev/pkg/puzzlebox/internal/domain"
)

var inputAdapter adapter.InputAdapter
var answerStore adapter.AnswerStore
var registry *domain.Registry
var workflow domain.Workflow
var ui controller.UI

// outputFlag is a root-level flag naming the answer sheet to write.
var outputFlag string

var logFileFlag string

var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	inputAdapter = adapter.NewLocalInputAdapter()
	answerStore = adapter.NewYAMLAnswerStore()
	registry = domain.NewDefaultRegistry(solverConfig())
	workflow = domain.NewWorkflow(
		inputAdapter,
		answerStore,
		ui,
		registry,
	)
}

const rootLongDescription = `Puzzlebox solves fixed-format text puzzles and reports both answers of each.

Built-in puzzles:
  - schematic   engine schematic: part numbers and gear ratios
  - cubes       cube games: possible games and minimum-set powers
  - cards       scratch cards: points and cascading copies`

const solveLongDescription = `Solve one puzzle input and print its answers.

Use --part to print only part 1 or part 2.`

const runLongDescription = `Solve every configured puzzle input in parallel.

Inputs come from the "inputs" map of puzzlebox.yaml and from repeated
--input PUZZLE=FILE flags. With --expect the answers are compared against
a previously saved answer sheet and the command fails on any difference.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "puzzlebox",
		Short: "Text puzzle solver",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"write the answer sheet to this YAML file",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
