package domain

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"puzzlebox.dev/pkg/puzzlebox/internal/adapter"
	"puzzlebox.dev/pkg/puzzlebox/internal/controller"
	m "puzzlebox.dev/pkg/puzzlebox/internal/model"
)

var (
	// ErrNoJobs is returned when a run has nothing to solve.
	ErrNoJobs = errors.New("no puzzle inputs to solve")
	// ErrInvalidPart is returned for a part other than all, 1 or 2.
	ErrInvalidPart = errors.New("invalid part")
	// ErrAnswerMismatch is returned when answers differ from the expected sheet.
	ErrAnswerMismatch = errors.New("answers differ from expected")
)

// SolveArgs contains the arguments for a solve run.
type SolveArgs struct {
	Jobs    []m.Job
	Part    m.Part
	Threads int
	// Output, when set, is where the answer sheet is saved.
	Output m.Path
	// Expect, when set, is an answer sheet the run is checked against.
	Expect m.Path
}

// Workflow defines the top-level operations behind the CLI commands.
type Workflow interface {
	Solve(ctx context.Context, args SolveArgs) error
	List(ctx context.Context) error
}

type workflow struct {
	adapter.InputAdapter
	adapter.AnswerStore
	controller.UI
	registry *Registry
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	inputs adapter.InputAdapter,
	store adapter.AnswerStore,
	ui controller.UI,
	registry *Registry,
) Workflow {
	return &workflow{
		InputAdapter: inputs,
		AnswerStore:  store,
		UI:           ui,
		registry:     registry,
	}
}

// Solve runs every job, displays the answers and optionally saves and checks
// them. The first failing job cancels the rest and fails the run.
func (w *workflow) Solve(ctx context.Context, args SolveArgs) error {
	if len(args.Jobs) == 0 {
		return ErrNoJobs
	}

	if !args.Part.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidPart, int(args.Part))
	}

	if err := w.Start(ctx); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	answers, err := w.solveJobs(ctx, args.Jobs, args.Threads)
	if err != nil {
		slog.Error("Failed to solve puzzles", "error", err)
		return err
	}

	answers = filterPart(answers, args.Part)
	sortAnswers(answers)

	if err := w.DisplayAnswers(ctx, answers); err != nil {
		slog.Error("Failed to display answers", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.Output != "" {
		sheet := m.AnswerSheet{RunID: uuid.NewString(), Answers: answers}
		if err := w.SaveAnswers(ctx, args.Output, sheet); err != nil {
			slog.Error("Failed to save answers", "path", args.Output, "error", err)
			return fmt.Errorf("save answers: %w", err)
		}

		slog.Info("saved answers", "path", args.Output, "run_id", sheet.RunID, "answers", len(answers))
	}

	if args.Expect != "" {
		return w.checkExpected(ctx, args.Expect, answers)
	}

	return nil
}

// List displays the registered puzzles.
func (w *workflow) List(ctx context.Context) error {
	if err := w.Start(ctx); err != nil {
		return err
	}
	defer w.Close(ctx)

	return w.DisplayPuzzles(ctx, w.registry.Describe())
}

func (w *workflow) solveJobs(ctx context.Context, jobs []m.Job, threads int) ([]m.Answer, error) {
	// Resolve every solver up front so a typo fails before any work starts.
	solvers := make([]Solver, len(jobs))

	for i, job := range jobs {
		s, err := w.registry.Lookup(job.Puzzle)
		if err != nil {
			return nil, err
		}

		solvers[i] = s
	}

	var (
		answers   []m.Answer
		answersMu sync.Mutex
	)

	group, groupCtx := errgroup.WithContext(ctx)
	if threads > 0 {
		group.SetLimit(threads)
	}

	for i, job := range jobs {
		solver := solvers[i]

		group.Go(func() error {
			jobAnswers, err := w.solveJob(groupCtx, solver, job)
			if err != nil {
				return err
			}

			answersMu.Lock()
			answers = append(answers, jobAnswers...)
			answersMu.Unlock()

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return answers, nil
}

func (w *workflow) solveJob(ctx context.Context, solver Solver, job m.Job) ([]m.Answer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines, err := w.ReadLines(ctx, job.Input)
	if err != nil {
		return nil, fmt.Errorf("read %s input: %w", job.Puzzle, err)
	}

	start := time.Now()

	solution, err := solver.Solve(ctx, lines)
	if err != nil {
		return nil, fmt.Errorf("solve %s %s: %w", job.Puzzle, job.Input, err)
	}

	elapsed := time.Since(start)
	slog.Info("solved puzzle", "puzzle", job.Puzzle, "input", job.Input, "elapsed", elapsed)

	answers := make([]m.Answer, 0, 2)
	for _, part := range []m.Part{m.PartOne, m.PartTwo} {
		answers = append(answers, m.Answer{
			Puzzle:  job.Puzzle,
			Part:    part,
			Input:   job.Input,
			Value:   solution.Value(part),
			Elapsed: elapsed,
		})
	}

	return answers, nil
}

func filterPart(answers []m.Answer, part m.Part) []m.Answer {
	if part == m.AllParts {
		return answers
	}

	return slices.DeleteFunc(answers, func(a m.Answer) bool {
		return a.Part != part
	})
}

func sortAnswers(answers []m.Answer) {
	slices.SortFunc(answers, func(a, b m.Answer) int {
		return cmp.Or(
			cmp.Compare(a.Puzzle, b.Puzzle),
			cmp.Compare(a.Input, b.Input),
			cmp.Compare(a.Part, b.Part),
		)
	})
}
