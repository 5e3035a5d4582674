package model

import "time"

// Solution holds both answers a solver computed for one input.
type Solution struct {
	Part1 uint64
	Part2 uint64
}

// Value returns the answer for the given part. AllParts yields Part1.
func (s Solution) Value(part Part) uint64 {
	if part == PartTwo {
		return s.Part2
	}

	return s.Part1
}

// Answer is a single computed value for one part of one input.
type Answer struct {
	Puzzle  Puzzle        `yaml:"puzzle"`
	Part    Part          `yaml:"part"`
	Input   Path          `yaml:"input"`
	Value   uint64        `yaml:"value"`
	Elapsed time.Duration `yaml:"-"`
}

// AnswerSheet is the persisted result of a run.
type AnswerSheet struct {
	RunID   string   `yaml:"run_id,omitempty"`
	Answers []Answer `yaml:"answers"`
}
