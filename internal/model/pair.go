package model

import (
	"encoding/json"
	"fmt"
)

// TargetSum is the value every pair must add up to.
const TargetSum = 12

// Pair is two values summing to TargetSum, smaller value first.
type Pair struct {
	A int
	B int
}

// NewPair returns the canonical pair for a and b.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{A: a, B: b}
}

// String renders the pair as "a b".
func (p Pair) String() string {
	return fmt.Sprintf("%d %d", p.A, p.B)
}

// MarshalJSON encodes the pair as a two-element array.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.A, p.B})
}

// PairSet is an insertion-ordered list of distinct pairs.
type PairSet []Pair

// FileResult is the outcome of processing a single input file.
type FileResult struct {
	InputPath  string
	OutputPath string
	PairCount  int
	Err        error
}

// Succeeded reports whether the file was processed without error.
func (r FileResult) Succeeded() bool {
	return r.Err == nil
}
