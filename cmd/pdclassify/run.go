package main

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/yohm/pdgame-m2/state"
	"github.com/yohm/pdgame-m2/strategy"
)

// numStrategies is the full enumeration space: one deterministic
// strategy per assignment of an action to each of the 16 states.
const numStrategies = 1 << state.NumStates

// Request parameterizes a classification run.
type Request struct {
	CheckDefensibility   bool
	CheckEfficiency      bool
	CheckDistinguishable bool
	Epsilon              float64
	Theta                float64
	Workers              int
}

// Result is the outcome of a classification run: the textual strategies
// that passed every requested check, in ascending strategy-ID order, plus
// the pass/candidate counts for the summary line.
type Result struct {
	Passed        []string
	NumPassed     uint64
	NumCandidates uint64
}

// Run enumerates all numStrategies candidates, partitions them across
// Workers goroutines coordinated by an errgroup, and classifies each
// against req's selected checks. No shared mutable state is written by
// more than one goroutine: each worker accumulates its own chunk's
// passing strategies, and the chunks are concatenated in order once every
// worker has finished.
func Run(ctx context.Context, req Request) (Result, error) {
	workers := req.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > numStrategies {
		workers = numStrategies
	}

	chunks := make([][]string, workers)
	chunkPassed := make([]uint64, workers)

	group, groupCtx := errgroup.WithContext(ctx)

	chunkSize := (numStrategies + workers - 1) / workers
	for w := 0; w < workers; w++ {
		w := w
		start := w * chunkSize
		end := start + chunkSize
		if end > numStrategies {
			end = numStrategies
		}
		if start >= end {
			continue
		}

		group.Go(func() error {
			return classifyRange(groupCtx, req, start, end, &chunks[w], &chunkPassed[w])
		})
	}

	if err := group.Wait(); err != nil {
		return Result{}, err
	}

	var result Result
	result.NumCandidates = numStrategies
	for w := 0; w < workers; w++ {
		result.Passed = append(result.Passed, chunks[w]...)
		result.NumPassed += chunkPassed[w]
	}

	log.Info().Uint64("passed", result.NumPassed).Uint64("candidates", result.NumCandidates).Msg("classification complete")

	return result, nil
}

// progressInterval is how often, in candidates examined, classifyRange
// logs a progress line — frequent enough to show life on a long local
// run, rare enough not to flood the console.
const progressInterval = 8192

// classifyRange runs req's checks over candidate IDs [start, end), writing
// passing strategies into *passed and the pass count into *passedCount.
// It owns its two output pointers exclusively — no other goroutine
// touches them — so it needs no synchronization of its own.
func classifyRange(ctx context.Context, req Request, start, end int, passed *[]string, passedCount *uint64) error {
	for i := start; i < end; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if i%progressInterval == 0 {
			log.Info().Int("candidate", i).Int("numCandidates", numStrategies).Msg("progress")
		}

		bits := make([]byte, state.NumStates)
		for j := 0; j < state.NumStates; j++ {
			if (i>>j)&1 == 1 {
				bits[j] = 'd'
			} else {
				bits[j] = 'c'
			}
		}
		s := strategy.Parse(string(bits))

		if req.CheckDefensibility && !s.IsDefensible() {
			continue
		}

		if req.CheckEfficiency {
			efficient, err := s.IsEfficient(req.Epsilon, req.Theta)
			if err != nil {
				return fmt.Errorf("classify %s: %w", s.String(), err)
			}
			if efficient != s.IsEfficientTopo() {
				return fmt.Errorf("classify %s: %w", s.String(), strategy.ErrInvariantContradiction)
			}
			if !efficient {
				continue
			}
		}

		if req.CheckDistinguishable {
			distinguishable, err := s.IsDistinguishable(req.Epsilon, req.Theta)
			if err != nil {
				return fmt.Errorf("classify %s: %w", s.String(), err)
			}
			if distinguishable != s.IsDistinguishableTopo() {
				return fmt.Errorf("classify %s: %w", s.String(), strategy.ErrInvariantContradiction)
			}
			if !distinguishable {
				continue
			}
		}

		*passed = append(*passed, s.String())
		*passedCount++
	}

	return nil
}
