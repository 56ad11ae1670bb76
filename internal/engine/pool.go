/*
PURPOSE:
  Deterministic parallel trial executor.
  Splits a scenario's trials into fixed-size blocks, each with its own
  seeded RNG stream, so results never depend on how many workers ran them.

REQUIREMENTS:
  User-specified:
  - Optional parallelism; identical output for any worker count.

  Implementation-discovered:
  - Seeding per BLOCK (not per worker) is what makes the worker count
    irrelevant: block b always consumes the stream seeded from
    (seed, b), no matter which goroutine picks it up.
  - Blocks write into disjoint ranges of a preallocated slice, so no
    mutex or channel is needed on the result path.

ARCHITECTURE INTEGRATION:
  - Called by: internal/engine/engine.go
  - Uses: internal/yule

ERROR HANDLING:
  - N/A. Sampling cannot fail once the sampler is constructed; invalid
    trial counts return nil.

IMPLEMENTATION RULES:
  - Block size is fixed (1024) and part of the reproducibility contract:
    changing it changes every seeded result.
  - Derived block seeds use a plain affine step; math/rand streams with
    distinct seeds are independent enough for Monte Carlo use here.

USAGE:
  counts := engine.SampleParallel(sampler, seed, trials, workers)

SELF-HEALING INSTRUCTIONS:
  - If a scenario must become cancellable, drain the jobs channel on
    ctx.Done() and return a partial-result error; do NOT reseed mid-block.

RELATED FILES:
  - internal/yule/sampler.go

MAINTENANCE:
  - Never change trialBlockSize or the seed derivation on a whim; both
    silently invalidate recorded seeds.
*/

package engine

import (
	"math/rand"
	"sync"

	"github.com/pbirch/yule-runner/internal/yule"
)

// trialBlockSize is the number of trials per RNG block. Part of the
// reproducibility contract.
const trialBlockSize = 1024

// blockSeed derives the RNG seed for one block of trials.
func blockSeed(seed int64, block int) int64 {
	return seed + int64(block)*17 + 99
}

// SampleParallel runs trials across workers goroutines and returns one count
// per trial. The output is a pure function of (sampler, seed, trials): block
// b always starts at trial b*trialBlockSize and always uses its own RNG
// seeded from blockSeed(seed, b), so any worker count from 1 up produces
// byte-identical results.
func SampleParallel(s *yule.Sampler, seed int64, trials, workers int) []int {
	if trials <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = 1
	}

	counts := make([]int, trials)
	blocks := (trials + trialBlockSize - 1) / trialBlockSize
	if workers > blocks {
		workers = blocks
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for b := range jobs {
				rng := rand.New(rand.NewSource(blockSeed(seed, b)))
				lo := b * trialBlockSize
				hi := min(lo+trialBlockSize, trials)
				for i := lo; i < hi; i++ {
					counts[i] = s.Count(rng)
				}
			}
		}()
	}

	for b := 0; b < blocks; b++ {
		jobs <- b
	}
	close(jobs)
	wg.Wait()

	return counts
}
