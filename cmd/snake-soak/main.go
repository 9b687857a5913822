package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"snake-arcade/internal/snake"
	pcore "snake-arcade/pkg/core"
)

type gameResult struct {
	seed      uint64
	score     int
	ticks     int
	cause     snake.Cause
	violation string
}

func main() {
	games := flag.Int("games", 200, "number of games to play")
	grid := flag.Int("grid", 20, "board edge length")
	steps := flag.Int("steps", 20000, "tick limit per game")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	seed := flag.Uint64("seed", 1, "first game seed; seeds logged by snake and snake-term replay the same food")
	explore := flag.Float64("explore", 0.05, "chance of a random safe turn each tick")
	flag.Parse()

	if *grid < snake.MinGridSize {
		fmt.Fprintf(os.Stderr, "grid must be at least %d\n", snake.MinGridSize)
		os.Exit(2)
	}

	fmt.Printf("Playing %d games on %dx%d (%d workers, %d step limit)\n", *games, *grid, *grid, *workers, *steps)

	jobs := make(chan uint64)
	results := make(chan gameResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for s := range jobs {
				results <- playGame(*grid, s, *steps, *explore)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < *games; i++ {
			jobs <- *seed + uint64(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var all []gameResult
	causes := map[snake.Cause]int{}
	failed := 0
	for res := range results {
		all = append(all, res)
		causes[res.cause]++
		if res.violation != "" {
			failed++
			fmt.Printf("seed %d broke an invariant at tick %d: %s\n", res.seed, res.ticks, res.violation)
		}
	}
	elapsed := time.Since(start)

	sort.Slice(all, func(i, j int) bool { return all[i].score > all[j].score })
	fmt.Println(summarize(all, causes, elapsed))
	if failed > 0 {
		os.Exit(1)
	}
}

func playGame(grid int, seed uint64, steps int, explore float64) gameResult {
	s, err := snake.NewSession(grid, pcore.Stream(seed))
	if err != nil {
		return gameResult{seed: seed, violation: err.Error()}
	}
	p := pilot{rng: rand.New(rand.NewPCG(seed, 1)), explore: explore}
	out := gameResult{seed: seed}
	for out.ticks < steps {
		s.SetHeading(p.choose(s))
		res := s.Step()
		out.ticks++
		out.score = res.Score
		if v := checkInvariants(s, res); v != "" {
			out.violation = v
			return out
		}
		if res.Terminal {
			out.cause = res.Cause
			return out
		}
	}
	return out
}

// summarize expects results sorted by descending score.
func summarize(all []gameResult, causes map[snake.Cause]int, elapsed time.Duration) string {
	if len(all) == 0 {
		return "no games played"
	}
	total := 0
	for _, r := range all {
		total += r.score
	}
	median := all[len(all)/2].score
	return fmt.Sprintf("games=%d best=%d (seed %d) median=%d mean=%.1f wall=%d self=%d full=%d unfinished=%d in %s",
		len(all), all[0].score, all[0].seed, median, float64(total)/float64(len(all)),
		causes[snake.CauseWall], causes[snake.CauseSelf], causes[snake.CauseBoardFull], causes[snake.CauseNone],
		elapsed.Truncate(time.Millisecond))
}
