package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/plus3/fourline/engine"
	"github.com/plus3/fourline/engine/ruleset"
)

func main() {
	games := flag.Int("games", 1000, "The number of self-play games to run.")
	variant := flag.String("variant", "classic", "The rule variant to play.")
	rulesets := flag.String("rulesets", "", "Path to an HCL rule-set file defining variants.")
	cols := flag.Uint("cols", 0, "Override the number of board columns.")
	rows := flag.Uint("rows", 0, "Override the number of board rows.")
	runLen := flag.Int("run", 0, "Override the run length needed to win.")
	gaps := flag.String("gaps", "", "Override the gap policy: ignore or break.")
	seed := flag.Int64("seed", 1, "Seed for the random move generator.")
	flag.Parse()

	log.Println("Starting self-play stress test...")

	// 1. Resolve the rules: variant file, then per-flag overrides
	rules := engine.Classic()
	if *rulesets != "" {
		variants, err := ruleset.Load(*rulesets)
		if err != nil {
			log.Fatalf("Failed to load rule sets: %v", err)
		}
		r, ok := variants[*variant]
		if !ok {
			log.Fatalf("Variant %q not found in %s", *variant, *rulesets)
		}
		rules = r
	} else if *variant != "classic" {
		log.Fatalf("Variant %q requires -rulesets", *variant)
	}
	if *cols > 0 {
		rules.Cols = uint32(*cols)
	}
	if *rows > 0 {
		rules.Rows = uint32(*rows)
	}
	if *runLen > 0 {
		rules.Run = *runLen
	}
	switch *gaps {
	case "":
	case "ignore":
		rules.Gap = engine.GapIgnore
	case "break":
		rules.Gap = engine.GapBreak
	default:
		log.Fatalf("Unknown gap policy %q", *gaps)
	}

	session, err := engine.NewSession(rules)
	if err != nil {
		log.Fatalf("Invalid rules: %v", err)
	}

	report := &Report{
		Games:   *games,
		Variant: *variant,
		Cols:    rules.Cols,
		Rows:    rules.Rows,
		Run:     rules.Run,
		Gap:     rules.Gap,
		Seed:    *seed,
		MoveTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	// 2. Play the games
	rng := rand.New(rand.NewSource(*seed))

	log.Printf("Playing %d games on a %dx%d board (run %d, gaps %s)...\n",
		*games, rules.Cols, rules.Rows, rules.Run, rules.Gap)

	runtime.ReadMemStats(&report.MemStatsStart)
	startTime := time.Now()

	for game := 0; game < *games; game++ {
		session.Reset()
		for session.Status() == engine.StatusInProgress {
			column := uint32(rng.Intn(int(rules.Cols)))
			moveStart := time.Now()
			if _, err := session.ApplyMove(column); err != nil {
				if errors.Is(err, engine.ErrColumnFull) {
					continue
				}
				log.Fatalf("Game %d: move failed: %v", game, err)
			}
			report.MoveTime.Samples = append(report.MoveTime.Samples, time.Since(moveStart))
			report.TotalMoves++
		}

		switch session.Status() {
		case engine.StatusWon:
			if winner, _ := session.Winner(); winner == engine.Red {
				report.RedWins++
			} else {
				report.BlueWins++
			}
		case engine.StatusDrawn:
			report.Draws++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.MoveTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Self-play finished.")

	// 3. Generate Report to Console
	fmt.Println("\n\n--- Self-Play Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Stress test complete.")
}
