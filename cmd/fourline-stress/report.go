package main

import (
	"fmt"
	"io"
	"runtime"
	"slices"
	"text/template"
	"time"

	"github.com/plus3/fourline/engine"
)

type Report struct {
	// Configuration
	Games   int
	Variant string
	Cols    uint32
	Rows    uint32
	Run     int
	Gap     engine.GapPolicy
	Seed    int64

	// Results
	RedWins       int
	BlueWins      int
	Draws         int
	TotalMoves    int64
	TotalTime     time.Duration
	MoveTime      Stats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	P95     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))

	sorted := slices.Clone(s.Samples)
	slices.Sort(sorted)
	s.P95 = sorted[len(sorted)*95/100]
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Self-Play Stress Report

## Test Configuration
- **Games:** {{.Games}}
- **Variant:** {{.Variant}}
- **Board:** {{.Cols}}x{{.Rows}}
- **Run Length:** {{.Run}}
- **Gap Policy:** {{.Gap}}
- **Seed:** {{.Seed}}

## Outcomes
- **Red Wins:** {{.RedWins}}
- **Blue Wins:** {{.BlueWins}}
- **Draws:** {{.Draws}}
- **Total Moves:** {{.TotalMoves}}
- **Total Test Time:** {{.TotalTime}}
- **Move Time:**
  - **Avg:** {{.MoveTime.Avg}}
  - **P95:** {{.MoveTime.P95}}
  - **Min:** {{.MoveTime.Min}}
  - **Max:** {{.MoveTime.Max}}

## Memory Usage
- Heap Alloc (MB):  {{mb .MemStatsStart.HeapAlloc}} (start) -> {{mb .MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}} bytes
- Total Alloc (MB): {{mb .MemStatsStart.TotalAlloc}} (start) -> {{mb .MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} bytes
- Num GC:           {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"mb": func(v any) string {
			switch val := v.(type) {
			case uint64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			case int64:
				return fmt.Sprintf("%.2f", float64(val)/1024/1024)
			default:
				return "N/A"
			}
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
