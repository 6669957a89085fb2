package main

import (
	"fmt"
	"io"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Policy   string
	MaxTicks int

	// Results
	Games      int
	Capped     int
	TotalTicks int64
	TotalTime  time.Duration
	GameTime   Stats

	MinScore   int
	MaxScore   int
	TotalScore int

	Landings int
	Perfect  int
	Misses   int

	Callbacks     int64
	TotalCallback time.Duration
	MaxCallback   time.Duration
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
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
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) add(g gameResult) {
	if r.Games == 0 || g.Score < r.MinScore {
		r.MinScore = g.Score
	}
	r.MaxScore = max(r.MaxScore, g.Score)
	r.TotalScore += g.Score
	r.Games++
	if g.Capped {
		r.Capped++
	}
	r.TotalTicks += g.Ticks

	for _, l := range g.Landings {
		r.Landings++
		switch {
		case l.Miss:
			r.Misses++
		case l.Perfect():
			r.Perfect++
		}
	}

	r.Callbacks += g.Clock.Callbacks
	r.TotalCallback += g.Clock.TotalDuration
	r.MaxCallback = max(r.MaxCallback, g.Clock.MaxDuration)
}

func (r *Report) AvgScore() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.TotalScore) / float64(r.Games)
}

func (r *Report) PerfectRate() float64 {
	if r.Landings == 0 {
		return 0
	}
	return float64(r.Perfect) / float64(r.Landings)
}

func (r *Report) AvgCallback() time.Duration {
	if r.Callbacks == 0 {
		return 0
	}
	return r.TotalCallback / time.Duration(r.Callbacks)
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Stacker Simulation Report

## Configuration
- **Policy:** {{.Policy}}
- **Tick Cap Per Game:** {{if .MaxTicks}}{{.MaxTicks}}{{else}}none{{end}}

## Games
- **Games Played:** {{.Games}} ({{.Capped}} capped)
- **Score:** min {{.MinScore}} / avg {{printf "%.2f" .AvgScore}} / max {{.MaxScore}}
- **Landings:** {{.Landings}} ({{.Perfect}} perfect, {{pct .PerfectRate}}; {{.Misses}} missed)

## Performance
- **Total Ticks:** {{.TotalTicks}}
- **Total Time:** {{.TotalTime}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}
- **Tick Callback:** avg {{.AvgCallback}} / max {{.MaxCallback}}
`

	fm := template.FuncMap{
		"pct": func(v float64) string {
			return fmt.Sprintf("%.1f%%", v*100)
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
