package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"text/tabwriter"
	"time"

	"github.com/osse101/CaseForge_Go/internal/logger"
	"github.com/osse101/CaseForge_Go/internal/simulation"
)

func main() {
	draws := flag.Int("n", simulation.DefaultDraws, "Draws per run")
	runs := flag.Int("runs", simulation.DefaultRuns, "Number of independent runs")
	chance := flag.Float64("chance", simulation.DefaultChance, "Upgrade success chance in percent")
	seed := flag.Uint64("seed", 0, "Base seed (0 picks one from the clock)")
	asJSON := flag.Bool("json", false, "Print the report as JSON")
	logLevel := flag.String("log-level", "warn", "Log level")
	flag.Parse()

	logger.InitLogger(logger.NewConfig(*logLevel, "text", "caseforge-simulate", "", "", false))

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := simulation.Run(ctx, simulation.Params{
		Draws:  *draws,
		Runs:   *runs,
		Chance: *chance,
		Seed:   *seed,
	})
	if err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			log.Fatalf("Failed to encode report: %v", err)
		}
		return
	}

	if err := printReport(os.Stdout, report); err != nil {
		log.Fatalf("Failed to print report: %v", err)
	}
	if report.ArcViolations > 0 {
		os.Exit(1)
	}
}

func printReport(out io.Writer, r *simulation.Report) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "draws\t%d x %d runs (seed %d)\n\n", r.Params.Draws, r.Params.Runs, r.Params.Seed)

	fmt.Fprintln(w, "tier\tcount\tobserved\texpected")
	for _, t := range r.Tiers {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.4f\n", t.Rarity, t.Count, t.Observed, t.Expected)
	}

	fmt.Fprintf(w, "\nupgrade @ %.2f%%\twin rate %.4f\n", r.Params.Chance, r.WinRate)
	s := r.WinRateByRun
	fmt.Fprintf(w, "per run\tp50 %.4f\tp90 %.4f\tp99 %.4f\n", s.P50, s.P90, s.P99)
	fmt.Fprintf(w, "arc violations\t%d\n", r.ArcViolations)

	b := r.DailyBonus
	fmt.Fprintf(w, "\ndaily bonus\tmean %.2f\tmin %.0f\tmax %.0f\n", b.Mean, b.Min, b.Max)

	return w.Flush()
}
