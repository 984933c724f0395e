// Command generate-csv writes a synthetic statement in the layout accepted by
// the analyzer: shop and ATM repeat payments mixed with one-off payments to
// people.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"statement-analyzer/internal/models"
	"statement-analyzer/internal/services"

	"github.com/joho/godotenv"
)

const (
	defaultCount = 600
	defaultDays  = 180
)

func main() {
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout, time.Now()); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("Failed to generate statement", "error", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer, now time.Time) error {
	fs := flag.NewFlagSet("generate-csv", flag.ContinueOnError)
	var (
		out   = fs.String("out", "", "output file (default stdout)")
		count = fs.Int("count", defaultCount, "number of transactions")
		days  = fs.Int("days", defaultDays, "days of history ending today")
		seed  = fs.Uint64("seed", 0, "random seed, 0 for a random statement")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *count < 0 || *days < 1 {
		return fmt.Errorf("count must be >= 0 and days >= 1, got %d and %d", *count, *days)
	}

	endDate := models.CalendarDate(now)
	startDate := endDate.AddDate(0, 0, -*days)
	ledger := services.NewTransactionGenerator(*seed).GenerateLedger(startDate, endDate, *count)

	w := stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := services.WriteLedgerCSV(w, ledger); err != nil {
		return err
	}

	if *out != "" {
		slog.Info("Statement written", "path", *out, "rows", len(ledger), "from", startDate.Format("2006-01-02"), "to", endDate.Format("2006-01-02"))
	}
	return nil
}
