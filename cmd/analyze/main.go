// Command analyze runs one analysis over a CSV statement and prints the
// aggregate tables and the summary text.
//
//	analyze -file statement.csv -from 2023-11-01 -to 2023-11-30 -direction paid_out -isolate tesco,starbucks
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"statement-analyzer/internal/config"
	"statement-analyzer/internal/dto"
	"statement-analyzer/internal/models"
	"statement-analyzer/internal/services"
	"statement-analyzer/internal/validation"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "analyze:", err)
		}
		os.Exit(2)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	var (
		file      = fs.String("file", "", "CSV statement with a Date,Details,Amount header (required)")
		from      = fs.String("from", "", "start date, YYYY-MM-DD")
		to        = fs.String("to", "", "end date, YYYY-MM-DD")
		direction = fs.String("direction", "", "paid_in, paid_out or both, comma separated")
		isolate   = fs.String("isolate", "", "keep only details containing one of these comma separated keywords")
		remove    = fs.String("remove", "", "drop details containing one of these comma separated keywords")
		minAmount = fs.String("min", "", "exclusive lower amount bound")
		maxAmount = fs.String("max", "", "exclusive upper amount bound")
		maxList   = fs.Int("max-list", cfg.Analysis.DefaultMaxList, "rows per top table")
		savings   = fs.String("savings", "", "comma separated keywords identifying savings transfers")
		chart     = fs.String("chart", string(models.ChartTypeBar), "chart type: bar, funnel, line or bubble")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		fs.Usage()
		return errors.New("-file is required")
	}

	req := dto.AnalysisRequest{
		StartDate:  *from,
		EndDate:    *to,
		Directions: splitDirections(*direction),
		Isolate:    *isolate,
		Remove:     *remove,
		MinAmount:  *minAmount,
		MaxAmount:  *maxAmount,
		ChartType:  *chart,
		MaxList:    *maxList,
		Savings:    *savings,
	}
	if err := validation.GetValidator().Struct(req); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	criteria, err := req.ToCriteria(cfg.Analysis.DefaultMaxList)
	if err != nil {
		return err
	}

	content, err := os.ReadFile(*file)
	if err != nil {
		return err
	}

	ledger, err := services.NewLedgerLoader(nil).Load(ctx, filepath.Base(*file), content)
	if err != nil {
		return err
	}

	formatter := services.NewReportFormatter(services.NumberFormat{
		DecimalSeparator: cfg.Analysis.DecimalSeparator,
		GroupSeparator:   cfg.Analysis.GroupSeparator,
	})
	result, err := services.NewAnalysisService(services.NewAggregationService(), formatter, nil).Analyze(ledger, criteria)
	if err != nil {
		return err
	}

	return printResult(out, result)
}

// splitDirections maps "both" to the two directions, which the filters treat
// like no selection
func splitDirections(raw string) []string {
	var directions []string
	for _, d := range strings.Split(raw, ",") {
		switch d = strings.TrimSpace(d); d {
		case "":
		case "both":
			directions = append(directions, string(models.DirectionIncoming), string(models.DirectionOutgoing))
		default:
			directions = append(directions, d)
		}
	}
	return directions
}

func printResult(out io.Writer, result *models.AnalysisResult) error {
	tables := services.ProjectTables(result)

	fmt.Fprintf(out, "%d transactions, %d in date range, %d after filters (%s chart)\n\n",
		result.LedgerCount, result.DateFilteredCount, result.FilteredCount, result.Chart.Type)

	for _, table := range []models.Table{tables.TopRepeat, tables.TopSingleIncoming, tables.TopSingleOutgoing} {
		if err := printTable(out, table); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(out, result.Report.Text)
	return err
}

func printTable(out io.Writer, table models.Table) error {
	fmt.Fprintln(out, table.Title)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join(table.Columns, "\t")+"\t")
	for _, row := range table.Rows {
		fmt.Fprintln(w, strings.Join(row, "\t")+"\t")
	}
	if len(table.Rows) == 0 {
		fmt.Fprintln(w, "(none)\t")
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(out)
	return err
}
