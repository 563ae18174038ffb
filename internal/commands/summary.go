package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/splitdue-dev/splitdue/internal/export"
	"github.com/splitdue-dev/splitdue/internal/model"
	"github.com/splitdue-dev/splitdue/internal/recon"
)

func newSummaryCommand() *cobra.Command {
	var (
		dir     string
		file    string
		person  string
		start   string
		paidOn  string
		formats string
		outDir  string
	)

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Compute how much the person owes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runSummary(cmd, summaryParams{
				dir:     absDir,
				file:    file,
				person:  person,
				start:   start,
				paidOn:  paidOn,
				formats: formats,
				outDir:  outDir,
			})
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "data directory")
	cmd.Flags().StringVarP(&file, "file", "f", "", "transaction CSV (name in the transactions dir, or a path)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVarP(&person, "person", "p", "", "counterparty name (default from config)")
	cmd.Flags().StringVar(&start, "start", "", "count from this date, inclusive (YYYY-MM-DD)")
	cmd.Flags().StringVar(&paidOn, "paid-on", "", "most recent settled payment date (YYYY-MM-DD); counting starts the next day")
	cmd.Flags().StringVar(&formats, "export", "", "comma-separated export formats: csv,json,md,xlsx,pdf")
	cmd.Flags().StringVar(&outDir, "outdir", "", "export directory (default from config)")

	return cmd
}

type summaryParams struct {
	dir     string
	file    string
	person  string
	start   string
	paidOn  string
	formats string
	outDir  string
}

func runSummary(cmd *cobra.Command, p summaryParams) error {
	cfg, err := loadConfig(p.dir)
	if err != nil {
		return err
	}

	person := p.person
	if person == "" {
		person = cfg.Person
	}
	if person == "" {
		return fmt.Errorf("no person given: pass --person or set it in %s", "splitdue.yaml")
	}

	var ratio *decimal.Decimal
	if cfg.SplitRatio != "" {
		r, err := cfg.Ratio()
		if err != nil {
			return err
		}
		ratio = &r
	}

	csvPath := p.file
	if _, statErr := os.Stat(csvPath); statErr != nil {
		csvPath = filepath.Join(p.dir, cfg.TransactionsDir, p.file)
	}

	summary, err := recon.SummarizeFile(csvPath, recon.Options{
		Person:     person,
		Start:      p.start,
		PaidOn:     p.paidOn,
		SplitRatio: ratio,
	})
	if err != nil {
		return err
	}

	printSummary(cmd, summary)

	formats := splitFormats(p.formats)
	if len(formats) == 0 {
		formats = cfg.Export.Formats
	}
	if len(formats) == 0 {
		return nil
	}

	outDir := p.outDir
	if outDir == "" {
		outDir = filepath.Join(p.dir, cfg.Export.OutDir)
	}
	base := strings.TrimSuffix(filepath.Base(csvPath), filepath.Ext(csvPath))
	return writeExports(cmd, summary, formats, outDir, base)
}

func printSummary(cmd *cobra.Command, s model.Summary) {
	cmd.Println("=== SUMMARY ===")
	if s.Cutoff != nil {
		cmd.Printf("Counting from: %s\n", s.CutoffString())
	}
	cmd.Printf("Total shared (note amount wins): %s\n", fmtMoney(s.TotalShared))
	cmd.Printf("Total paid by %s: %s\n", s.Person, fmtMoney(s.TotalPaid))
	cmd.Printf("Remaining owed by %s: %s\n", s.Person, fmtMoney(s.Remaining))

	if len(s.SharedRows) > 0 {
		cmd.Println("\n--- Shared rows ---")
		for _, r := range s.SharedRows {
			cmd.Printf("%s | %s | %s | amount: %s | share: %s | reason: %s\n",
				r.Date, r.Category, r.Note, r.Amount, r.Share, r.Reason)
		}
	}
	if len(s.AppliedPayments) > 0 {
		cmd.Println("\n--- Payments applied to this period ---")
		for _, r := range s.AppliedPayments {
			cmd.Printf("%s | %s | %s | amount: %s\n", r.Date, r.Category, r.Note, r.Amount)
		}
	}
	if len(s.UnappliedPayments) > 0 {
		cmd.Println("\n--- Payments before the cutoff (not applied) ---")
		for _, r := range s.UnappliedPayments {
			cmd.Printf("%s | %s | %s | amount: %s\n", r.Date, r.Category, r.Note, r.Amount)
		}
	}
}

func writeExports(cmd *cobra.Command, s model.Summary, formats []string, outDir, base string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating export dir: %w", err)
	}

	registry := export.DefaultRegistry()
	for _, format := range formats {
		r := registry.Get(format)
		if r == nil {
			fmt.Fprintf(os.Stderr, "warning: unknown export format %q, skipping\n", format)
			continue
		}

		path := filepath.Join(outDir, export.FileName(base, s.Person, r.Ext()))
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating %s: %w", path, err)
		}
		if err := r.Render(f, s); err != nil {
			f.Close()
			return fmt.Errorf("rendering %s: %w", format, err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("closing %s: %w", path, err)
		}
		cmd.Printf("Exported %s -> %s\n", format, path)
	}
	return nil
}

func splitFormats(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(strings.ToLower(part)); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// fmtMoney renders a whole-unit amount with dot-grouped thousands, the
// display convention of the wallet app the exports come from.
func fmtMoney(d decimal.Decimal) string {
	s := d.RoundBank(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var groups []string
	for len(s) > 3 {
		groups = append([]string{s[len(s)-3:]}, groups...)
		s = s[:len(s)-3]
	}
	groups = append([]string{s}, groups...)
	out := strings.Join(groups, ".")
	if neg {
		out = "-" + out
	}
	return out
}
