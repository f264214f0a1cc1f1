package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/tabsplit/tabsplit/internal/calculator"
	"github.com/tabsplit/tabsplit/internal/client"
	"github.com/tabsplit/tabsplit/internal/config"
	"github.com/tabsplit/tabsplit/internal/export"
	"github.com/tabsplit/tabsplit/internal/models"
	"github.com/tabsplit/tabsplit/internal/tui"
	"github.com/tabsplit/tabsplit/pkg/logging"
)

// billFile is the JSON document the non-interactive subcommands read.
// Assignments is only needed for --type item: one row per item, one
// column per person, counting assigned units.
type billFile struct {
	Items       []models.BillItem `json:"items"`
	Tax         float64           `json:"tax"`
	Assignments [][]int           `json:"assignments,omitempty"`
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "tabsplit",
		Short:         "Split a restaurant bill from your terminal",
		Long:          "tabsplit walks you through splitting a bill: upload a receipt photo or enter items by hand, fix up the parsed items, then split evenly or by item.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runWizard,
	}
	root.AddCommand(splitCmd(), exportCmd())
	return root
}

func runWizard(cmd *cobra.Command, args []string) error {
	cfg := config.Load()

	// The wizard owns the terminal, so logs go to a file or nowhere.
	if cfg.LogFile != "" {
		f, err := logging.SetupFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		logging.Discard()
	}

	_, err := tea.NewProgram(tui.New(cfg), tea.WithAltScreen()).Run()
	return err
}

func splitCmd() *cobra.Command {
	var (
		people    int
		tip       float64
		splitType string
		offline   bool
	)

	cmd := &cobra.Command{
		Use:   "split <bill.json>",
		Short: "Split a bill file without the wizard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup()
			cfg := config.Load()

			bill, err := readBillFile(args[0])
			if err != nil {
				return err
			}

			result, err := splitBill(cmd.Context(), cfg, bill, people, tip, splitType, offline)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().IntVarP(&people, "people", "p", 2, "number of people")
	cmd.Flags().Float64VarP(&tip, "tip", "t", 18, "tip percentage")
	cmd.Flags().StringVar(&splitType, "type", models.SplitTypeEqual, "split strategy: equal or item")
	cmd.Flags().BoolVar(&offline, "offline", false, "compute locally instead of calling the backend")
	return cmd
}

func splitBill(ctx context.Context, cfg config.Config, bill billFile, people int, tipPercent float64, splitType string, offline bool) (models.SplitResult, error) {
	subtotal := calculator.Subtotal(bill.Items)
	tip := calculator.TipAmount(subtotal, bill.Tax, tipPercent)

	switch splitType {
	case models.SplitTypeEqual:
		if offline {
			preview, err := calculator.EqualPreview(bill.Items, bill.Tax, tipPercent, people)
			if err != nil {
				return models.SplitResult{}, err
			}
			return equalResult(preview), nil
		}
		return client.New(cfg.BackendURL, cfg.Timeout).SplitEqual(ctx, models.EqualSplitRequest{
			Items:       bill.Items,
			Tax:         bill.Tax,
			Tip:         tip,
			PeopleCount: people,
			SplitType:   models.SplitTypeEqual,
		})

	case models.SplitTypeItem:
		if len(bill.Assignments) == 0 {
			return models.SplitResult{}, fmt.Errorf("an item split needs an assignments matrix in the bill file")
		}
		if offline {
			preview, err := calculator.ItemPreview(bill.Items, bill.Tax, tipPercent, bill.Assignments, people)
			if err != nil {
				return models.SplitResult{}, err
			}
			return itemResult(preview), nil
		}
		return client.New(cfg.BackendURL, cfg.Timeout).SplitByItem(ctx, models.ItemSplitRequest{
			Items:       bill.Items,
			Tax:         bill.Tax,
			Tip:         tip,
			Assignments: bill.Assignments,
		})

	default:
		return models.SplitResult{}, fmt.Errorf("unknown split type %q (want equal or item)", splitType)
	}
}

func equalResult(preview calculator.EqualSplit) models.SplitResult {
	return models.SplitResult{
		Subtotal:     &preview.Subtotal,
		Tax:          preview.Tax,
		Tip:          preview.TipAmount,
		Total:        preview.Total,
		PerPerson:    &preview.PerPerson,
		TaxPerPerson: preview.TaxPerPerson,
		TipPerPerson: preview.TipPerPerson,
	}
}

func itemResult(preview calculator.ItemSplit) models.SplitResult {
	return models.SplitResult{
		Tax:             preview.Tax,
		Tip:             preview.TipAmount,
		Total:           preview.Total,
		TaxPerPerson:    preview.TaxPerPerson,
		TipPerPerson:    preview.TipPerPerson,
		PersonSubtotals: preview.PersonSubtotals,
		PersonTotals:    preview.PersonTotals,
	}
}

func exportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export <result.json>",
		Short: "Render a split result to PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var result models.SplitResult
			if err := json.Unmarshal(data, &result); err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := export.PDF(f, result); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Saved", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "split.pdf", "output path")
	return cmd
}

func readBillFile(path string) (billFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return billFile{}, err
	}
	var bill billFile
	if err := json.Unmarshal(data, &bill); err != nil {
		return billFile{}, fmt.Errorf("decode %s: %w", path, err)
	}
	for i, item := range bill.Items {
		if item.Quantity < 1 {
			bill.Items[i].Quantity = 1
		}
		if !bill.Items[i].Valid() {
			return billFile{}, fmt.Errorf("item %d (%q) needs a name and a positive price", i, item.Name)
		}
	}
	if len(bill.Items) == 0 {
		return billFile{}, fmt.Errorf("%s has no items", path)
	}
	return bill, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
