// Package analyze runs the pipeline over a local CSV export.
package analyze

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mbeck/finance-analyzer/cmd/root"
	"mbeck/finance-analyzer/internal/export"
)

// Cmd represents the analyze command
var Cmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a local bank CSV export",
	Long: `Analyze a local DKB or Sparkasse CSV export: detect the dialect, annotate
recurrence, fixed costs and categories, and print the budget summary.
With --output the annotated transactions are written as canonical CSV.`,
	Run: analyzeFunc,
}

func analyzeFunc(cmd *cobra.Command, args []string) {
	logger := root.Logger()

	input := root.SharedFlags.Input
	if input == "" && len(args) > 0 {
		input = args[0]
	}
	if input == "" {
		root.Log.Fatal("No input file given, use --input or pass the file as argument")
	}

	raw, err := os.ReadFile(input)
	if err != nil {
		root.Log.Fatalf("Could not read input file: %v", err)
	}

	result, err := root.BuildPipeline().Process(raw)
	if err != nil {
		root.Log.Fatalf("Analysis failed: %v", err)
	}

	fmt.Printf("Bank:         %s\n", result.BankName)
	fmt.Printf("Transactions: %d", result.Count)
	if result.SkippedRows > 0 {
		fmt.Printf(" (%d rows skipped)", result.SkippedRows)
	}
	fmt.Println()

	metrics := result.Metrics
	if metrics.Error != "" {
		fmt.Printf("Budget:       %s\n", metrics.Error)
	} else if !metrics.Empty {
		fmt.Printf("Income:       %s €\n", metrics.Income.StringFixed(2))
		fmt.Printf("Needs:        %s € (%.1f%%)\n", metrics.Needs.Amount.StringFixed(2), metrics.Needs.Percentage)
		fmt.Printf("Wants:        %s € (%.1f%%)\n", metrics.Wants.Amount.StringFixed(2), metrics.Wants.Percentage)
		fmt.Printf("Savings:      %s € (%.1f%%)\n", metrics.Savings.Amount.StringFixed(2), metrics.Savings.Percentage)
	}

	if result.Metadata.HasBalance() {
		fmt.Printf("Balance:      %s € (%s)\n", result.Metadata.Balance.StringFixed(2), result.Metadata.BalanceLabel)
	}

	if output := root.SharedFlags.Output; output != "" {
		if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
			logger.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
			export.SetDelimiter([]rune(delim)[0])
		}
		if err := export.WriteTransactionsToCSV(result.Transactions, output); err != nil {
			root.Log.Fatalf("Could not write output file: %v", err)
		}
		root.Log.Infof("Annotated transactions written to %s", output)
	}
}
