package main

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"mySmartMarket/business/textnorm"
)

var normalizeMode string

var normalizeCmd = &cobra.Command{
	Use:   "normalize [text...]",
	Short: "Normalize Indonesian text",
	Long: `Run text through the normalization pipeline and print one result per line.
Without arguments, lines are read from standard input.`,
	Example: `  smartmarket normalize --mode catalog "Jam Tangan Pria KW"
  cat reviews.txt | smartmarket normalize --mode review`,
	RunE: runNormalize,
}

func init() {
	normalizeCmd.Flags().StringVarP(&normalizeMode, "mode", "m", "catalog", "normalization mode: catalog or review")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	mode, ok := textnorm.ParseMode(normalizeMode)
	if !ok {
		return fmt.Errorf("unknown mode %q (want catalog or review)", normalizeMode)
	}

	out := cmd.OutOrStdout()

	if len(args) > 0 {
		for _, text := range args {
			fmt.Fprintln(out, normalizer.Normalize(text, mode))
		}
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		fmt.Fprintln(out, normalizer.Normalize(scanner.Text(), mode))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	return nil
}
