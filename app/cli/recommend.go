package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	recommendProduct uint64
	recommendK       int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "List the products most similar to a product",
	Example: `  smartmarket recommend --product 42
  smartmarket recommend --product 42 --k 10`,
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().Uint64VarP(&recommendProduct, "product", "p", 0, "target product id (required)")
	recommendCmd.Flags().IntVar(&recommendK, "k", 0, "number of recommendations (0 uses the configured default)")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	if recommendProduct == 0 {
		return errors.New("--product is required")
	}

	svc, err := productService()
	if err != nil {
		return err
	}

	recs, err := svc.GetRecommendations(cmd.Context(), recommendProduct, recommendK)
	if err != nil {
		return fmt.Errorf("recommend for product %d: %w", recommendProduct, err)
	}

	if len(recs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recommendations.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tID\tSCORE\tNAME")
	for i, r := range recs {
		fmt.Fprintf(w, "%d\t%d\t%.4f\t%s\n", i+1, r.ID, r.SimilarityScore, r.Name)
	}
	return w.Flush()
}
