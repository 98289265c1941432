package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"mySmartMarket/business/review"
	"mySmartMarket/domain"
)

var (
	summarizeProduct     uint64
	summarizeCategory    uint64
	summarizeAll         bool
	summarizeFile        string
	summarizeConcurrency int
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize product reviews with LexRank",
	Long: `Summarize the reviews of one product, one category, every product in the
catalog, or a local file holding one review per line ("-" reads standard input).`,
	Example: `  smartmarket summarize --product 42
  smartmarket summarize --category 3
  smartmarket summarize --all --concurrency 8
  smartmarket summarize --file reviews.txt`,
	RunE: runSummarize,
}

func init() {
	summarizeCmd.Flags().Uint64VarP(&summarizeProduct, "product", "p", 0, "summarize the reviews of this product")
	summarizeCmd.Flags().Uint64VarP(&summarizeCategory, "category", "c", 0, "summarize the reviews of this category")
	summarizeCmd.Flags().BoolVar(&summarizeAll, "all", false, "summarize every product in the catalog")
	summarizeCmd.Flags().StringVarP(&summarizeFile, "file", "f", "", "summarize reviews read from a file, one per line")
	summarizeCmd.Flags().IntVar(&summarizeConcurrency, "concurrency", 4, "products summarized in parallel with --all")

	summarizeCmd.MarkFlagsMutuallyExclusive("product", "category", "all", "file")
}

func runSummarize(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	switch {
	case summarizeFile != "":
		return summarizeFromFile(cmd, summarizeFile)
	case summarizeAll:
		return summarizeCatalog(cmd)
	case summarizeProduct != 0:
		svc, err := reviewService()
		if err != nil {
			return err
		}
		s, err := svc.SummarizeProduct(cmd.Context(), summarizeProduct)
		if err != nil {
			return fmt.Errorf("summarize product %d: %w", summarizeProduct, err)
		}
		fmt.Fprintln(out, s.Summary)
		return nil
	case summarizeCategory != 0:
		svc, err := reviewService()
		if err != nil {
			return err
		}
		s, err := svc.SummarizeCategory(cmd.Context(), summarizeCategory)
		if err != nil {
			return fmt.Errorf("summarize category %d: %w", summarizeCategory, err)
		}
		fmt.Fprintln(out, s.Summary)
		return nil
	default:
		return errors.New("one of --product, --category, --all or --file is required")
	}
}

func summarizeFromFile(cmd *cobra.Command, path string) error {
	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		in = f
	}

	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	if len(lines) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), review.NoReviewsMessage)
		return nil
	}
	texts := review.FilterUsable(lines)
	if len(texts) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), review.UnusableMessage)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), newSummarizer().Summarize(texts))
	return nil
}

func summarizeCatalog(cmd *cobra.Command) error {
	if summarizeConcurrency < 1 {
		return fmt.Errorf("--concurrency must be at least 1, got %d", summarizeConcurrency)
	}

	products, err := productService()
	if err != nil {
		return err
	}
	reviews, err := reviewService()
	if err != nil {
		return err
	}

	catalog, err := products.GetAllProducts(cmd.Context())
	if err != nil {
		return fmt.Errorf("list products: %w", err)
	}

	results := make([]domain.ReviewSummary, len(catalog))

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(summarizeConcurrency)
	for i, p := range catalog {
		g.Go(func() error {
			s, err := reviews.SummarizeProduct(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("summarize product %d: %w", p.ID, err)
			}
			results[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, s := range results {
		fmt.Fprintf(out, "%d\t%s\t%s\n", catalog[i].ID, catalog[i].Name, s.Summary)
	}

	return nil
}
