package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/MikeSquared-Agency/Decide/internal/config"
	"github.com/MikeSquared-Agency/Decide/internal/ingest"
	"github.com/MikeSquared-Agency/Decide/internal/mcda"
)

func rankCmd() *cobra.Command {
	var (
		workbookPath string
		weights      []string
	)
	cmd := &cobra.Command{
		Use:   "rank --workbook <file.xlsx>",
		Short: "Score the alternatives in a workbook and print the ranking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			reg, err := cfg.Registry()
			if err != nil {
				return err
			}
			ev := mcda.NewEvaluator(reg, cfg.WeightPolicy())

			f, err := os.Open(workbookPath)
			if err != nil {
				return fmt.Errorf("open workbook: %w", err)
			}
			defer f.Close()

			return rank(cmd.OutOrStdout(), ev, f, weights)
		},
	}
	cmd.Flags().StringVarP(&workbookPath, "workbook", "w", "", "path to the .xlsx workbook")
	cmd.Flags().StringSliceVar(&weights, "weights", nil, "criterion weights in registry order, when the workbook has none")
	_ = cmd.MarkFlagRequired("workbook")
	return cmd
}

// rank reads a workbook, evaluates it and writes the ranking as a table.
// Weights given on the command line override the workbook's own.
func rank(out io.Writer, ev *mcda.Evaluator, r io.Reader, weights []string) error {
	wb, err := ingest.ReadWorkbook(r, ev.Registry())
	if err != nil {
		return err
	}

	in := wb.Input()
	if len(weights) > 0 {
		in.Weights = mcda.TextCells(weights)
	}

	report, err := ev.Evaluate(in)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tALTERNATIVE\tTOPSIS\tSAW\tD+\tD-")
	for _, row := range report.Ranking {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.4f\t%.4f\n",
			row.Rank, row.Name, row.Score, row.SAWValue, row.DPos, row.DNeg)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	winner := report.Winner()
	_, err = fmt.Fprintf(out, "\nbest alternative: %s (%.4f)\n", winner.Name, winner.Score)
	return err
}
