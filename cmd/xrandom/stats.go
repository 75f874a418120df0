package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/cute-angelia/go-xrandom/syntax/ijson"
	"github.com/cute-angelia/go-xrandom/syntax/istat"
	"github.com/cute-angelia/go-xrandom/utils/conf"
)

type bucket struct {
	Value     int     `json:"value"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
}

type statsResult struct {
	Start     int      `json:"start"`
	End       int      `json:"end"`
	Source    string   `json:"source"`
	Trials    int      `json:"trials"`
	Expected  float64  `json:"expected_frequency"`
	ChiSquare float64  `json:"chi_square"`
	Critical  float64  `json:"critical_value"`
	Uniform   bool     `json:"uniform"`
	Buckets   []bucket `json:"buckets"`
}

const defaultStatsCount = 100000

func statsCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [start] [end]",
		Short: "Sample many times and check the result is uniform",
		Long: `stats draws --count integers from [start, end] (100000 unless set by flag, config
or XRANDOM_COUNT), prints the observed frequency of every outcome and runs a chi-squared
goodness-of-fit test at significance 0.001.`,
		Example: `  xrandom stats 1 10 --count 100000`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, log, err := opts.setup(cmd, args, defaultStatsCount)
			if err != nil {
				return err
			}

			h, err := istat.NewHistogram(cfg.Start, cfg.End)
			if err != nil {
				return err
			}
			for i := 0; i < cfg.Count; i++ {
				n, err := s.Int(cfg.Start, cfg.End)
				if err != nil {
					return err
				}
				if err := h.Add(n); err != nil {
					return err
				}
			}

			res := summarize(cfg, h)
			log.Info().
				Int("trials", res.Trials).
				Float64("chi_square", res.ChiSquare).
				Bool("uniform", res.Uniform).
				Msg("stats done")

			if cfg.Format == conf.FormatJSON {
				return ijson.Write(cmd.OutOrStdout(), res, false)
			}
			return printStats(cmd, res)
		},
	}

	cmd.Flags().IntP("count", "n", defaultStatsCount, "number of draws")

	return cmd
}

func summarize(cfg *conf.Config, h *istat.Histogram) statsResult {
	res := statsResult{
		Start:     h.Start(),
		End:       h.End(),
		Source:    cfg.Source,
		Trials:    h.Total(),
		Expected:  1 / float64(h.Outcomes()),
		ChiSquare: istat.ChiSquare(h),
		Critical:  istat.CriticalValue(h.Outcomes() - 1),
		Uniform:   istat.Uniform(h),
		Buckets:   make([]bucket, 0, h.Outcomes()),
	}
	h.Range(func(n, count int) bool {
		res.Buckets = append(res.Buckets, bucket{Value: n, Count: count, Frequency: h.Frequency(n)})
		return true
	})
	return res
}

func printStats(cmd *cobra.Command, res statsResult) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(w, "range [%d, %d]\ttrials %s\tsource %s\t\n",
		res.Start, res.End, humanize.Comma(int64(res.Trials)), res.Source)
	fmt.Fprintln(w, "value\tcount\tfrequency\t")
	for _, b := range res.Buckets {
		fmt.Fprintf(w, "%d\t%s\t%.4f\t\n", b.Value, humanize.Comma(int64(b.Count)), b.Frequency)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	verdict := "uniform"
	if !res.Uniform {
		verdict = "NOT uniform"
	}
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "chi-square %.3f (critical %.3f, df %d, expected frequency %.4f): %s\n",
		res.ChiSquare, res.Critical, len(res.Buckets)-1, res.Expected, verdict)
	return err
}
