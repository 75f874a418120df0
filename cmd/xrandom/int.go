package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cute-angelia/go-xrandom/syntax/ijson"
	"github.com/cute-angelia/go-xrandom/utils/conf"
)

type intResult struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Source string `json:"source"`
	Values []int  `json:"values"`
}

func intCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "int [start] [end]",
		Short: "Print random integers from [start, end]",
		Example: `  xrandom int 1 6
  xrandom int --count 5 --format json -- -3 3`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, s, log, err := opts.setup(cmd, args, 1)
			if err != nil {
				return err
			}

			values, err := s.Ints(cfg.Start, cfg.End, cfg.Count)
			if err != nil {
				return err
			}
			log.Debug().Int("count", len(values)).Msg("sampled")

			out := cmd.OutOrStdout()
			if cfg.Format == conf.FormatJSON {
				return ijson.Write(out, intResult{
					Start:  cfg.Start,
					End:    cfg.End,
					Source: cfg.Source,
					Values: values,
				}, false)
			}
			for _, n := range values {
				if _, err := fmt.Fprintln(out, n); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntP("count", "n", 1, "how many integers to draw")

	return cmd
}
