package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cute-angelia/go-xrandom/syntax/ijson"
	"github.com/cute-angelia/go-xrandom/utils/ibininfo"
)

func versionCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := ibininfo.Get()
			if asJSON {
				return ijson.Write(cmd.OutOrStdout(), info, true)
			}
			_, err := fmt.Fprint(cmd.OutOrStdout(), info.String())
			return err
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}
