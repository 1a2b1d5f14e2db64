package cmd

import (
	"github.com/tokenized/ballot-engine/cmd/ballot/client"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/spf13/cobra"
)

var cmdTally = &cobra.Command{
	Use:   "tally",
	Short: "Show the proposal currently in the lead.",
	RunE: func(c *cobra.Command, args []string) error {
		ctx := client.Context()

		cl, err := client.NewClient()
		if err != nil {
			return err
		}

		resp, err := cl.Request(ctx, &protocol.LeadingProposal{})
		if err != nil {
			return err
		}

		printResponse(resp)
		return nil
	},
}
