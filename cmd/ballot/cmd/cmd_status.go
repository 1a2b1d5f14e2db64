package cmd

import (
	"fmt"

	"github.com/tokenized/ballot-engine/cmd/ballot/client"
	"github.com/tokenized/ballot-engine/pkg/identity"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/spf13/cobra"
)

var cmdStatus = &cobra.Command{
	Use:   "status [identity]",
	Short: "Show the participant record held for an identity.",
	Long: "Show the participant record held for an identity. Without an argument the " +
		"operator key's own identity is queried.",
	RunE: func(c *cobra.Command, args []string) error {
		ctx := client.Context()

		cl, err := client.NewClient()
		if err != nil {
			return err
		}

		id := cl.Identity()
		if len(args) > 0 {
			id, err = identity.DecodeString(args[0])
			if err != nil {
				fmt.Printf("Failed to parse identity : %s\n", err)
				return nil
			}
		}

		resp, err := cl.Request(ctx, &protocol.ParticipantStatus{ID: id})
		if err != nil {
			return err
		}

		fmt.Printf("Identity %s\n", id)
		printResponse(resp)
		return nil
	},
}
