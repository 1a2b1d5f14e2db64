package cmd

import (
	"fmt"

	"github.com/tokenized/ballot-engine/cmd/ballot/client"
	"github.com/tokenized/ballot-engine/pkg/identity"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmdGrant = &cobra.Command{
	Use:   "grant <identity>",
	Short: "Grant voting rights to an identity.",
	Long:  "Grant voting rights to an identity. The operator key must be the administrator's.",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Missing identity")
		}

		target, err := identity.DecodeString(args[0])
		if err != nil {
			fmt.Printf("Failed to parse identity : %s\n", err)
			return nil
		}

		ctx := client.Context()

		cl, err := client.NewClient()
		if err != nil {
			return err
		}

		resp, err := cl.Request(ctx, &protocol.GrantRights{Target: target})
		if err != nil {
			return err
		}

		printResponse(resp)
		return nil
	},
}
