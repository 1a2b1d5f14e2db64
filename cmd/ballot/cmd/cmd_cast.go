package cmd

import (
	"fmt"
	"strconv"

	"github.com/tokenized/ballot-engine/cmd/ballot/client"
	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var cmdCast = &cobra.Command{
	Use:   "cast <index>",
	Short: "Cast a ballot for the proposal at an index.",
	Long:  "Cast a ballot for the proposal at an index. A ballot is final.",
	RunE: func(c *cobra.Command, args []string) error {
		if len(args) != 1 {
			return errors.New("Missing proposal index")
		}

		index, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			fmt.Printf("Failed to parse index : %s\n", err)
			return nil
		}

		ctx := client.Context()

		cl, err := client.NewClient()
		if err != nil {
			return err
		}

		resp, err := cl.Request(ctx, &protocol.BallotCast{Index: uint32(index)})
		if err != nil {
			return err
		}

		printResponse(resp)
		return nil
	},
}
