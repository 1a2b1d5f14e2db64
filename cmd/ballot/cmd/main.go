package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/tokenized/ballot-engine/pkg/protocol"

	"github.com/spf13/cobra"
)

var ballotCmd = &cobra.Command{
	Use:   "ballot",
	Short: "Ballot Engine CLI",
}

func Execute() {
	ballotCmd.AddCommand(cmdKeygen)
	ballotCmd.AddCommand(cmdGrant)
	ballotCmd.AddCommand(cmdCast)
	ballotCmd.AddCommand(cmdTally)
	ballotCmd.AddCommand(cmdWinner)
	ballotCmd.AddCommand(cmdStatus)
	ballotCmd.AddCommand(cmdState)
	ballotCmd.Execute()
}

// dumpJSON prints a value as indented JSON.
func dumpJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}

	fmt.Printf("%s\n", b)
	return nil
}

// printResponse prints a daemon response for the operator.
func printResponse(resp protocol.Response) {
	switch m := resp.(type) {
	case *protocol.Acknowledgement:
		fmt.Printf("Acknowledged opcode %02x at %s\n", m.Opcode, m.Timestamp.String())

	case *protocol.Rejection:
		fmt.Printf("Rejected : %s (code %d)\n", m.Message, m.RejectionCode)

	case *protocol.TallyResult:
		fmt.Printf("Leading proposal %d %q with %d votes\n",
			m.Index, m.Label.String(), m.VoteCount)

	case *protocol.WinnerResult:
		fmt.Printf("Winner %q\n", m.Label.String())

	case *protocol.StatusResult:
		fmt.Printf("Weight %d, voted %t", m.Weight, m.Voted)
		if m.Voted {
			fmt.Printf(", for proposal %d", m.Vote)
		}
		fmt.Printf("\n")

	default:
		fmt.Printf("Unexpected response %s\n", resp.Type())
	}
}
