package cmd

import (
	"bytes"
	"fmt"

	"github.com/tokenized/ballot-engine/cmd/ballotd/bootstrap"
	"github.com/tokenized/ballot-engine/internal/election"
	"github.com/tokenized/ballot-engine/internal/platform/db"
	"github.com/tokenized/ballot-engine/internal/platform/state"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	FlagVerbose = "verbose"
)

var cmdState = &cobra.Command{
	Use:   "state",
	Short: "Load and print the stored election document.",
	Long:  "Load and print the stored election document directly from storage, without the daemon.",
	RunE: func(c *cobra.Command, args []string) error {
		ctx := bootstrap.NewContextWithDevelopmentLogger()

		cfg := bootstrap.NewConfigFromEnv(ctx)

		masterDB := bootstrap.NewMasterDB(ctx, cfg)
		defer masterDB.Close()

		data, err := masterDB.Fetch(ctx, election.StorageKey)
		if err != nil {
			if errors.Cause(err) == db.ErrNotFound {
				fmt.Printf("No election document stored\n")
				return nil
			}
			return err
		}

		var e state.Election
		if err := e.Deserialize(bytes.NewBuffer(data)); err != nil {
			return err
		}

		verbose, _ := c.Flags().GetBool(FlagVerbose)
		if verbose {
			spew.Dump(e)
			return nil
		}

		return dumpJSON(&e)
	},
}

func init() {
	cmdState.Flags().Bool(FlagVerbose, false, "dump with full type detail")
}
