package cmd

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/tokenized/ballot-engine/pkg/wallet"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

const (
	FlagCount = "count"
	FlagSeed  = "seed"
)

var cmdKeygen = &cobra.Command{
	Use:   "keygen",
	Short: "Generate keys and their identities.",
	Long: "Generate keys and their identities. With a count above one the keys are " +
		"derived from a seed, so the same batch can be reissued from the seed alone.",
	RunE: func(c *cobra.Command, args []string) error {
		count, _ := c.Flags().GetInt(FlagCount)
		if count < 1 {
			return errors.New("Count must be at least 1")
		}

		if count == 1 {
			key, err := wallet.GenerateKey()
			if err != nil {
				return err
			}

			printKey(key)
			return nil
		}

		seedStr, _ := c.Flags().GetString(FlagSeed)

		var seed []byte
		if len(seedStr) > 0 {
			var err error
			seed, err = hex.DecodeString(seedStr)
			if err != nil {
				fmt.Printf("Failed to parse seed : %s\n", err)
				return nil
			}
		} else {
			seed = make([]byte, 32)
			if _, err := rand.Read(seed); err != nil {
				return err
			}
		}

		keys, err := wallet.DeriveKeys(seed, count)
		if err != nil {
			return err
		}

		fmt.Printf("Seed : %x\n", seed)
		for _, key := range keys {
			printKey(key)
		}

		return nil
	},
}

func printKey(key *wallet.Key) {
	fmt.Printf("Key : %s\nIdentity : %s\n", key.SecretStr(), key.ID)
}

func init() {
	cmdKeygen.Flags().Int(FlagCount, 1, "number of keys to generate")
	cmdKeygen.Flags().String(FlagSeed, "", "hex seed to derive a batch from")
}
