package main

import (
	"github.com/tokenized/ballot-engine/cmd/ballot/cmd"
)

// Ballot Engine CLI
//
func main() {
	cmd.Execute()
}
