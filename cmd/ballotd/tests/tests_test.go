package tests

import (
	"context"
	"os"
	"testing"

	"github.com/tokenized/ballot-engine/cmd/ballotd/handlers"
	"github.com/tokenized/ballot-engine/internal/election"
	"github.com/tokenized/ballot-engine/internal/platform/node"
	"github.com/tokenized/ballot-engine/internal/platform/tests"
	"github.com/tokenized/ballot-engine/pkg/identity"
	"github.com/tokenized/ballot-engine/pkg/protocol"
	"github.com/tokenized/ballot-engine/pkg/wallet"

	"github.com/pkg/errors"
)

var a *node.App
var test *tests.Test

// responses captured from the last triggered instruction.
var responses []protocol.Response

var voterKey *wallet.Key
var voter2Key *wallet.Key

// TestMain is the entry point for testing.
func TestMain(m *testing.M) {
	os.Exit(testMain(m))
}

func testMain(m *testing.M) int {
	var err error
	test, err = tests.New()
	if err != nil {
		return 1
	}
	defer test.TearDown()

	// =========================================================================
	// Keys

	voterKey, err = tests.GenerateKey()
	if err != nil {
		return 1
	}

	voter2Key, err = tests.GenerateKey()
	if err != nil {
		return 1
	}

	return m.Run()
}

// resetElection starts a fresh election over the given proposals and mounts
// the API against it.
func resetElection(labels ...string) error {
	ctx := test.Context

	if err := test.Reset(ctx); err != nil {
		return err
	}

	e, err := election.Create(ctx, test.MasterDB, test.AdminKey.ID, labels,
		protocol.CurrentTimestamp())
	if err != nil {
		return err
	}

	a = handlers.API(test.MasterDB, e)
	return nil
}

// trigger sends one instruction through the mux, capturing the responses.
func trigger(caller identity.ID, instruction protocol.Instruction) error {
	responses = nil

	w := node.ResponseWriter{
		Responder: func(ctx context.Context, resp protocol.Response) error {
			responses = append(responses, resp)
			return nil
		},
	}

	r := protocol.Request{
		Caller:      caller,
		Instruction: instruction,
	}

	return a.Trigger(test.Context, &w, &r)
}

// checkAcknowledgement verifies the captured response acknowledges the
// opcode.
func checkAcknowledgement(t testing.TB, err error, opcode uint8) {
	if err != nil {
		t.Fatalf("\t%s\tInstruction failed : %v", tests.Failed, err)
	}

	if len(responses) != 1 {
		t.Fatalf("\t%s\t%d responses given, want 1", tests.Failed, len(responses))
	}

	ack, ok := responses[0].(*protocol.Acknowledgement)
	if !ok {
		t.Fatalf("\t%s\tResponse is %s, want Acknowledgement", tests.Failed,
			responses[0].Type())
	}

	if ack.Opcode != opcode {
		t.Fatalf("\t%s\tAcknowledged opcode %02x, want %02x", tests.Failed,
			ack.Opcode, opcode)
	}
}

// checkRejection verifies the instruction was rejected with the code.
func checkRejection(t testing.TB, err error, code uint8) {
	if errors.Cause(err) != node.ErrRejected {
		t.Fatalf("\t%s\tGot %v, want a rejection", tests.Failed, err)
	}

	if len(responses) != 1 {
		t.Fatalf("\t%s\t%d responses given, want 1", tests.Failed, len(responses))
	}

	rejection, ok := responses[0].(*protocol.Rejection)
	if !ok {
		t.Fatalf("\t%s\tResponse is %s, want Rejection", tests.Failed,
			responses[0].Type())
	}

	if rejection.RejectionCode != code {
		t.Fatalf("\t%s\tRejected with %d %q, want %d %q", tests.Failed,
			rejection.RejectionCode, rejection.Message,
			code, protocol.RejectionText(code))
	}
}

// fetchStatus queries the participant record held for id.
func fetchStatus(t testing.TB, id identity.ID) *protocol.StatusResult {
	if err := trigger(id, &protocol.ParticipantStatus{ID: id}); err != nil {
		t.Fatalf("\t%s\tFailed to fetch status : %v", tests.Failed, err)
	}

	if len(responses) != 1 {
		t.Fatalf("\t%s\t%d responses given, want 1", tests.Failed, len(responses))
	}

	status, ok := responses[0].(*protocol.StatusResult)
	if !ok {
		t.Fatalf("\t%s\tResponse is %s, want StatusResult", tests.Failed,
			responses[0].Type())
	}

	return status
}

// fetchTally queries the leading proposal.
func fetchTally(t testing.TB, caller identity.ID) *protocol.TallyResult {
	if err := trigger(caller, &protocol.LeadingProposal{}); err != nil {
		t.Fatalf("\t%s\tFailed to fetch tally : %v", tests.Failed, err)
	}

	if len(responses) != 1 {
		t.Fatalf("\t%s\t%d responses given, want 1", tests.Failed, len(responses))
	}

	result, ok := responses[0].(*protocol.TallyResult)
	if !ok {
		t.Fatalf("\t%s\tResponse is %s, want TallyResult", tests.Failed,
			responses[0].Type())
	}

	return result
}

// fetchWinner queries the winning label.
func fetchWinner(t testing.TB, caller identity.ID) *protocol.WinnerResult {
	if err := trigger(caller, &protocol.WinnerName{}); err != nil {
		t.Fatalf("\t%s\tFailed to fetch winner : %v", tests.Failed, err)
	}

	if len(responses) != 1 {
		t.Fatalf("\t%s\t%d responses given, want 1", tests.Failed, len(responses))
	}

	result, ok := responses[0].(*protocol.WinnerResult)
	if !ok {
		t.Fatalf("\t%s\tResponse is %s, want WinnerResult", tests.Failed,
			responses[0].Type())
	}

	return result
}
