package tests

import (
	"testing"

	"github.com/tokenized/ballot-engine/internal/platform/tests"
	"github.com/tokenized/ballot-engine/pkg/protocol"
)

// TestGrantRights is the entry point for testing the rights instructions.
func TestGrantRights(t *testing.T) {
	defer tests.Recover(t)

	t.Run("adminGrant", adminGrant)
	t.Run("authorizationGate", authorizationGate)
	t.Run("repeatedGrant", repeatedGrant)
	t.Run("grantAfterVote", grantAfterVote)
}

func adminGrant(t *testing.T) {
	if err := resetElection("Alpha", "Beta"); err != nil {
		t.Fatalf("\t%s\tFailed to reset election : %v", tests.Failed, err)
	}

	voter := voterKey.ID

	// An identity the registry has never seen reports a zero record.
	before := fetchStatus(t, voter)
	if before.Weight != 0 || before.Voted {
		t.Fatalf("\t%s\tUnknown identity has a record : weight %d, voted %t",
			tests.Failed, before.Weight, before.Voted)
	}

	err := trigger(test.AdminKey.ID, &protocol.GrantRights{Target: voter})
	checkAcknowledgement(t, err, protocol.CodeGrantRights)

	after := fetchStatus(t, voter)
	if after.Weight != 1 || after.Voted {
		t.Fatalf("\t%s\tWrong record after grant : weight %d, voted %t",
			tests.Failed, after.Weight, after.Voted)
	}

	t.Logf("\t%s\tRights granted", tests.Success)
}

func authorizationGate(t *testing.T) {
	if err := resetElection("Alpha", "Beta"); err != nil {
		t.Fatalf("\t%s\tFailed to reset election : %v", tests.Failed, err)
	}

	err := trigger(voterKey.ID, &protocol.GrantRights{Target: voter2Key.ID})
	checkRejection(t, err, protocol.RejectionCodeUnauthorized)

	// The rejected grant must not leave a record behind.
	status := fetchStatus(t, voter2Key.ID)
	if status.Weight != 0 || status.Voted {
		t.Fatalf("\t%s\tRejected grant mutated the record : weight %d, voted %t",
			tests.Failed, status.Weight, status.Voted)
	}

	t.Logf("\t%s\tNon administrator grant rejected", tests.Success)
}

func repeatedGrant(t *testing.T) {
	if err := resetElection("Alpha", "Beta"); err != nil {
		t.Fatalf("\t%s\tFailed to reset election : %v", tests.Failed, err)
	}

	admin := test.AdminKey.ID
	voter := voterKey.ID

	err := trigger(admin, &protocol.GrantRights{Target: voter})
	checkAcknowledgement(t, err, protocol.CodeGrantRights)

	err = trigger(admin, &protocol.GrantRights{Target: voter})
	checkRejection(t, err, protocol.RejectionCodeAlreadyEnfranchised)

	status := fetchStatus(t, voter)
	if status.Weight != 1 {
		t.Fatalf("\t%s\tWrong weight after repeated grant : got %d, want 1",
			tests.Failed, status.Weight)
	}

	t.Logf("\t%s\tRepeated grant rejected", tests.Success)
}

func grantAfterVote(t *testing.T) {
	if err := resetElection("Alpha", "Beta"); err != nil {
		t.Fatalf("\t%s\tFailed to reset election : %v", tests.Failed, err)
	}

	admin := test.AdminKey.ID
	voter := voterKey.ID

	err := trigger(admin, &protocol.GrantRights{Target: voter})
	checkAcknowledgement(t, err, protocol.CodeGrantRights)

	err = trigger(voter, &protocol.BallotCast{Index: 0})
	checkAcknowledgement(t, err, protocol.CodeBallotCast)

	// Voted comes before enfranchised in the check order.
	err = trigger(admin, &protocol.GrantRights{Target: voter})
	checkRejection(t, err, protocol.RejectionCodeAlreadyVoted)

	t.Logf("\t%s\tGrant after vote rejected", tests.Success)
}
