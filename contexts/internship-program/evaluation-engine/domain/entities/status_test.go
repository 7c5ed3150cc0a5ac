package entities

import (
	"fmt"
	"testing"
	"time"
)

func generalVote(tutorID int64, vote Vote, now time.Time) Comment {
	section := SectionGeneralApproval
	subsection := SubsectionWholeProposal
	switch vote {
	case VoteRejected:
		section = SectionWholeProposal
		subsection = SubsectionGeneralReject
	case VoteUpdate:
		section = SectionWholeProposal
		subsection = SubsectionGeneralUpdate
	}
	return NewComment(
		fmt.Sprintf("general-%d-%s", tutorID, vote),
		1,
		tutorID,
		section,
		subsection,
		"comentario general del tutor",
		vote,
		now,
	)
}

func sectionUpdate(tutorID int64, section string, now time.Time) Comment {
	return NewComment(
		fmt.Sprintf("section-%d-%s", tutorID, section),
		1,
		tutorID,
		section,
		"Descripción",
		"esta sección necesita trabajo adicional",
		VoteUpdate,
		now,
	)
}

func TestClassifyScopeGeneralMarkers(t *testing.T) {
	cases := []struct {
		section    string
		subsection string
		want       VoteScope
	}{
		{SectionGeneralApproval, SubsectionWholeProposal, ScopeGeneral},
		{SectionWholeProposal, SubsectionGeneralReject, ScopeGeneral},
		{SectionWholeProposal, SubsectionGeneralUpdate, ScopeGeneral},
		{"Objetivos", "Objetivo general", ScopeSection},
		{SectionGeneralApproval, "Descripción", ScopeSection},
		{"Objetivos", SubsectionWholeProposal, ScopeSection},
	}
	for _, tc := range cases {
		if got := ClassifyScope(tc.section, tc.subsection); got != tc.want {
			t.Fatalf("ClassifyScope(%q, %q) = %v, want %v", tc.section, tc.subsection, got, tc.want)
		}
	}
}

func TestStatusThreeGeneralApprovalsApproves(t *testing.T) {
	now := time.Now().UTC()
	comments := []Comment{
		generalVote(1, VoteAccepted, now),
		generalVote(2, VoteAccepted, now),
		generalVote(3, VoteAccepted, now),
	}
	summary, status := CalculateStatus(comments)
	if status != StatusApproved {
		t.Fatalf("expected %s, got %s", StatusApproved, status)
	}
	if !summary.EvaluationClosed() {
		t.Fatalf("expected evaluation closed at %d approvals", summary.GeneralApproval)
	}
}

func TestStatusThreeGeneralRejectionsReject(t *testing.T) {
	now := time.Now().UTC()
	comments := []Comment{
		generalVote(1, VoteRejected, now),
		generalVote(2, VoteRejected, now),
		generalVote(3, VoteRejected, now),
	}
	summary, status := CalculateStatus(comments)
	if status != StatusRejected {
		t.Fatalf("expected %s, got %s", StatusRejected, status)
	}
	if !summary.EvaluationClosed() {
		t.Fatalf("expected evaluation closed at %d rejections", summary.GeneralRejection)
	}
}

func TestStatusTiedFinalVotesReject(t *testing.T) {
	// Three approvals and three rejections: the approval rule is guarded by
	// the rejection count, so the rejection rule decides.
	now := time.Now().UTC()
	comments := []Comment{
		generalVote(1, VoteAccepted, now),
		generalVote(2, VoteAccepted, now),
		generalVote(3, VoteAccepted, now),
		generalVote(4, VoteRejected, now),
		generalVote(5, VoteRejected, now),
		generalVote(6, VoteRejected, now),
	}
	_, status := CalculateStatus(comments)
	if status != StatusRejected {
		t.Fatalf("expected tie to resolve to %s, got %s", StatusRejected, status)
	}
}

func TestStatusUpdateRequestsWin(t *testing.T) {
	now := time.Now().UTC()
	comments := []Comment{
		generalVote(1, VoteAccepted, now),
		generalVote(2, VoteAccepted, now),
		sectionUpdate(3, "Objetivos", now),
	}
	_, status := CalculateStatus(comments)
	if status != StatusNeedsUpdate {
		t.Fatalf("expected %s below threshold with update request, got %s", StatusNeedsUpdate, status)
	}
}

func TestStatusGeneralUpdateRequestWins(t *testing.T) {
	now := time.Now().UTC()
	comments := []Comment{
		generalVote(1, VoteAccepted, now),
		generalVote(2, VoteUpdate, now),
	}
	_, status := CalculateStatus(comments)
	if status != StatusNeedsUpdate {
		t.Fatalf("expected %s with general update request, got %s", StatusNeedsUpdate, status)
	}
}

func TestStatusPendingBelowThreshold(t *testing.T) {
	now := time.Now().UTC()
	comments := []Comment{
		generalVote(1, VoteAccepted, now),
		generalVote(2, VoteAccepted, now),
	}
	summary, status := CalculateStatus(comments)
	if status != StatusPending {
		t.Fatalf("expected %s with two approvals, got %s", StatusPending, status)
	}
	if summary.EvaluationClosed() {
		t.Fatalf("evaluation must stay open below the threshold")
	}
}

func TestStatusNoCommentsPending(t *testing.T) {
	_, status := CalculateStatus(nil)
	if status != StatusPending {
		t.Fatalf("expected %s for empty log, got %s", StatusPending, status)
	}
}

func TestTallySkipsInactiveComments(t *testing.T) {
	now := time.Now().UTC()
	inactive := generalVote(1, VoteAccepted, now)
	inactive.Active = false
	summary := Tally([]Comment{
		inactive,
		generalVote(2, VoteAccepted, now),
	})
	if summary.GeneralApproval != 1 {
		t.Fatalf("expected 1 counted approval, got %d", summary.GeneralApproval)
	}
	if summary.TotalVotes != 1 {
		t.Fatalf("expected 1 total vote, got %d", summary.TotalVotes)
	}
}

func TestStatusApprovalThresholdOutranksUpdateRequest(t *testing.T) {
	// Three approvals and one pending update request: the threshold rule
	// outranks the update rule once the evaluation closes.
	now := time.Now().UTC()
	comments := []Comment{
		generalVote(1, VoteAccepted, now),
		generalVote(2, VoteAccepted, now),
		sectionUpdate(3, "Metodología", now),
		generalVote(4, VoteAccepted, now),
	}
	_, status := CalculateStatus(comments)
	if status != StatusApproved {
		t.Fatalf("expected threshold approvals to close evaluation, got %s", status)
	}
}
