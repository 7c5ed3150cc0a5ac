package entities

// ProposalStatus is the lifecycle status the engine computes for a proposal.
type ProposalStatus string

const (
	StatusPending     ProposalStatus = "PENDIENTE"
	StatusApproved    ProposalStatus = "APROBADO"
	StatusRejected    ProposalStatus = "RECHAZADO"
	StatusNeedsUpdate ProposalStatus = "ACTUALIZAR"
)

func (s ProposalStatus) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusNeedsUpdate:
		return true
	default:
		return false
	}
}

// Closed reports whether the proposal no longer accepts votes or edits.
func (s ProposalStatus) Closed() bool {
	return s == StatusApproved || s == StatusRejected
}

// FinalVoteThreshold is the number of concurring general final votes that
// closes an evaluation.
const FinalVoteThreshold = 3

// VoteSummary holds raw vote counts for one proposal, split by scope.
type VoteSummary struct {
	TotalVotes       int
	AcceptedVotes    int
	RejectedVotes    int
	UpdateVotes      int
	GeneralApproval  int
	GeneralRejection int
	GeneralUpdate    int
	SectionApproval  int
	SectionRejection int
	SectionUpdate    int
}

// Tally counts the active comment records of a proposal. It is a pure
// function: same input list, same summary.
func Tally(comments []Comment) VoteSummary {
	var summary VoteSummary
	for _, comment := range comments {
		if !comment.Active {
			continue
		}
		summary.TotalVotes++
		general := comment.Scope == ScopeGeneral
		switch comment.Vote {
		case VoteAccepted:
			summary.AcceptedVotes++
			if general {
				summary.GeneralApproval++
			} else {
				summary.SectionApproval++
			}
		case VoteRejected:
			summary.RejectedVotes++
			if general {
				summary.GeneralRejection++
			} else {
				summary.SectionRejection++
			}
		case VoteUpdate:
			summary.UpdateVotes++
			if general {
				summary.GeneralUpdate++
			} else {
				summary.SectionUpdate++
			}
		}
	}
	return summary
}

// Status derives the proposal status from the counts. Rules are ordered;
// the first match wins:
//
//  1. three general approvals and fewer than three general rejections approve
//     the proposal (the rejection guard avoids a contradictory double-closed
//     state when both thresholds are met);
//  2. three general rejections reject it;
//  3. any update request, general or section-scoped, parks it in ACTUALIZAR;
//  4. general final votes below threshold keep it PENDIENTE;
//  5. no votes at all keep it PENDIENTE.
func (s VoteSummary) Status() ProposalStatus {
	switch {
	case s.GeneralApproval >= FinalVoteThreshold && s.GeneralRejection < FinalVoteThreshold:
		return StatusApproved
	case s.GeneralRejection >= FinalVoteThreshold:
		return StatusRejected
	case s.GeneralUpdate > 0 || s.SectionUpdate > 0:
		return StatusNeedsUpdate
	case s.GeneralApproval > 0 || s.GeneralRejection > 0:
		return StatusPending
	default:
		return StatusPending
	}
}

// EvaluationClosed reports whether either final-vote threshold was reached.
// Update requests never close an evaluation.
func (s VoteSummary) EvaluationClosed() bool {
	return s.GeneralApproval >= FinalVoteThreshold || s.GeneralRejection >= FinalVoteThreshold
}

// CalculateStatus is the aggregation entrypoint: classify, tally and derive
// in one deterministic pass over the comment log.
func CalculateStatus(comments []Comment) (VoteSummary, ProposalStatus) {
	summary := Tally(comments)
	return summary, summary.Status()
}
