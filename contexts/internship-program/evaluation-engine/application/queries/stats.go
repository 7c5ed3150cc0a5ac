package queries

import (
	"context"
	"strconv"
	"strings"

	"pasantias/contexts/internship-program/evaluation-engine/domain/entities"
	domainerrors "pasantias/contexts/internship-program/evaluation-engine/domain/errors"
	"pasantias/contexts/internship-program/evaluation-engine/ports"
)

// VoteStats is the read model for a proposal's aggregated vote state.
type VoteStats struct {
	ProposalID       int64
	Summary          entities.VoteSummary
	CalculatedStatus entities.ProposalStatus
	EvaluationClosed bool
}

// FinalVote is the read model for a tutor's terminal vote on a proposal.
type FinalVote struct {
	HasVoted bool
	Vote     entities.Vote
	Comment  entities.Comment
}

// StatsUseCase serves vote aggregation reads. All derivation goes through the
// pure engine in domain/entities; this layer only loads the comment log.
type StatsUseCase struct {
	Comments  ports.CommentRepository
	Proposals ports.ProposalGateway
}

func (uc StatsUseCase) VoteStats(ctx context.Context, proposalRef string) (VoteStats, error) {
	proposal, err := uc.resolveProposal(ctx, proposalRef)
	if err != nil {
		return VoteStats{}, err
	}
	comments, err := uc.Comments.ListActiveByProposal(ctx, proposal.ProposalID)
	if err != nil {
		return VoteStats{}, err
	}
	summary, status := entities.CalculateStatus(comments)
	return VoteStats{
		ProposalID:       proposal.ProposalID,
		Summary:          summary,
		CalculatedStatus: status,
		EvaluationClosed: summary.EvaluationClosed(),
	}, nil
}

func (uc StatsUseCase) CommentsByProposal(ctx context.Context, proposalRef string) ([]entities.Comment, error) {
	proposal, err := uc.resolveProposal(ctx, proposalRef)
	if err != nil {
		return nil, err
	}
	return uc.Comments.ListActiveByProposal(ctx, proposal.ProposalID)
}

func (uc StatsUseCase) CommentsByTutor(ctx context.Context, tutorID int64) ([]entities.Comment, error) {
	if tutorID <= 0 {
		return nil, domainerrors.ErrInvalidVoteInput
	}
	return uc.Comments.ListByTutor(ctx, tutorID)
}

// TutorFinalVote reports whether the tutor already holds a terminal vote on
// the proposal, and which one.
func (uc StatsUseCase) TutorFinalVote(ctx context.Context, proposalRef string, tutorID int64) (FinalVote, error) {
	if tutorID <= 0 {
		return FinalVote{}, domainerrors.ErrInvalidVoteInput
	}
	proposal, err := uc.resolveProposal(ctx, proposalRef)
	if err != nil {
		return FinalVote{}, err
	}
	comment, found, err := uc.Comments.FindFinalVote(ctx, proposal.ProposalID, tutorID)
	if err != nil {
		return FinalVote{}, err
	}
	if !found {
		return FinalVote{}, nil
	}
	return FinalVote{
		HasVoted: true,
		Vote:     comment.Vote,
		Comment:  comment,
	}, nil
}

func (uc StatsUseCase) resolveProposal(ctx context.Context, ref string) (ports.ProposalProjection, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return ports.ProposalProjection{}, domainerrors.ErrInvalidVoteInput
	}
	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return uc.Proposals.GetProposalByID(ctx, id)
	}
	return uc.Proposals.GetProposalByUUID(ctx, trimmed)
}
