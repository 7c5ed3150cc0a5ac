package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"pasantias/contexts/internship-program/evaluation-engine/application/commands"
	"pasantias/contexts/internship-program/evaluation-engine/application/queries"
	"pasantias/contexts/internship-program/evaluation-engine/domain/entities"
	httptransport "pasantias/contexts/internship-program/evaluation-engine/transport/http"
)

type Handler struct {
	Votes  commands.VoteUseCase
	Sync   *commands.SyncUseCase
	Stats  queries.StatsUseCase
	Logger *slog.Logger
}

func (h Handler) CreateCommentHandler(
	ctx context.Context,
	tutorID int64,
	req httptransport.CreateCommentRequest,
) (httptransport.VoteOutcomeResponse, error) {
	result, err := h.Votes.SubmitSectionVote(ctx, commands.SectionVoteCommand{
		ProposalRef:    req.ProposalRef,
		TutorID:        tutorID,
		SectionName:    req.SectionName,
		SubsectionName: req.SubsectionName,
		Text:           req.Text,
		Vote:           entities.Vote(req.Vote),
	})
	if err != nil {
		return httptransport.VoteOutcomeResponse{}, err
	}
	return toOutcome(result), nil
}

func (h Handler) EditCommentHandler(
	ctx context.Context,
	commentUUID string,
	tutorID int64,
	req httptransport.EditCommentRequest,
) (httptransport.VoteOutcomeResponse, error) {
	cmd := commands.EditCommentCommand{
		CommentUUID: commentUUID,
		TutorID:     tutorID,
		Text:        req.Text,
	}
	if req.Vote != nil {
		vote := entities.Vote(*req.Vote)
		cmd.Vote = &vote
	}
	result, err := h.Votes.EditSectionVote(ctx, cmd)
	if err != nil {
		return httptransport.VoteOutcomeResponse{}, err
	}
	return toOutcome(result), nil
}

func (h Handler) DeleteCommentHandler(ctx context.Context, commentUUID string, tutorID int64) error {
	return h.Votes.DeleteComment(ctx, commentUUID, tutorID)
}

func (h Handler) ApproveProposalHandler(
	ctx context.Context,
	tutorID int64,
	tutorName string,
	tutorEmail string,
	req httptransport.WholeProposalVoteRequest,
) (httptransport.VoteOutcomeResponse, error) {
	result, err := h.Votes.ApproveProposal(ctx, commands.WholeProposalCommand{
		ProposalRef: req.ProposalRef,
		TutorID:     tutorID,
		TutorName:   tutorName,
		TutorEmail:  tutorEmail,
		Text:        req.Text,
	})
	if err != nil {
		return httptransport.VoteOutcomeResponse{}, err
	}
	return toOutcome(result), nil
}

func (h Handler) RejectProposalHandler(
	ctx context.Context,
	tutorID int64,
	tutorName string,
	tutorEmail string,
	req httptransport.WholeProposalVoteRequest,
) (httptransport.VoteOutcomeResponse, error) {
	result, err := h.Votes.RejectProposal(ctx, commands.WholeProposalCommand{
		ProposalRef: req.ProposalRef,
		TutorID:     tutorID,
		TutorName:   tutorName,
		TutorEmail:  tutorEmail,
		Text:        req.Text,
	})
	if err != nil {
		return httptransport.VoteOutcomeResponse{}, err
	}
	return toOutcome(result), nil
}

func (h Handler) RequestUpdateHandler(
	ctx context.Context,
	tutorID int64,
	tutorName string,
	tutorEmail string,
	req httptransport.WholeProposalVoteRequest,
) (httptransport.VoteOutcomeResponse, error) {
	result, err := h.Votes.RequestProposalUpdate(ctx, commands.WholeProposalCommand{
		ProposalRef: req.ProposalRef,
		TutorID:     tutorID,
		TutorName:   tutorName,
		TutorEmail:  tutorEmail,
		Text:        req.Text,
	})
	if err != nil {
		return httptransport.VoteOutcomeResponse{}, err
	}
	return toOutcome(result), nil
}

func (h Handler) VoteStatsHandler(ctx context.Context, proposalRef string) (httptransport.VoteStatsResponse, error) {
	stats, err := h.Stats.VoteStats(ctx, proposalRef)
	if err != nil {
		return httptransport.VoteStatsResponse{}, err
	}
	return httptransport.VoteStatsResponse{
		ProposalID:       stats.ProposalID,
		TotalVotes:       stats.Summary.TotalVotes,
		AcceptedVotes:    stats.Summary.AcceptedVotes,
		RejectedVotes:    stats.Summary.RejectedVotes,
		UpdateVotes:      stats.Summary.UpdateVotes,
		GeneralApproval:  stats.Summary.GeneralApproval,
		GeneralRejection: stats.Summary.GeneralRejection,
		GeneralUpdate:    stats.Summary.GeneralUpdate,
		SectionApproval:  stats.Summary.SectionApproval,
		SectionRejection: stats.Summary.SectionRejection,
		SectionUpdate:    stats.Summary.SectionUpdate,
		CalculatedStatus: string(stats.CalculatedStatus),
		EvaluationClosed: stats.EvaluationClosed,
	}, nil
}

func (h Handler) ProposalCommentsHandler(ctx context.Context, proposalRef string) (httptransport.CommentListResponse, error) {
	comments, err := h.Stats.CommentsByProposal(ctx, proposalRef)
	if err != nil {
		return httptransport.CommentListResponse{}, err
	}
	return httptransport.CommentListResponse{Items: mapComments(comments)}, nil
}

func (h Handler) TutorCommentsHandler(ctx context.Context, tutorID int64) (httptransport.CommentListResponse, error) {
	comments, err := h.Stats.CommentsByTutor(ctx, tutorID)
	if err != nil {
		return httptransport.CommentListResponse{}, err
	}
	return httptransport.CommentListResponse{Items: mapComments(comments)}, nil
}

func (h Handler) TutorFinalVoteHandler(
	ctx context.Context,
	proposalRef string,
	tutorID int64,
) (httptransport.FinalVoteResponse, error) {
	final, err := h.Stats.TutorFinalVote(ctx, proposalRef, tutorID)
	if err != nil {
		return httptransport.FinalVoteResponse{}, err
	}
	if !final.HasVoted {
		return httptransport.FinalVoteResponse{}, nil
	}
	comment := toCommentResponse(final.Comment)
	return httptransport.FinalVoteResponse{
		HasVoted: true,
		Vote:     string(final.Vote),
		Comment:  &comment,
	}, nil
}

func (h Handler) SyncStatusHandler(ctx context.Context, proposalID int64) (httptransport.SyncStatusResponse, error) {
	changed, err := h.Sync.SyncStatus(ctx, proposalID)
	if err != nil {
		return httptransport.SyncStatusResponse{}, err
	}
	return httptransport.SyncStatusResponse{
		ProposalID: proposalID,
		Changed:    changed,
	}, nil
}

func toOutcome(result commands.VoteResult) httptransport.VoteOutcomeResponse {
	return httptransport.VoteOutcomeResponse{
		Comment:        toCommentResponse(result.Comment),
		CommentWritten: result.CommentWritten,
		StatusSynced:   result.StatusSynced,
	}
}

func toCommentResponse(comment entities.Comment) httptransport.CommentResponse {
	return httptransport.CommentResponse{
		ID:             comment.ID,
		UUID:           comment.UUID,
		ProposalID:     comment.ProposalID,
		TutorID:        comment.TutorID,
		SectionName:    comment.SectionName,
		SubsectionName: comment.SubsectionName,
		Text:           comment.Text,
		Vote:           string(comment.Vote),
		Scope:          string(comment.Scope),
		CreatedAt:      comment.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:      comment.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func mapComments(comments []entities.Comment) []httptransport.CommentResponse {
	items := make([]httptransport.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, toCommentResponse(comment))
	}
	return items
}
