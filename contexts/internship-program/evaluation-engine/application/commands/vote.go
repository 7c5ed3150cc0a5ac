package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	application "pasantias/contexts/internship-program/evaluation-engine/application"
	"pasantias/contexts/internship-program/evaluation-engine/domain/entities"
	domainerrors "pasantias/contexts/internship-program/evaluation-engine/domain/errors"
	"pasantias/contexts/internship-program/evaluation-engine/ports"
)

const minCommentLength = 10

// SectionVoteCommand is the write-model input for a section-scoped comment.
type SectionVoteCommand struct {
	ProposalRef    string
	TutorID        int64
	SectionName    string
	SubsectionName string
	Text           string
	Vote           entities.Vote
}

// EditCommentCommand updates the text and/or vote of an ACTUALIZA comment.
type EditCommentCommand struct {
	CommentUUID string
	TutorID     int64
	Text        *string
	Vote        *entities.Vote
}

// WholeProposalCommand records a general-scope vote on the entire proposal.
type WholeProposalCommand struct {
	ProposalRef string
	TutorID     int64
	TutorName   string
	TutorEmail  string
	Text        string
}

// VoteResult reports the two-step outcome explicitly: the comment write is the
// primary effect, status synchronization is best-effort.
type VoteResult struct {
	Comment        entities.Comment
	CommentWritten bool
	StatusSynced   bool
}

// VoteUseCase enforces the comment/vote admission rules: the closed-evaluation
// gate, section uniqueness, final-vote exclusivity and the split between
// section comments and whole-proposal actions.
type VoteUseCase struct {
	Comments      ports.CommentRepository
	Proposals     ports.ProposalGateway
	Convocatorias ports.ConvocatoriaGateway
	Sync          *SyncUseCase
	Clock         ports.Clock
	IDGen         ports.IDGenerator
	Logger        *slog.Logger
}

// SubmitSectionVote records a section-scoped ACTUALIZA comment. Final votes
// are rejected on this path and directed to the whole-proposal operations.
func (uc VoteUseCase) SubmitSectionVote(ctx context.Context, cmd SectionVoteCommand) (VoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)
	logger.Info("section vote processing started",
		"event", "evaluation_section_vote_started",
		"module", "internship-program/evaluation-engine",
		"layer", "application",
		"proposal_ref", strings.TrimSpace(cmd.ProposalRef),
		"tutor_id", cmd.TutorID,
		"section", strings.TrimSpace(cmd.SectionName),
	)

	if cmd.TutorID <= 0 ||
		strings.TrimSpace(cmd.ProposalRef) == "" ||
		strings.TrimSpace(cmd.SectionName) == "" ||
		strings.TrimSpace(cmd.SubsectionName) == "" {
		return VoteResult{}, domainerrors.ErrInvalidVoteInput
	}
	if !cmd.Vote.Valid() {
		return VoteResult{}, domainerrors.ErrInvalidVoteStatus
	}
	if cmd.Vote.Final() {
		return VoteResult{}, domainerrors.ErrFinalVoteViaComment
	}
	if len(strings.TrimSpace(cmd.Text)) < minCommentLength {
		return VoteResult{}, domainerrors.ErrCommentTooShort
	}

	proposal, err := uc.resolveProposal(ctx, cmd.ProposalRef)
	if err != nil {
		return VoteResult{}, err
	}
	if proposal.Status.Closed() {
		return VoteResult{}, domainerrors.ErrEvaluationClosed
	}

	if _, found, err := uc.Comments.FindFinalVote(ctx, proposal.ProposalID, cmd.TutorID); err != nil {
		return VoteResult{}, err
	} else if found {
		return VoteResult{}, domainerrors.ErrFinalVoteAlreadyCast
	}

	// Uniqueness is per section, not per subsection.
	if _, found, err := uc.Comments.FindBySection(
		ctx, proposal.ProposalID, cmd.TutorID, strings.TrimSpace(cmd.SectionName),
	); err != nil {
		return VoteResult{}, err
	} else if found {
		return VoteResult{}, domainerrors.ErrDuplicateSectionComment
	}

	uuid, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return VoteResult{}, err
	}
	comment := entities.NewComment(
		uuid,
		proposal.ProposalID,
		cmd.TutorID,
		cmd.SectionName,
		cmd.SubsectionName,
		cmd.Text,
		cmd.Vote,
		uc.now(),
	)
	saved, err := uc.Comments.SaveComment(ctx, comment)
	if err != nil {
		return VoteResult{}, err
	}

	synced := uc.Sync.syncAfterWrite(ctx, proposal.ProposalID)
	logger.Info("section vote recorded",
		"event", "evaluation_section_vote_recorded",
		"module", "internship-program/evaluation-engine",
		"layer", "application",
		"comment_uuid", saved.UUID,
		"proposal_id", proposal.ProposalID,
		"tutor_id", cmd.TutorID,
		"status_synced", synced,
	)
	return VoteResult{Comment: saved, CommentWritten: true, StatusSynced: synced}, nil
}

// EditSectionVote modifies an existing ACTUALIZA comment. Only the author may
// edit, only while the proposal is open and still part of the active call.
func (uc VoteUseCase) EditSectionVote(ctx context.Context, cmd EditCommentCommand) (VoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	if strings.TrimSpace(cmd.CommentUUID) == "" || cmd.TutorID <= 0 {
		return VoteResult{}, domainerrors.ErrInvalidVoteInput
	}
	if cmd.Text == nil && cmd.Vote == nil {
		return VoteResult{}, domainerrors.ErrInvalidVoteInput
	}

	comment, err := uc.Comments.GetComment(ctx, strings.TrimSpace(cmd.CommentUUID))
	if err != nil {
		return VoteResult{}, err
	}
	if comment.TutorID != cmd.TutorID {
		return VoteResult{}, domainerrors.ErrNotCommentAuthor
	}
	if !comment.Editable() {
		return VoteResult{}, domainerrors.ErrFinalCommentImmutable
	}

	proposal, err := uc.Proposals.GetProposalByID(ctx, comment.ProposalID)
	if err != nil {
		return VoteResult{}, err
	}
	if proposal.Status.Closed() {
		return VoteResult{}, domainerrors.ErrEvaluationClosed
	}

	// Proposals outside the currently open call are treated as expired, even
	// without a direct deadline check on their own convocatoria.
	active, found, err := uc.Convocatorias.GetActiveConvocatoria(ctx)
	if err != nil {
		return VoteResult{}, err
	}
	if !found || proposal.ConvocatoriaID != active.ConvocatoriaID {
		return VoteResult{}, domainerrors.ErrConvocatoriaExpired
	}

	if cmd.Text != nil {
		if len(strings.TrimSpace(*cmd.Text)) < minCommentLength {
			return VoteResult{}, domainerrors.ErrCommentTooShort
		}
		comment.Text = strings.TrimSpace(*cmd.Text)
	}
	if cmd.Vote != nil {
		if !cmd.Vote.Valid() {
			return VoteResult{}, domainerrors.ErrInvalidVoteStatus
		}
		if cmd.Vote.Final() {
			return VoteResult{}, domainerrors.ErrFinalVoteViaComment
		}
		comment.Vote = *cmd.Vote
	}
	comment.UpdatedAt = uc.now()

	if err := uc.Comments.UpdateComment(ctx, comment); err != nil {
		return VoteResult{}, err
	}

	synced := uc.Sync.syncAfterWrite(ctx, comment.ProposalID)
	logger.Info("section vote edited",
		"event", "evaluation_section_vote_edited",
		"module", "internship-program/evaluation-engine",
		"layer", "application",
		"comment_uuid", comment.UUID,
		"proposal_id", comment.ProposalID,
		"tutor_id", cmd.TutorID,
		"status_synced", synced,
	)
	return VoteResult{Comment: comment, CommentWritten: true, StatusSynced: synced}, nil
}

// ApproveProposal records the tutor's general ACEPTADO vote.
func (uc VoteUseCase) ApproveProposal(ctx context.Context, cmd WholeProposalCommand) (VoteResult, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		text = fmt.Sprintf("Propuesta aprobada en su totalidad por %s (%s)",
			strings.TrimSpace(cmd.TutorName), strings.TrimSpace(cmd.TutorEmail))
	}
	return uc.recordWholeProposalVote(ctx, cmd, wholeProposalRecord{
		vote:           entities.VoteAccepted,
		sectionName:    entities.SectionGeneralApproval,
		subsectionName: entities.SubsectionWholeProposal,
		text:           text,
		event:          "evaluation_proposal_approved",
	})
}

// RejectProposal records the tutor's general RECHAZADO vote.
func (uc VoteUseCase) RejectProposal(ctx context.Context, cmd WholeProposalCommand) (VoteResult, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		text = fmt.Sprintf("Propuesta rechazada en su totalidad por %s", strings.TrimSpace(cmd.TutorName))
	}
	return uc.recordWholeProposalVote(ctx, cmd, wholeProposalRecord{
		vote:           entities.VoteRejected,
		sectionName:    entities.SectionWholeProposal,
		subsectionName: entities.SubsectionGeneralReject,
		text:           text,
		event:          "evaluation_proposal_rejected",
	})
}

// RequestProposalUpdate records a general ACTUALIZA vote: the proposal needs
// revision at the whole-proposal level.
func (uc VoteUseCase) RequestProposalUpdate(ctx context.Context, cmd WholeProposalCommand) (VoteResult, error) {
	text := strings.TrimSpace(cmd.Text)
	if text == "" {
		text = fmt.Sprintf("Propuesta requiere actualización general por %s", strings.TrimSpace(cmd.TutorName))
	}
	return uc.recordWholeProposalVote(ctx, cmd, wholeProposalRecord{
		vote:           entities.VoteUpdate,
		sectionName:    entities.SectionWholeProposal,
		subsectionName: entities.SubsectionGeneralUpdate,
		text:           text,
		event:          "evaluation_proposal_update_requested",
	})
}

type wholeProposalRecord struct {
	vote           entities.Vote
	sectionName    string
	subsectionName string
	text           string
	event          string
}

func (uc VoteUseCase) recordWholeProposalVote(
	ctx context.Context,
	cmd WholeProposalCommand,
	record wholeProposalRecord,
) (VoteResult, error) {
	logger := application.ResolveLogger(uc.Logger)

	if strings.TrimSpace(cmd.ProposalRef) == "" ||
		cmd.TutorID <= 0 ||
		strings.TrimSpace(cmd.TutorName) == "" ||
		strings.TrimSpace(cmd.TutorEmail) == "" {
		return VoteResult{}, domainerrors.ErrInvalidVoteInput
	}

	proposal, err := uc.resolveProposal(ctx, cmd.ProposalRef)
	if err != nil {
		return VoteResult{}, err
	}
	if proposal.Status.Closed() {
		return VoteResult{}, domainerrors.ErrEvaluationClosed
	}

	if existing, found, err := uc.Comments.FindFinalVote(ctx, proposal.ProposalID, cmd.TutorID); err != nil {
		return VoteResult{}, err
	} else if found {
		logger.Warn("whole-proposal vote rejected: final vote already cast",
			"event", "evaluation_final_vote_conflict",
			"module", "internship-program/evaluation-engine",
			"layer", "application",
			"proposal_id", proposal.ProposalID,
			"tutor_id", cmd.TutorID,
			"existing_vote", string(existing.Vote),
		)
		return VoteResult{}, domainerrors.ErrFinalVoteAlreadyCast
	}

	// A whole-proposal vote supersedes nothing: tutors with section comments
	// on record must resolve those first.
	count, err := uc.Comments.CountActiveByTutor(ctx, proposal.ProposalID, cmd.TutorID)
	if err != nil {
		return VoteResult{}, err
	}
	if count > 0 {
		return VoteResult{}, domainerrors.ErrSectionCommentsExist
	}

	uuid, err := uc.IDGen.NewID(ctx)
	if err != nil {
		return VoteResult{}, err
	}
	comment := entities.NewComment(
		uuid,
		proposal.ProposalID,
		cmd.TutorID,
		record.sectionName,
		record.subsectionName,
		record.text,
		record.vote,
		uc.now(),
	)
	saved, err := uc.Comments.SaveComment(ctx, comment)
	if err != nil {
		return VoteResult{}, err
	}

	synced := uc.Sync.syncAfterWrite(ctx, proposal.ProposalID)
	logger.Info("whole-proposal vote recorded",
		"event", record.event,
		"module", "internship-program/evaluation-engine",
		"layer", "application",
		"comment_uuid", saved.UUID,
		"proposal_id", proposal.ProposalID,
		"tutor_id", cmd.TutorID,
		"vote", string(record.vote),
		"status_synced", synced,
	)
	return VoteResult{Comment: saved, CommentWritten: true, StatusSynced: synced}, nil
}

// DeleteComment always fails: the comment log is append-only because the
// computed status must stay reproducible from history. The attempt is logged
// so misbehaving clients are visible.
func (uc VoteUseCase) DeleteComment(ctx context.Context, commentUUID string, tutorID int64) error {
	logger := application.ResolveLogger(uc.Logger)
	logger.Warn("comment deletion rejected",
		"event", "evaluation_comment_delete_rejected",
		"module", "internship-program/evaluation-engine",
		"layer", "application",
		"comment_uuid", strings.TrimSpace(commentUUID),
		"tutor_id", tutorID,
	)
	return domainerrors.ErrCommentDeletionForbidden
}

// resolveProposal accepts a numeric id or an external UUID, mirroring the two
// reference styles clients use.
func (uc VoteUseCase) resolveProposal(ctx context.Context, ref string) (ports.ProposalProjection, error) {
	trimmed := strings.TrimSpace(ref)
	if id, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return uc.Proposals.GetProposalByID(ctx, id)
	}
	return uc.Proposals.GetProposalByUUID(ctx, trimmed)
}

func (uc VoteUseCase) now() time.Time {
	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}
	return now
}
