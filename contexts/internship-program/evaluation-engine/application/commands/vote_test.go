package commands

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"pasantias/contexts/internship-program/evaluation-engine/adapters/memory"
	"pasantias/contexts/internship-program/evaluation-engine/domain/entities"
	domainerrors "pasantias/contexts/internship-program/evaluation-engine/domain/errors"
	"pasantias/contexts/internship-program/evaluation-engine/ports"
)

func newVoteFixture() (VoteUseCase, *memory.Store) {
	store := memory.NewStore(nil)
	store.SetProposal(ports.ProposalProjection{
		ProposalID:     1,
		UUID:           "prop-1",
		ConvocatoriaID: 10,
		Status:         entities.StatusPending,
	})
	store.SetActiveConvocatoria(ports.ConvocatoriaProjection{
		ConvocatoriaID: 10,
		UUID:           "conv-10",
	})
	uc := VoteUseCase{
		Comments:      store,
		Proposals:     store,
		Convocatorias: store,
		Sync:          NewSyncUseCase(store, store, nil),
		Clock:         store,
		IDGen:         store,
	}
	return uc, store
}

func TestSubmitSectionVoteRecordsAndSyncs(t *testing.T) {
	uc, store := newVoteFixture()

	result, err := uc.SubmitSectionVote(context.Background(), SectionVoteCommand{
		ProposalRef:    "prop-1",
		TutorID:        7,
		SectionName:    "Objetivos",
		SubsectionName: "Objetivo general",
		Text:           "el objetivo general necesita acotarse",
		Vote:           entities.VoteUpdate,
	})
	if err != nil {
		t.Fatalf("submit section vote failed: %v", err)
	}
	if !result.CommentWritten || !result.StatusSynced {
		t.Fatalf("expected written+synced result, got %+v", result)
	}
	if result.Comment.Scope != entities.ScopeSection {
		t.Fatalf("expected section scope, got %v", result.Comment.Scope)
	}

	proposal, err := store.GetProposalByID(context.Background(), 1)
	if err != nil {
		t.Fatalf("load proposal: %v", err)
	}
	if proposal.Status != entities.StatusNeedsUpdate {
		t.Fatalf("expected synced status %s, got %s", entities.StatusNeedsUpdate, proposal.Status)
	}
}

func TestSubmitSectionVoteRejectsFinalVotes(t *testing.T) {
	uc, _ := newVoteFixture()

	_, err := uc.SubmitSectionVote(context.Background(), SectionVoteCommand{
		ProposalRef:    "prop-1",
		TutorID:        7,
		SectionName:    "Objetivos",
		SubsectionName: "Objetivo general",
		Text:           "intento de voto final por comentario",
		Vote:           entities.VoteAccepted,
	})
	if !errors.Is(err, domainerrors.ErrFinalVoteViaComment) {
		t.Fatalf("expected ErrFinalVoteViaComment, got %v", err)
	}
}

func TestSubmitSectionVoteRejectsShortText(t *testing.T) {
	uc, _ := newVoteFixture()

	_, err := uc.SubmitSectionVote(context.Background(), SectionVoteCommand{
		ProposalRef:    "prop-1",
		TutorID:        7,
		SectionName:    "Objetivos",
		SubsectionName: "Objetivo general",
		Text:           "  corto  ",
		Vote:           entities.VoteUpdate,
	})
	if !errors.Is(err, domainerrors.ErrCommentTooShort) {
		t.Fatalf("expected ErrCommentTooShort, got %v", err)
	}
}

func TestSubmitSectionVoteEnforcesSectionUniqueness(t *testing.T) {
	uc, _ := newVoteFixture()
	ctx := context.Background()

	first := SectionVoteCommand{
		ProposalRef:    "prop-1",
		TutorID:        7,
		SectionName:    "Objetivos",
		SubsectionName: "Objetivo general",
		Text:           "el objetivo general necesita acotarse",
		Vote:           entities.VoteUpdate,
	}
	if _, err := uc.SubmitSectionVote(ctx, first); err != nil {
		t.Fatalf("first section vote failed: %v", err)
	}

	second := first
	second.SubsectionName = "Objetivos específicos"
	second.Text = "los objetivos específicos tampoco cierran"
	if _, err := uc.SubmitSectionVote(ctx, second); !errors.Is(err, domainerrors.ErrDuplicateSectionComment) {
		t.Fatalf("expected ErrDuplicateSectionComment across subsections, got %v", err)
	}

	other := first
	other.SectionName = "Metodología"
	other.SubsectionName = "Descripción"
	other.Text = "la metodología merece otra vuelta"
	if _, err := uc.SubmitSectionVote(ctx, other); err != nil {
		t.Fatalf("vote on a different section failed: %v", err)
	}
}

func TestApproveProposalClosesEvaluation(t *testing.T) {
	uc, store := newVoteFixture()
	ctx := context.Background()

	for tutorID := int64(1); tutorID <= 3; tutorID++ {
		_, err := uc.ApproveProposal(ctx, WholeProposalCommand{
			ProposalRef: "prop-1",
			TutorID:     tutorID,
			TutorName:   fmt.Sprintf("Tutor %d", tutorID),
			TutorEmail:  fmt.Sprintf("tutor%d@uni.edu", tutorID),
		})
		if err != nil {
			t.Fatalf("approval by tutor %d failed: %v", tutorID, err)
		}
	}

	proposal, err := store.GetProposalByID(ctx, 1)
	if err != nil {
		t.Fatalf("load proposal: %v", err)
	}
	if proposal.Status != entities.StatusApproved {
		t.Fatalf("expected %s after three approvals, got %s", entities.StatusApproved, proposal.Status)
	}

	_, err = uc.SubmitSectionVote(ctx, SectionVoteCommand{
		ProposalRef:    "prop-1",
		TutorID:        4,
		SectionName:    "Objetivos",
		SubsectionName: "Objetivo general",
		Text:           "llega tarde, la evaluación ya cerró",
		Vote:           entities.VoteUpdate,
	})
	if !errors.Is(err, domainerrors.ErrEvaluationClosed) {
		t.Fatalf("expected ErrEvaluationClosed after approval, got %v", err)
	}
}

func TestFinalVoteExclusivity(t *testing.T) {
	uc, _ := newVoteFixture()
	ctx := context.Background()

	cmd := WholeProposalCommand{
		ProposalRef: "prop-1",
		TutorID:     5,
		TutorName:   "Tutora Cinco",
		TutorEmail:  "cinco@uni.edu",
	}
	if _, err := uc.ApproveProposal(ctx, cmd); err != nil {
		t.Fatalf("first approval failed: %v", err)
	}
	if _, err := uc.RejectProposal(ctx, cmd); !errors.Is(err, domainerrors.ErrFinalVoteAlreadyCast) {
		t.Fatalf("expected ErrFinalVoteAlreadyCast on contradiction, got %v", err)
	}
	if _, err := uc.ApproveProposal(ctx, cmd); !errors.Is(err, domainerrors.ErrFinalVoteAlreadyCast) {
		t.Fatalf("expected ErrFinalVoteAlreadyCast on repeat, got %v", err)
	}
}

func TestWholeProposalVoteBlockedBySectionComments(t *testing.T) {
	uc, _ := newVoteFixture()
	ctx := context.Background()

	if _, err := uc.SubmitSectionVote(ctx, SectionVoteCommand{
		ProposalRef:    "prop-1",
		TutorID:        6,
		SectionName:    "Objetivos",
		SubsectionName: "Objetivo general",
		Text:           "hay observaciones pendientes en objetivos",
		Vote:           entities.VoteUpdate,
	}); err != nil {
		t.Fatalf("section vote failed: %v", err)
	}

	_, err := uc.ApproveProposal(ctx, WholeProposalCommand{
		ProposalRef: "prop-1",
		TutorID:     6,
		TutorName:   "Tutor Seis",
		TutorEmail:  "seis@uni.edu",
	})
	if !errors.Is(err, domainerrors.ErrSectionCommentsExist) {
		t.Fatalf("expected ErrSectionCommentsExist, got %v", err)
	}
}

func TestEditSectionVoteRules(t *testing.T) {
	uc, store := newVoteFixture()
	ctx := context.Background()

	result, err := uc.SubmitSectionVote(ctx, SectionVoteCommand{
		ProposalRef:    "prop-1",
		TutorID:        7,
		SectionName:    "Objetivos",
		SubsectionName: "Objetivo general",
		Text:           "el objetivo general necesita acotarse",
		Vote:           entities.VoteUpdate,
	})
	if err != nil {
		t.Fatalf("section vote failed: %v", err)
	}

	newText := "versión corregida de la observación"
	if _, err := uc.EditSectionVote(ctx, EditCommentCommand{
		CommentUUID: result.Comment.UUID,
		TutorID:     8,
		Text:        &newText,
	}); !errors.Is(err, domainerrors.ErrNotCommentAuthor) {
		t.Fatalf("expected ErrNotCommentAuthor, got %v", err)
	}

	edited, err := uc.EditSectionVote(ctx, EditCommentCommand{
		CommentUUID: result.Comment.UUID,
		TutorID:     7,
		Text:        &newText,
	})
	if err != nil {
		t.Fatalf("author edit failed: %v", err)
	}
	if edited.Comment.Text != newText {
		t.Fatalf("expected edited text %q, got %q", newText, edited.Comment.Text)
	}

	store.ClearActiveConvocatoria()
	if _, err := uc.EditSectionVote(ctx, EditCommentCommand{
		CommentUUID: result.Comment.UUID,
		TutorID:     7,
		Text:        &newText,
	}); !errors.Is(err, domainerrors.ErrConvocatoriaExpired) {
		t.Fatalf("expected ErrConvocatoriaExpired without active call, got %v", err)
	}

	store.SetProposal(ports.ProposalProjection{
		ProposalID:     1,
		UUID:           "prop-1",
		ConvocatoriaID: 10,
		Status:         entities.StatusApproved,
	})
	if _, err := uc.EditSectionVote(ctx, EditCommentCommand{
		CommentUUID: result.Comment.UUID,
		TutorID:     7,
		Text:        &newText,
	}); !errors.Is(err, domainerrors.ErrEvaluationClosed) {
		t.Fatalf("expected ErrEvaluationClosed once the proposal closed, got %v", err)
	}
}

func TestDeleteCommentAlwaysRejected(t *testing.T) {
	uc, _ := newVoteFixture()

	err := uc.DeleteComment(context.Background(), "any-comment", 7)
	if !errors.Is(err, domainerrors.ErrCommentDeletionForbidden) {
		t.Fatalf("expected ErrCommentDeletionForbidden, got %v", err)
	}
}

func TestSyncStatusIdempotent(t *testing.T) {
	uc, _ := newVoteFixture()
	ctx := context.Background()

	if _, err := uc.SubmitSectionVote(ctx, SectionVoteCommand{
		ProposalRef:    "prop-1",
		TutorID:        7,
		SectionName:    "Objetivos",
		SubsectionName: "Objetivo general",
		Text:           "el objetivo general necesita acotarse",
		Vote:           entities.VoteUpdate,
	}); err != nil {
		t.Fatalf("section vote failed: %v", err)
	}

	changed, err := uc.Sync.SyncStatus(ctx, 1)
	if err != nil {
		t.Fatalf("sync failed: %v", err)
	}
	if changed {
		t.Fatalf("expected no-op sync right after a synced write")
	}
}
