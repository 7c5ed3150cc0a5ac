package commands

import (
	"context"
	"log/slog"
	"sync"

	application "pasantias/contexts/internship-program/evaluation-engine/application"
	"pasantias/contexts/internship-program/evaluation-engine/domain/entities"
	"pasantias/contexts/internship-program/evaluation-engine/ports"
)

// SyncUseCase recomputes a proposal's status from its comment log and persists
// it when it changed. It is idempotent and safe to invoke as a standalone
// repair operation.
//
// The read-tally-write cycle is serialized per proposal: two concurrent vote
// submissions on the same proposal would otherwise both read a stale status
// and race on the write.
type SyncUseCase struct {
	Comments  ports.CommentRepository
	Proposals ports.ProposalGateway
	Logger    *slog.Logger

	locks sync.Map // proposalID -> *sync.Mutex
}

func NewSyncUseCase(
	comments ports.CommentRepository,
	proposals ports.ProposalGateway,
	logger *slog.Logger,
) *SyncUseCase {
	return &SyncUseCase{
		Comments:  comments,
		Proposals: proposals,
		Logger:    logger,
	}
}

// SyncStatus reports whether a status update was persisted.
func (uc *SyncUseCase) SyncStatus(ctx context.Context, proposalID int64) (bool, error) {
	logger := application.ResolveLogger(uc.Logger)

	lock := uc.proposalLock(proposalID)
	lock.Lock()
	defer lock.Unlock()

	comments, err := uc.Comments.ListActiveByProposal(ctx, proposalID)
	if err != nil {
		return false, err
	}
	summary, calculated := entities.CalculateStatus(comments)

	proposal, err := uc.Proposals.GetProposalByID(ctx, proposalID)
	if err != nil {
		return false, err
	}
	if proposal.Status == calculated {
		logger.Info("proposal status already in sync",
			"event", "evaluation_status_sync_noop",
			"module", "internship-program/evaluation-engine",
			"layer", "application",
			"proposal_id", proposalID,
			"status", string(calculated),
		)
		return false, nil
	}

	if err := uc.Proposals.UpdateProposalStatus(ctx, proposalID, calculated); err != nil {
		return false, err
	}
	logger.Info("proposal status synchronized",
		"event", "evaluation_status_synced",
		"module", "internship-program/evaluation-engine",
		"layer", "application",
		"proposal_id", proposalID,
		"previous_status", string(proposal.Status),
		"status", string(calculated),
		"total_votes", summary.TotalVotes,
		"general_approval", summary.GeneralApproval,
		"general_rejection", summary.GeneralRejection,
	)
	return true, nil
}

// syncAfterWrite runs status synchronization after a successful comment write.
// The comment is the operation of record: sync failures are logged and folded
// into the result, never propagated to the caller.
func (uc *SyncUseCase) syncAfterWrite(ctx context.Context, proposalID int64) bool {
	logger := application.ResolveLogger(uc.Logger)
	if _, err := uc.SyncStatus(ctx, proposalID); err != nil {
		logger.Error("status sync after comment write failed",
			"event", "evaluation_status_sync_failed",
			"module", "internship-program/evaluation-engine",
			"layer", "application",
			"proposal_id", proposalID,
			"error", err.Error(),
		)
		return false
	}
	return true
}

func (uc *SyncUseCase) proposalLock(proposalID int64) *sync.Mutex {
	value, _ := uc.locks.LoadOrStore(proposalID, &sync.Mutex{})
	return value.(*sync.Mutex)
}
