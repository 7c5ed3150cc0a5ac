package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pasantias/contexts/internship-program/evaluation-engine/domain/entities"
	domainerrors "pasantias/contexts/internship-program/evaluation-engine/domain/errors"
	"pasantias/contexts/internship-program/evaluation-engine/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) SaveComment(ctx context.Context, comment entities.Comment) (entities.Comment, error) {
	row := commentModelFromEntity(comment)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Comment{}, domainerrors.ErrVoteConflict
		}
		return entities.Comment{}, r.logError("evaluation_repo_save_comment_failed", err,
			"comment_uuid", row.UUID,
			"proposal_id", comment.ProposalID,
			"tutor_id", comment.TutorID,
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateComment(ctx context.Context, comment entities.Comment) error {
	result := r.db.WithContext(ctx).
		Model(&commentModel{}).
		Where("uuid = ?", strings.TrimSpace(comment.UUID)).
		Updates(map[string]any{
			"comment_text": comment.Text,
			"vote_status":  string(comment.Vote),
			"updated_at":   comment.UpdatedAt.UTC(),
		})
	if result.Error != nil {
		return r.logError("evaluation_repo_update_comment_failed", result.Error,
			"comment_uuid", strings.TrimSpace(comment.UUID),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrCommentNotFound
	}
	return nil
}

func (r *Repository) GetComment(ctx context.Context, commentUUID string) (entities.Comment, error) {
	var row commentModel
	err := r.db.WithContext(ctx).
		Where("uuid = ?", strings.TrimSpace(commentUUID)).
		Where("active = ?", true).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comment{}, domainerrors.ErrCommentNotFound
		}
		return entities.Comment{}, r.logError("evaluation_repo_get_comment_failed", err,
			"comment_uuid", strings.TrimSpace(commentUUID),
		)
	}
	return row.toEntity(), nil
}

func (r *Repository) ListActiveByProposal(ctx context.Context, proposalID int64) ([]entities.Comment, error) {
	var rows []commentModel
	if err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("evaluation_repo_list_by_proposal_failed", err,
			"proposal_id", proposalID,
		)
	}
	return toCommentEntities(rows), nil
}

func (r *Repository) ListByTutor(ctx context.Context, tutorID int64) ([]entities.Comment, error) {
	var rows []commentModel
	if err := r.db.WithContext(ctx).
		Where("tutor_id = ?", tutorID).
		Where("active = ?", true).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("evaluation_repo_list_by_tutor_failed", err,
			"tutor_id", tutorID,
		)
	}
	return toCommentEntities(rows), nil
}

func (r *Repository) FindBySection(
	ctx context.Context,
	proposalID int64,
	tutorID int64,
	sectionName string,
) (entities.Comment, bool, error) {
	var row commentModel
	err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Where("tutor_id = ?", tutorID).
		Where("section_name = ?", strings.TrimSpace(sectionName)).
		Where("active = ?", true).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comment{}, false, nil
		}
		return entities.Comment{}, false, r.logError("evaluation_repo_find_by_section_failed", err,
			"proposal_id", proposalID,
			"tutor_id", tutorID,
			"section", strings.TrimSpace(sectionName),
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) FindFinalVote(
	ctx context.Context,
	proposalID int64,
	tutorID int64,
) (entities.Comment, bool, error) {
	var row commentModel
	err := r.db.WithContext(ctx).
		Where("proposal_id = ?", proposalID).
		Where("tutor_id = ?", tutorID).
		Where("vote_status IN ?", []string{string(entities.VoteAccepted), string(entities.VoteRejected)}).
		Where("active = ?", true).
		Order("created_at DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comment{}, false, nil
		}
		return entities.Comment{}, false, r.logError("evaluation_repo_find_final_vote_failed", err,
			"proposal_id", proposalID,
			"tutor_id", tutorID,
		)
	}
	return row.toEntity(), true, nil
}

func (r *Repository) CountActiveByTutor(ctx context.Context, proposalID int64, tutorID int64) (int, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&commentModel{}).
		Where("proposal_id = ?", proposalID).
		Where("tutor_id = ?", tutorID).
		Where("active = ?", true).
		Count(&count).Error; err != nil {
		return 0, r.logError("evaluation_repo_count_by_tutor_failed", err,
			"proposal_id", proposalID,
			"tutor_id", tutorID,
		)
	}
	return int(count), nil
}

func (r *Repository) GetProposalByUUID(ctx context.Context, proposalUUID string) (ports.ProposalProjection, error) {
	var row proposalProjectionModel
	err := r.db.WithContext(ctx).
		Where("uuid = ?", strings.TrimSpace(proposalUUID)).
		Where("active = ?", true).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ProposalProjection{}, domainerrors.ErrProposalNotFound
		}
		return ports.ProposalProjection{}, r.logError("evaluation_repo_get_proposal_failed", err,
			"proposal_uuid", strings.TrimSpace(proposalUUID),
		)
	}
	return row.toProjection(), nil
}

func (r *Repository) GetProposalByID(ctx context.Context, proposalID int64) (ports.ProposalProjection, error) {
	var row proposalProjectionModel
	err := r.db.WithContext(ctx).
		Where("id = ?", proposalID).
		Where("active = ?", true).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ProposalProjection{}, domainerrors.ErrProposalNotFound
		}
		return ports.ProposalProjection{}, r.logError("evaluation_repo_get_proposal_by_id_failed", err,
			"proposal_id", proposalID,
		)
	}
	return row.toProjection(), nil
}

func (r *Repository) UpdateProposalStatus(
	ctx context.Context,
	proposalID int64,
	status entities.ProposalStatus,
) error {
	result := r.db.WithContext(ctx).
		Model(&proposalProjectionModel{}).
		Where("id = ?", proposalID).
		Updates(map[string]any{
			"proposal_status": string(status),
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return r.logError("evaluation_repo_update_proposal_status_failed", result.Error,
			"proposal_id", proposalID,
			"status", string(status),
		)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProposalNotFound
	}
	return nil
}

func (r *Repository) GetActiveConvocatoria(ctx context.Context) (ports.ConvocatoriaProjection, bool, error) {
	var row convocatoriaProjectionModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("fecha_limite >= ?", time.Now().UTC()).
		Order("fecha_limite DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ConvocatoriaProjection{}, false, nil
		}
		return ports.ConvocatoriaProjection{}, false, r.logError("evaluation_repo_get_active_convocatoria_failed", err)
	}
	return ports.ConvocatoriaProjection{
		ConvocatoriaID: row.ID,
		UUID:           row.UUID,
	}, true, nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "internship-program/evaluation-engine",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("evaluation repository operation failed", fields...)
	return err
}

type commentModel struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UUID           string    `gorm:"column:uuid"`
	ProposalID     int64     `gorm:"column:proposal_id"`
	TutorID        int64     `gorm:"column:tutor_id"`
	SectionName    string    `gorm:"column:section_name"`
	SubsectionName string    `gorm:"column:subsection_name"`
	Text           string    `gorm:"column:comment_text"`
	Vote           string    `gorm:"column:vote_status"`
	Active         bool      `gorm:"column:active"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (commentModel) TableName() string {
	return "proposal_comments"
}

func commentModelFromEntity(comment entities.Comment) commentModel {
	row := commentModel{
		ID:             comment.ID,
		UUID:           strings.TrimSpace(comment.UUID),
		ProposalID:     comment.ProposalID,
		TutorID:        comment.TutorID,
		SectionName:    strings.TrimSpace(comment.SectionName),
		SubsectionName: strings.TrimSpace(comment.SubsectionName),
		Text:           strings.TrimSpace(comment.Text),
		Vote:           string(comment.Vote),
		Active:         comment.Active,
		CreatedAt:      comment.CreatedAt.UTC(),
		UpdatedAt:      comment.UpdatedAt.UTC(),
	}
	if row.UUID == "" {
		row.UUID = uuid.NewString()
	}
	if row.CreatedAt.IsZero() {
		row.CreatedAt = time.Now().UTC()
	}
	if row.UpdatedAt.IsZero() {
		row.UpdatedAt = row.CreatedAt
	}
	return row
}

func (m commentModel) toEntity() entities.Comment {
	return entities.Comment{
		ID:             m.ID,
		UUID:           m.UUID,
		ProposalID:     m.ProposalID,
		TutorID:        m.TutorID,
		SectionName:    m.SectionName,
		SubsectionName: m.SubsectionName,
		Text:           m.Text,
		Vote:           entities.Vote(m.Vote),
		Scope:          entities.ClassifyScope(m.SectionName, m.SubsectionName),
		Active:         m.Active,
		CreatedAt:      m.CreatedAt.UTC(),
		UpdatedAt:      m.UpdatedAt.UTC(),
	}
}

type proposalProjectionModel struct {
	ID             int64  `gorm:"column:id;primaryKey"`
	UUID           string `gorm:"column:uuid"`
	ConvocatoriaID int64  `gorm:"column:convocatoria_id"`
	Status         string `gorm:"column:proposal_status"`
}

func (proposalProjectionModel) TableName() string {
	return "project_proposals"
}

func (m proposalProjectionModel) toProjection() ports.ProposalProjection {
	return ports.ProposalProjection{
		ProposalID:     m.ID,
		UUID:           m.UUID,
		ConvocatoriaID: m.ConvocatoriaID,
		Status:         entities.ProposalStatus(m.Status),
	}
}

type convocatoriaProjectionModel struct {
	ID   int64  `gorm:"column:id;primaryKey"`
	UUID string `gorm:"column:uuid"`
}

func (convocatoriaProjectionModel) TableName() string {
	return "convocatorias"
}

func toCommentEntities(rows []commentModel) []entities.Comment {
	items := make([]entities.Comment, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

var _ ports.CommentRepository = (*Repository)(nil)
var _ ports.ProposalGateway = (*Repository)(nil)
var _ ports.ConvocatoriaGateway = (*Repository)(nil)
