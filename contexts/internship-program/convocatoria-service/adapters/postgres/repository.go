package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"pasantias/contexts/internship-program/convocatoria-service/domain/entities"
	domainerrors "pasantias/contexts/internship-program/convocatoria-service/domain/errors"
	"pasantias/contexts/internship-program/convocatoria-service/ports"

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

// SaveConvocatoria persists the call together with its type list and tutor
// roster. The partial unique index on active rows enforces the single-active
// invariant; a violation surfaces as ErrConvocatoriaConflict.
func (r *Repository) SaveConvocatoria(
	ctx context.Context,
	convocatoria entities.Convocatoria,
) (entities.Convocatoria, error) {
	row := convocatoriaModelFromEntity(convocatoria)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, name := range convocatoria.InternshipTypes {
			typeRow := internshipTypeModel{
				ConvocatoriaID: row.ID,
				TypeName:       name,
			}
			if err := tx.Create(&typeRow).Error; err != nil {
				return err
			}
		}
		for _, tutor := range convocatoria.AvailableTutors {
			tutorRow := convocatoriaTutorModel{
				ConvocatoriaID: row.ID,
				TutorID:        tutor.ID,
				TutorName:      tutor.Name,
				TutorEmail:     tutor.Email,
			}
			if err := tx.Create(&tutorRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return entities.Convocatoria{}, domainerrors.ErrConvocatoriaConflict
		}
		return entities.Convocatoria{}, r.logError("convocatoria_repo_save_failed", err,
			"convocatoria_uuid", row.UUID,
		)
	}
	saved := convocatoria
	saved.ID = row.ID
	saved.UUID = row.UUID
	return saved, nil
}

// UpdateConvocatoria rewrites the editable columns of an existing call. The
// type list and tutor roster are fixed at creation and are not touched here.
func (r *Repository) UpdateConvocatoria(
	ctx context.Context,
	convocatoria entities.Convocatoria,
) (entities.Convocatoria, error) {
	result := r.db.WithContext(ctx).
		Model(&convocatoriaModel{}).
		Where("uuid = ?", convocatoria.UUID).
		Updates(map[string]any{
			"name":         convocatoria.Name,
			"description":  convocatoria.Description,
			"fecha_limite": convocatoria.Deadline,
			"updated_at":   convocatoria.UpdatedAt,
		})
	if result.Error != nil {
		return entities.Convocatoria{}, r.logError("convocatoria_repo_update_failed", result.Error,
			"convocatoria_uuid", convocatoria.UUID,
		)
	}
	if result.RowsAffected == 0 {
		return entities.Convocatoria{}, domainerrors.ErrConvocatoriaNotFound
	}
	return convocatoria, nil
}

func (r *Repository) GetConvocatoria(ctx context.Context, convocatoriaUUID string) (entities.Convocatoria, error) {
	var row convocatoriaModel
	err := r.db.WithContext(ctx).
		Where("uuid = ?", strings.TrimSpace(convocatoriaUUID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Convocatoria{}, domainerrors.ErrConvocatoriaNotFound
		}
		return entities.Convocatoria{}, r.logError("convocatoria_repo_get_failed", err,
			"convocatoria_uuid", strings.TrimSpace(convocatoriaUUID),
		)
	}
	return r.hydrate(ctx, row)
}

// GetActive returns the open call. A call whose deadline has passed no longer
// counts as active even before the expiration sweep deactivates it.
func (r *Repository) GetActive(ctx context.Context) (entities.Convocatoria, bool, error) {
	var row convocatoriaModel
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Where("fecha_limite >= ?", time.Now().UTC()).
		Order("fecha_limite DESC").
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Convocatoria{}, false, nil
		}
		return entities.Convocatoria{}, false, r.logError("convocatoria_repo_get_active_failed", err)
	}
	convocatoria, err := r.hydrate(ctx, row)
	if err != nil {
		return entities.Convocatoria{}, false, err
	}
	return convocatoria, true, nil
}

func (r *Repository) HasActive(ctx context.Context) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&convocatoriaModel{}).
		Where("active = ?", true).
		Where("fecha_limite >= ?", time.Now().UTC()).
		Count(&count).Error; err != nil {
		return false, r.logError("convocatoria_repo_has_active_failed", err)
	}
	return count > 0, nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Convocatoria, error) {
	var rows []convocatoriaModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("convocatoria_repo_list_failed", err)
	}
	items := make([]entities.Convocatoria, 0, len(rows))
	for _, row := range rows {
		convocatoria, err := r.hydrate(ctx, row)
		if err != nil {
			return nil, err
		}
		items = append(items, convocatoria)
	}
	return items, nil
}

func (r *Repository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&convocatoriaModel{}).
		Where("active = ?", true).
		Where("fecha_limite < ?", now.UTC()).
		Updates(map[string]any{
			"active":     false,
			"updated_at": now.UTC(),
		})
	if result.Error != nil {
		return 0, r.logError("convocatoria_repo_deactivate_expired_failed", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *Repository) ListEligibleTutors(ctx context.Context) ([]entities.Tutor, error) {
	var rows []eligibleTutorModel
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("tutor_name ASC").
		Find(&rows).Error; err != nil {
		return nil, r.logError("convocatoria_repo_list_eligible_tutors_failed", err)
	}
	tutors := make([]entities.Tutor, 0, len(rows))
	for _, row := range rows {
		tutors = append(tutors, entities.Tutor{
			ID:    row.ID,
			Name:  row.TutorName,
			Email: row.TutorEmail,
		})
	}
	return tutors, nil
}

func (r *Repository) hydrate(ctx context.Context, row convocatoriaModel) (entities.Convocatoria, error) {
	var typeRows []internshipTypeModel
	if err := r.db.WithContext(ctx).
		Where("convocatoria_id = ?", row.ID).
		Order("id ASC").
		Find(&typeRows).Error; err != nil {
		return entities.Convocatoria{}, r.logError("convocatoria_repo_load_types_failed", err,
			"convocatoria_uuid", row.UUID,
		)
	}
	var tutorRows []convocatoriaTutorModel
	if err := r.db.WithContext(ctx).
		Where("convocatoria_id = ?", row.ID).
		Order("id ASC").
		Find(&tutorRows).Error; err != nil {
		return entities.Convocatoria{}, r.logError("convocatoria_repo_load_tutors_failed", err,
			"convocatoria_uuid", row.UUID,
		)
	}

	types := make([]string, 0, len(typeRows))
	for _, t := range typeRows {
		types = append(types, t.TypeName)
	}
	tutors := make([]entities.Tutor, 0, len(tutorRows))
	for _, t := range tutorRows {
		tutors = append(tutors, entities.Tutor{
			ID:    t.TutorID,
			Name:  t.TutorName,
			Email: t.TutorEmail,
		})
	}
	return row.toEntity(types, tutors), nil
}

func (r *Repository) logError(event string, err error, attrs ...any) error {
	fields := make([]any, 0, len(attrs)+8)
	fields = append(fields,
		"event", event,
		"module", "internship-program/convocatoria-service",
		"layer", "adapter",
		"error", err.Error(),
	)
	fields = append(fields, attrs...)
	r.logger.Error("convocatoria repository operation failed", fields...)
	return err
}

type convocatoriaModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UUID        string    `gorm:"column:uuid"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Deadline    time.Time `gorm:"column:fecha_limite"`
	Active      bool      `gorm:"column:active"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (convocatoriaModel) TableName() string {
	return "convocatorias"
}

func convocatoriaModelFromEntity(convocatoria entities.Convocatoria) convocatoriaModel {
	row := convocatoriaModel{
		ID:          convocatoria.ID,
		UUID:        strings.TrimSpace(convocatoria.UUID),
		Name:        convocatoria.Name,
		Description: convocatoria.Description,
		Deadline:    convocatoria.Deadline.UTC(),
		Active:      convocatoria.Active,
		CreatedAt:   convocatoria.CreatedAt.UTC(),
		UpdatedAt:   convocatoria.UpdatedAt.UTC(),
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

func (m convocatoriaModel) toEntity(types []string, tutors []entities.Tutor) entities.Convocatoria {
	return entities.Convocatoria{
		ID:              m.ID,
		UUID:            m.UUID,
		Name:            m.Name,
		Description:     m.Description,
		Deadline:        m.Deadline.UTC(),
		InternshipTypes: types,
		AvailableTutors: tutors,
		Active:          m.Active,
		CreatedAt:       m.CreatedAt.UTC(),
		UpdatedAt:       m.UpdatedAt.UTC(),
	}
}

type internshipTypeModel struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ConvocatoriaID int64  `gorm:"column:convocatoria_id"`
	TypeName       string `gorm:"column:type_name"`
}

func (internshipTypeModel) TableName() string {
	return "convocatoria_internship_types"
}

type convocatoriaTutorModel struct {
	ID             int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ConvocatoriaID int64  `gorm:"column:convocatoria_id"`
	TutorID        int64  `gorm:"column:tutor_id"`
	TutorName      string `gorm:"column:tutor_name"`
	TutorEmail     string `gorm:"column:tutor_email"`
}

func (convocatoriaTutorModel) TableName() string {
	return "convocatoria_tutors"
}

type eligibleTutorModel struct {
	ID         int64  `gorm:"column:id;primaryKey"`
	TutorName  string `gorm:"column:tutor_name"`
	TutorEmail string `gorm:"column:tutor_email"`
	Active     bool   `gorm:"column:active"`
}

func (eligibleTutorModel) TableName() string {
	return "tutors"
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

var _ ports.ConvocatoriaRepository = (*Repository)(nil)
var _ ports.TutorDirectory = (*Repository)(nil)
