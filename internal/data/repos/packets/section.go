package packets

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/data/db"
	types "github.com/support371/Asset-Packet/internal/domain"
	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type SectionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, sections []*types.Section) ([]*types.Section, error)
}

type sectionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSectionRepo(db *gorm.DB, baseLog *logger.Logger) SectionRepo {
	repoLog := baseLog.With("repo", "SectionRepo")
	return &sectionRepo{db: db, log: repoLog}
}

// Create inserts sections. A section whose packet does not exist is
// rejected by the store and reported as ErrForeignKeyViolation.
func (r *sectionRepo) Create(ctx context.Context, tx *gorm.DB, sections []*types.Section) ([]*types.Section, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(sections) == 0 {
		return []*types.Section{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&sections).Error; err != nil {
		if db.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("section packet: %w: %w", pkgerrors.ErrForeignKeyViolation, err)
		}
		return nil, err
	}
	return sections, nil
}
