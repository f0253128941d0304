package org

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	types "github.com/support371/Asset-Packet/internal/domain"
	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type UserRepo interface {
	Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error)
	GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error)
	ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (r *userRepo) Create(ctx context.Context, tx *gorm.DB, users []*types.User) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(users) == 0 {
		return []*types.User{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepo) GetByEmail(ctx context.Context, tx *gorm.DB, email string) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var u types.User
	err := transaction.WithContext(ctx).Where("email = ?", email).Limit(1).Take(&u).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("user: %w", pkgerrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ListByOrganization(ctx context.Context, tx *gorm.DB, orgID uint) ([]*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.User{}
	if err := transaction.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
