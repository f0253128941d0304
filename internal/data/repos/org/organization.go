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

type OrganizationRepo interface {
	Create(ctx context.Context, tx *gorm.DB, orgs []*types.Organization) ([]*types.Organization, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Organization, error)
	GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Organization, error)
	First(ctx context.Context, tx *gorm.DB) (*types.Organization, error)
}

type organizationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrganizationRepo(db *gorm.DB, baseLog *logger.Logger) OrganizationRepo {
	repoLog := baseLog.With("repo", "OrganizationRepo")
	return &organizationRepo{db: db, log: repoLog}
}

func (r *organizationRepo) Create(ctx context.Context, tx *gorm.DB, orgs []*types.Organization) ([]*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(orgs) == 0 {
		return []*types.Organization{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

func (r *organizationRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Organization, error) {
	return r.take(ctx, tx, "id = ?", id)
}

func (r *organizationRepo) GetBySlug(ctx context.Context, tx *gorm.DB, slug string) (*types.Organization, error) {
	return r.take(ctx, tx, "slug = ?", slug)
}

// First returns the lowest-id organization, the default tenant.
func (r *organizationRepo) First(ctx context.Context, tx *gorm.DB) (*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var o types.Organization
	err := transaction.WithContext(ctx).Order("id ASC").Limit(1).Take(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("organization: %w", pkgerrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *organizationRepo) take(ctx context.Context, tx *gorm.DB, query string, arg interface{}) (*types.Organization, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var o types.Organization
	err := transaction.WithContext(ctx).Where(query, arg).Limit(1).Take(&o).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("organization %v: %w", arg, pkgerrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}
