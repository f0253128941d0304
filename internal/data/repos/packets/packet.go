package packets

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/support371/Asset-Packet/internal/domain"
	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type PacketRepo interface {
	Create(ctx context.Context, tx *gorm.DB, packets []*types.Packet) ([]*types.Packet, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Packet, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Packet, error)
	GetWithSections(ctx context.Context, tx *gorm.DB, id uint) (*types.PacketWithSections, error)
}

type packetRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPacketRepo(db *gorm.DB, baseLog *logger.Logger) PacketRepo {
	repoLog := baseLog.With("repo", "PacketRepo")
	return &packetRepo{db: db, log: repoLog}
}

func (r *packetRepo) Create(ctx context.Context, tx *gorm.DB, packets []*types.Packet) ([]*types.Packet, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(packets) == 0 {
		return []*types.Packet{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&packets).Error; err != nil {
		return nil, err
	}
	return packets, nil
}

// List returns every packet in ascending id order. Store order is not
// otherwise guaranteed, so the order is pinned here.
func (r *packetRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Packet, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	results := []*types.Packet{}
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *packetRepo) GetByID(ctx context.Context, tx *gorm.DB, id uint) (*types.Packet, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var p types.Packet
	err := transaction.WithContext(ctx).
		Where("id = ?", id).
		Limit(1).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("packet %d: %w", id, pkgerrors.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// GetWithSections reads the packet and then its sections in two queries.
// A section written between the two reads may or may not be included.
func (r *packetRepo) GetWithSections(ctx context.Context, tx *gorm.DB, id uint) (*types.PacketWithSections, error) {
	p, err := r.GetByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	sections := []*types.Section{}
	if err := transaction.WithContext(ctx).
		Where("packet_id = ?", id).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "order"}}).
		Order("id ASC").
		Find(&sections).Error; err != nil {
		return nil, err
	}
	return types.ComposePacket(p, sections), nil
}
