package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/support371/Asset-Packet/internal/clients/redis"
	"github.com/support371/Asset-Packet/internal/data/db"
	"github.com/support371/Asset-Packet/internal/data/repos"
	types "github.com/support371/Asset-Packet/internal/domain"
	"github.com/support371/Asset-Packet/internal/domain/audit"
	"github.com/support371/Asset-Packet/internal/domain/packets"
	"github.com/support371/Asset-Packet/internal/observability"
	pkgerrors "github.com/support371/Asset-Packet/internal/pkg/errors"
	"github.com/support371/Asset-Packet/internal/platform/logger"
)

type CreatePacketInput struct {
	Title          string          `json:"title"`
	Description    *string         `json:"description"`
	Meta           json.RawMessage `json:"meta"`
	OrganizationID *uint           `json:"organizationId"`
}

type CreateSectionInput struct {
	Title   string          `json:"title"`
	Type    string          `json:"type"`
	Content *string         `json:"content"`
	Data    json.RawMessage `json:"data"`
	Order   int             `json:"order"`
}

type PacketService interface {
	ListPackets(ctx context.Context) ([]*types.Packet, error)
	// GetPacket returns the packet with its sections in reading order, or
	// an error wrapping ErrNotFound.
	GetPacket(ctx context.Context, id uint) (*types.PacketWithSections, error)
	CreatePacket(ctx context.Context, in CreatePacketInput) (*types.Packet, error)
	// CreateSection fails with an error matching both ErrNotFound and
	// ErrForeignKeyViolation when the packet does not exist.
	CreateSection(ctx context.Context, packetID uint, in CreateSectionInput) (*types.Section, error)
	ExportMarkdown(ctx context.Context, id uint) (string, error)
}

type packetService struct {
	db          *gorm.DB
	log         *logger.Logger
	packetRepo  repos.PacketRepo
	sectionRepo repos.SectionRepo
	audit       AuditService
	cache       redis.PacketCache
	metrics     *observability.Metrics
	group       singleflight.Group

	genMu sync.Mutex
	gens  map[uint]uint64
}

// packetLoadTimeout bounds a shared store read, which no longer follows
// any single caller's cancellation.
const packetLoadTimeout = 15 * time.Second

// noCacheVersion marks a read that must not populate the cache.
const noCacheVersion int64 = -1

// NewPacketService wires the aggregation service. cache and metrics may
// be nil.
func NewPacketService(
	db *gorm.DB,
	baseLog *logger.Logger,
	packetRepo repos.PacketRepo,
	sectionRepo repos.SectionRepo,
	auditService AuditService,
	cache redis.PacketCache,
	metrics *observability.Metrics,
) PacketService {
	return &packetService{
		db:          db,
		log:         baseLog.With("service", "PacketService"),
		packetRepo:  packetRepo,
		sectionRepo: sectionRepo,
		audit:       auditService,
		cache:       cache,
		metrics:     metrics,
		gens:        map[uint]uint64{},
	}
}

func (s *packetService) ListPackets(ctx context.Context) ([]*types.Packet, error) {
	return s.packetRepo.List(ctx, nil)
}

// GetPacket reads through the cache. Concurrent misses for one packet
// share a single store read, but each caller stops waiting on its own
// cancellation without failing the others.
func (s *packetService) GetPacket(ctx context.Context, id uint) (*types.PacketWithSections, error) {
	version := noCacheVersion
	if s.cache != nil {
		v, err := s.cache.Version(ctx, id)
		if err != nil {
			s.log.Warn("packet cache version read failed; bypassing cache", "packet_id", id, "error", err)
		} else {
			version = v
			cached, ok, err := s.cache.Get(ctx, id, version)
			if err != nil {
				s.log.Warn("packet cache read failed; falling back to store", "packet_id", id, "error", err)
			} else if ok {
				s.metrics.IncPacketCache(true)
				return cached, nil
			}
			s.metrics.IncPacketCache(false)
		}
	}

	// A write bumps the generation, so readers arriving after it never
	// join a flight that started before it.
	key := fmt.Sprintf("%d:%d:%d", id, version, s.generation(id))
	ch := s.group.DoChan(key, func() (interface{}, error) {
		loadCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), packetLoadTimeout)
		defer cancel()
		return s.loadPacket(loadCtx, id, version)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*types.PacketWithSections), nil
	}
}

// loadPacket reads the store and caches the result under the version
// observed before the read. An invalidation during the read moves readers
// to a newer version, leaving this entry unreachable.
func (s *packetService) loadPacket(ctx context.Context, id uint, version int64) (*types.PacketWithSections, error) {
	p, err := s.packetRepo.GetWithSections(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil && version != noCacheVersion {
		if err := s.cache.Set(ctx, version, p); err != nil {
			s.log.Warn("packet cache write failed", "packet_id", id, "error", err)
		}
	}
	return p, nil
}

func (s *packetService) generation(id uint) uint64 {
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.gens[id]
}

// packetChanged runs after a committed write to the packet's aggregate.
func (s *packetService) packetChanged(ctx context.Context, id uint) {
	s.genMu.Lock()
	s.gens[id]++
	s.genMu.Unlock()

	if s.cache != nil {
		if err := s.cache.Invalidate(context.WithoutCancel(ctx), id); err != nil {
			s.log.Warn("packet cache invalidate failed", "packet_id", id, "error", err)
		}
	}
}

func (s *packetService) CreatePacket(ctx context.Context, in CreatePacketInput) (*types.Packet, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", pkgerrors.ErrInvalidArgument)
	}
	meta, err := normalizeMeta(in.Meta)
	if err != nil {
		return nil, err
	}
	p := &types.Packet{
		Title:          title,
		Description:    in.Description,
		Meta:           meta,
		CreatedAt:      time.Now().UTC(),
		OrganizationID: in.OrganizationID,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.packetRepo.Create(ctx, tx, []*types.Packet{p}); err != nil {
			if db.IsForeignKeyViolation(err) {
				return fmt.Errorf("%w: unknown organization", pkgerrors.ErrInvalidArgument)
			}
			return fmt.Errorf("create packet: %w", err)
		}
		entityID := p.ID
		return s.audit.Record(ctx, tx, &types.AuditLog{
			OrganizationID: p.OrganizationID,
			Action:         audit.ActionPacketCreated,
			EntityType:     "packet",
			EntityID:       &entityID,
			Details:        auditDetails(map[string]any{"title": p.Title}),
		})
	})
	if err != nil {
		s.metrics.IncPacketWrite("packet", "error")
		return nil, err
	}
	s.metrics.IncPacketWrite("packet", "ok")
	s.log.Info("Packet created", "packet_id", p.ID)
	return p, nil
}

func (s *packetService) CreateSection(ctx context.Context, packetID uint, in CreateSectionInput) (*types.Section, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", pkgerrors.ErrInvalidArgument)
	}
	sectionType, err := packets.ParseSectionType(in.Type)
	if err != nil {
		return nil, err
	}
	payload, err := packets.BuildPayload(sectionType, in.Content, in.Data)
	if err != nil {
		return nil, err
	}
	section, err := types.NewSection(packetID, title, in.Order, payload)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.sectionRepo.Create(ctx, tx, []*types.Section{section}); err != nil {
			if errors.Is(err, pkgerrors.ErrForeignKeyViolation) {
				return fmt.Errorf("packet %d: %w: %w", packetID, pkgerrors.ErrNotFound, err)
			}
			return fmt.Errorf("create section: %w", err)
		}
		parent, err := s.packetRepo.GetByID(ctx, tx, packetID)
		if err != nil {
			return err
		}
		entityID := section.ID
		return s.audit.Record(ctx, tx, &types.AuditLog{
			OrganizationID: parent.OrganizationID,
			Action:         audit.ActionSectionCreated,
			EntityType:     "section",
			EntityID:       &entityID,
			Details: auditDetails(map[string]any{
				"packetId": packetID,
				"type":     string(section.Type),
				"order":    section.Order,
			}),
		})
	})
	if err != nil {
		s.metrics.IncPacketWrite("section", "error")
		return nil, err
	}
	s.metrics.IncPacketWrite("section", "ok")

	s.packetChanged(ctx, packetID)
	s.log.Info("Section created", "packet_id", packetID, "section_id", section.ID, "type", section.Type)
	return section, nil
}

func (s *packetService) ExportMarkdown(ctx context.Context, id uint) (string, error) {
	p, err := s.GetPacket(ctx, id)
	if err != nil {
		return "", err
	}
	return RenderMarkdown(p), nil
}

// normalizeMeta accepts an absent/null bag or any JSON object.
func normalizeMeta(raw json.RawMessage) (datatypes.JSON, error) {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(trimmed), &obj); err != nil {
		return nil, fmt.Errorf("%w: meta must be a JSON object", pkgerrors.ErrInvalidArgument)
	}
	return datatypes.JSON(trimmed), nil
}

func auditDetails(v map[string]any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return datatypes.JSON(b)
}
