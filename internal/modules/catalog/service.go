package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Service defines catalog item business logic.
type Service interface {
	ListItems(ctx context.Context) ([]*CatalogItem, error)
	GetItem(ctx context.Context, id string) (*CatalogItem, error)
	CreateItem(ctx context.Context, req CreateItemRequest) (*CatalogItem, error)
	UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*CatalogItem, error)
	DeleteItem(ctx context.Context, id string) error
}

// Options tune service behavior.
type Options struct {
	// MergeSpecifications makes a partial update overlay the supplied
	// extension fields onto the stored specifications blob. When off (the
	// default, matching the historical behavior) the blob is replaced
	// wholesale, so an update that touches no extension field wipes them all.
	MergeSpecifications bool
}

type service struct {
	repo Repository
	opts Options
	now  func() time.Time
}

// NewService creates a new catalog service around an injected repository.
func NewService(repo Repository, opts Options) Service {
	return &service{repo: repo, opts: opts, now: time.Now}
}

func (s *service) ListItems(ctx context.Context) ([]*CatalogItem, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]*CatalogItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, fromStorage(row))
	}
	return items, nil
}

func (s *service) GetItem(ctx context.Context, id string) (*CatalogItem, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return fromStorage(row), nil
}

func (s *service) CreateItem(ctx context.Context, req CreateItemRequest) (*CatalogItem, error) {
	if violations := req.Validate(); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	now := s.now().UTC()
	row := toStorageCreate(req, now)
	row[colID] = uuid.NewString()
	row[colCreatedAt] = now
	inserted, err := s.repo.Insert(ctx, row)
	if err != nil {
		return nil, err
	}
	return fromStorage(inserted), nil
}

func (s *service) UpdateItem(ctx context.Context, id string, req UpdateItemRequest) (*CatalogItem, error) {
	row := toStorageUpdate(req, s.now().UTC())
	if s.opts.MergeSpecifications {
		// read-merge-write; not atomic, concurrent updates last-write-win
		existing, err := s.repo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		row[colSpecifications] = mergeSpecifications(existing[colSpecifications], req.extensionFields())
	}
	updated, err := s.repo.Update(ctx, id, row)
	if err != nil {
		return nil, err
	}
	return fromStorage(updated), nil
}

func (s *service) DeleteItem(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
