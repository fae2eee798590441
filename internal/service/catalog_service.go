package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kitesurf/internal/cache"
	apperrors "kitesurf/internal/errors"
	"kitesurf/internal/model"
	"kitesurf/internal/repository"
)

const (
	packagesCacheKey  = "catalog:packages"
	locationsCacheKey = "catalog:locations"
)

// CatalogService reads lesson packages and locations.
type CatalogService interface {
	ListPackages(ctx context.Context) ([]model.Package, error)
	ListLocations(ctx context.Context) ([]model.Location, error)
	// Seed upserts packages and locations by name and drops cached lists.
	Seed(ctx context.Context, packages []model.Package, locations []model.Location) error
}

type catalogService struct {
	store  repository.Store
	cache  *cache.Client
	opts   Options
	logger *zap.Logger
}

// NewCatalogService creates a new catalog service. cache may be nil.
func NewCatalogService(store repository.Store, cache *cache.Client, opts Options, logger *zap.Logger) CatalogService {
	return &catalogService{
		store:  store,
		cache:  cache,
		opts:   opts,
		logger: logger.Named("catalog"),
	}
}

// ListPackages returns all packages, cheapest first.
func (s *catalogService) ListPackages(ctx context.Context) ([]model.Package, error) {
	var packages []model.Package
	if s.cache.GetJSON(ctx, packagesCacheKey, &packages) {
		return packages, nil
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	packages, err := s.store.Catalog().ListPackages(ctx)
	if err != nil {
		s.logger.Error("list packages", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCatalogUnavailable, apperrors.Classify(err))
	}
	s.cache.SetJSON(ctx, packagesCacheKey, packages, s.opts.CacheTTL)
	return packages, nil
}

// ListLocations returns all locations ordered by name.
func (s *catalogService) ListLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if s.cache.GetJSON(ctx, locationsCacheKey, &locations) {
		return locations, nil
	}

	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	locations, err := s.store.Catalog().ListLocations(ctx)
	if err != nil {
		s.logger.Error("list locations", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", apperrors.ErrCatalogUnavailable, apperrors.Classify(err))
	}
	s.cache.SetJSON(ctx, locationsCacheKey, locations, s.opts.CacheTTL)
	return locations, nil
}

func (s *catalogService) Seed(ctx context.Context, packages []model.Package, locations []model.Location) error {
	ctx, cancel := s.opts.withTimeout(ctx)
	defer cancel()

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		for i := range packages {
			if err := tx.Catalog().UpsertPackage(ctx, &packages[i]); err != nil {
				return fmt.Errorf("upsert package %q: %w", packages[i].Name, err)
			}
		}
		for i := range locations {
			if err := tx.Catalog().UpsertLocation(ctx, &locations[i]); err != nil {
				return fmt.Errorf("upsert location %q: %w", locations[i].Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.Classify(err)
	}
	_ = s.cache.Delete(ctx, packagesCacheKey, locationsCacheKey)
	s.logger.Info("catalog seeded", zap.Int("packages", len(packages)), zap.Int("locations", len(locations)))
	return nil
}
