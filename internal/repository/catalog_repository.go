package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"kitesurf/internal/model"
)

// CatalogRepository reads lesson packages and locations.
type CatalogRepository interface {
	ListPackages(ctx context.Context) ([]model.Package, error)
	ListLocations(ctx context.Context) ([]model.Location, error)
	FindPackage(ctx context.Context, id uint) (*model.Package, error)
	FindLocation(ctx context.Context, id uint) (*model.Location, error)
	// UpsertPackage inserts p or updates the row with the same name.
	UpsertPackage(ctx context.Context, p *model.Package) error
	// UpsertLocation inserts l or updates the row with the same name.
	UpsertLocation(ctx context.Context, l *model.Location) error
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) ListPackages(ctx context.Context) ([]model.Package, error) {
	var packages []model.Package
	if err := r.db.WithContext(ctx).Order("price ASC, id ASC").Find(&packages).Error; err != nil {
		return nil, err
	}
	return packages, nil
}

func (r *catalogRepository) ListLocations(ctx context.Context) ([]model.Location, error) {
	var locations []model.Location
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *catalogRepository) FindPackage(ctx context.Context, id uint) (*model.Package, error) {
	var p model.Package
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *catalogRepository) FindLocation(ctx context.Context, id uint) (*model.Location, error) {
	var l model.Location
	if err := r.db.WithContext(ctx).First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *catalogRepository) UpsertPackage(ctx context.Context, p *model.Package) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"description", "price", "duration_hours", "max_persons", "num_sessions"}),
	}).Create(p).Error
}

func (r *catalogRepository) UpsertLocation(ctx context.Context, l *model.Location) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"address"}),
	}).Create(l).Error
}
