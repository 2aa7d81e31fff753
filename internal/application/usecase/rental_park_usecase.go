package usecase

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/listing"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/cache"
)

// RentalParkUseCase casos de uso de Mietparks.
type RentalParkUseCase struct {
	repo    repository.RentalParkRepository
	lookups *LookupService
	cache   *cache.QueryCache
}

// NewRentalParkUseCase construye el caso de uso.
func NewRentalParkUseCase(repo repository.RentalParkRepository, lookups *LookupService, c *cache.QueryCache) *RentalParkUseCase {
	return &RentalParkUseCase{repo: repo, lookups: lookups, cache: c}
}

func (uc *RentalParkUseCase) List(ctx context.Context) ([]entity.RentalPark, error) {
	return uc.lookups.Parks(ctx)
}

func (uc *RentalParkUseCase) Create(ctx context.Context, in form.ParkDraft) (*entity.RentalPark, error) {
	p, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(keyParks)
	return saved, nil
}

func (uc *RentalParkUseCase) Update(ctx context.Context, id int64, in form.ParkDraft) (*entity.RentalPark, error) {
	p, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Update(ctx, id, p)
	if err != nil {
		return nil, err
	}
	cache.Patch(uc.cache, keyParks, func(l listing.List[entity.RentalPark]) listing.List[entity.RentalPark] {
		next, _ := l.Replace(*saved)
		return next
	})
	return saved, nil
}

func (uc *RentalParkUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.Patch(uc.cache, keyParks, func(l listing.List[entity.RentalPark]) listing.List[entity.RentalPark] {
		next, _ := l.Remove(id)
		return next
	})
	return nil
}
