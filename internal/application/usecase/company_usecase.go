package usecase

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/listing"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/cache"
)

// CompanyUseCase casos de uso de Firmen.
type CompanyUseCase struct {
	repo    repository.CompanyRepository
	lookups *LookupService
	cache   *cache.QueryCache
}

// NewCompanyUseCase construye el caso de uso con el puerto del backend.
func NewCompanyUseCase(repo repository.CompanyRepository, lookups *LookupService, c *cache.QueryCache) *CompanyUseCase {
	return &CompanyUseCase{repo: repo, lookups: lookups, cache: c}
}

// List lista las firmas.
func (uc *CompanyUseCase) List(ctx context.Context) ([]entity.Company, error) {
	return uc.lookups.Companies(ctx)
}

// Create valida el borrador y crea la firma. Un borrador inválido no llega al backend.
func (uc *CompanyUseCase) Create(ctx context.Context, in form.CompanyDraft) (*entity.Company, error) {
	c, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(keyCompanies)
	return saved, nil
}

// Update reemplaza la firma en la lista cacheada.
func (uc *CompanyUseCase) Update(ctx context.Context, id int64, in form.CompanyDraft) (*entity.Company, error) {
	c, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Update(ctx, id, c)
	if err != nil {
		return nil, err
	}
	cache.Patch(uc.cache, keyCompanies, func(l listing.List[entity.Company]) listing.List[entity.Company] {
		next, _ := l.Replace(*saved)
		return next
	})
	return saved, nil
}

// Delete borra la firma; si falla, la lista cacheada no cambia.
func (uc *CompanyUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	cache.Patch(uc.cache, keyCompanies, func(l listing.List[entity.Company]) listing.List[entity.Company] {
		next, _ := l.Remove(id)
		return next
	})
	return nil
}
