package usecase

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/application/listing"
	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
	"github.com/jhoicas/mietpark-admin/internal/infrastructure/cache"
)

// CustomerUseCase casos de uso de Kunden. El backend no permite borrar clientes.
type CustomerUseCase struct {
	repo    repository.CustomerRepository
	lookups *LookupService
	cache   *cache.QueryCache
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, lookups *LookupService, c *cache.QueryCache) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, lookups: lookups, cache: c}
}

func (uc *CustomerUseCase) List(ctx context.Context) ([]entity.Customer, error) {
	return uc.lookups.Customers(ctx)
}

func (uc *CustomerUseCase) Create(ctx context.Context, in form.CustomerDraft) (*entity.Customer, error) {
	c, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	uc.cache.Invalidate(keyCustomers)
	return saved, nil
}

func (uc *CustomerUseCase) Update(ctx context.Context, id int64, in form.CustomerDraft) (*entity.Customer, error) {
	c, err := in.Validate()
	if err != nil {
		return nil, err
	}
	saved, err := uc.repo.Update(ctx, id, c)
	if err != nil {
		return nil, err
	}
	cache.Patch(uc.cache, keyCustomers, func(l listing.List[entity.Customer]) listing.List[entity.Customer] {
		next, _ := l.Replace(*saved)
		return next
	})
	return saved, nil
}
