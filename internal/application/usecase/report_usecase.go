package usecase

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/application/dto"
	"github.com/jhoicas/mietpark-admin/internal/application/form"
	"github.com/jhoicas/mietpark-admin/internal/domain/repository"
)

// ReportUseCase Auslastung calculada por el backend.
type ReportUseCase struct {
	repo    repository.ReportRepository
	lookups *LookupService
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.ReportRepository, lookups *LookupService) *ReportUseCase {
	return &ReportUseCase{repo: repo, lookups: lookups}
}

// Utilization valida el rango (von <= bis) y consulta POST /berichte/auslastung.
func (uc *ReportUseCase) Utilization(ctx context.Context, in form.UtilizationDraft) (*dto.UtilizationView, error) {
	q, err := in.Validate()
	if err != nil {
		return nil, err
	}
	rep, err := uc.repo.Utilization(ctx, q)
	if err != nil {
		return nil, err
	}
	names := uc.lookups.Names(ctx, false)
	view := &dto.UtilizationView{
		Query:        q,
		Rows:         make([]dto.UtilizationRow, 0, len(rep.Items)),
		FleetPercent: rep.FleetPercent,
	}
	for _, it := range rep.Items {
		view.Rows = append(view.Rows, dto.UtilizationRow{UtilizationItem: it, DeviceLabel: names.Device(it.DeviceID)})
	}
	return view, nil
}
