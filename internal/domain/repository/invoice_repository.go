package repository

import (
	"context"

	"github.com/jhoicas/mietpark-admin/internal/domain/entity"
)

// InvoiceRepository define el puerto hacia /rechnungen.
type InvoiceRepository interface {
	// SearchByNumber busca por coincidencia parcial del número (ilike en el backend).
	SearchByNumber(ctx context.Context, number string) ([]entity.Invoice, error)
	Create(ctx context.Context, inv entity.Invoice) (*entity.Invoice, error)
	SetPaid(ctx context.Context, id int64, paid bool) (*entity.Invoice, error)
}
