package repository

import (
	"context"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// ListByUser devuelve las empresas del usuario, más reciente primero.
	ListByUser(ctx context.Context, userID string) ([]*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	// Delete elimina la empresa; la FK ON DELETE CASCADE arrastra cuentas,
	// órdenes, facturas, recibos y gastos.
	Delete(ctx context.Context, id string) error
}
