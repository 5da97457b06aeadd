package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Contable-api/internal/application/dto"
	"github.com/jhoicas/Contable-api/internal/application/usecase"
	"github.com/jhoicas/Contable-api/internal/domain"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/pkg/money"
)

type memCompanyRepo struct {
	byID    map[string]*entity.Company
	deleted []string
}

func newMemCompanyRepo() *memCompanyRepo {
	return &memCompanyRepo{byID: make(map[string]*entity.Company)}
}

func (m *memCompanyRepo) Create(ctx context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memCompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	return m.byID[id], nil
}
func (m *memCompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	var out []*entity.Company
	for _, c := range m.byID {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (m *memCompanyRepo) Update(ctx context.Context, c *entity.Company) error {
	m.byID[c.ID] = c
	return nil
}
func (m *memCompanyRepo) Delete(ctx context.Context, id string) error {
	delete(m.byID, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func TestCompanyCreate_MonedaPorDefecto(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo())

	out, err := uc.Create(context.Background(), "u1", dto.CreateCompanyRequest{Name: "Acme SA"})
	require.NoError(t, err)

	assert.Equal(t, money.DefaultCurrency, out.Currency)
	assert.NotEmpty(t, out.ID)
}

func TestCompanyCreate_SinNombreRechaza(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo())

	_, err := uc.Create(context.Background(), "u1", dto.CreateCompanyRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyUpdate_ParcialConservaLoNoEnviado(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	created, err := uc.Create(context.Background(), "u1", dto.CreateCompanyRequest{
		Name:  "Acme SA",
		Phone: "0700-000-000",
	})
	require.NoError(t, err)

	nuevoNombre := "Acme Holdings"
	out, err := uc.Update(context.Background(), created.ID, dto.UpdateCompanyRequest{Name: &nuevoNombre})
	require.NoError(t, err)

	assert.Equal(t, "Acme Holdings", out.Name)
	assert.Equal(t, "0700-000-000", out.Phone, "los campos no enviados se conservan")
}

func TestCompanyUpdate_NombreVacioRechaza(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	created, err := uc.Create(context.Background(), "u1", dto.CreateCompanyRequest{Name: "Acme SA"})
	require.NoError(t, err)

	vacio := ""
	_, err = uc.Update(context.Background(), created.ID, dto.UpdateCompanyRequest{Name: &vacio})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCompanyUpdate_InexistenteRetornaNotFound(t *testing.T) {
	uc := usecase.NewCompanyUseCase(newMemCompanyRepo())

	nombre := "X"
	_, err := uc.Update(context.Background(), "no-existe", dto.UpdateCompanyRequest{Name: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCompanyDelete_DelegaAlRepositorio(t *testing.T) {
	repo := newMemCompanyRepo()
	uc := usecase.NewCompanyUseCase(repo)

	created, err := uc.Create(context.Background(), "u1", dto.CreateCompanyRequest{Name: "Acme SA"})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(context.Background(), created.ID))
	assert.Equal(t, []string{created.ID}, repo.deleted)

	got, err := uc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
