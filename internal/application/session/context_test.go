package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appsession "github.com/jhoicas/Contable-api/internal/application/session"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos de persistencia
// ──────────────────────────────────────────────────────────────────────────────

type fakeCompanyRepo struct {
	companies []*entity.Company
	listErr   error
}

func (f *fakeCompanyRepo) Create(ctx context.Context, c *entity.Company) error { return nil }
func (f *fakeCompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	for _, c := range f.companies {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Company, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.companies, nil
}
func (f *fakeCompanyRepo) Update(ctx context.Context, c *entity.Company) error { return nil }
func (f *fakeCompanyRepo) Delete(ctx context.Context, id string) error         { return nil }

type fakePrefRepo struct {
	mu        sync.Mutex
	pref      *entity.UserPreference
	getErr    error
	upsertErr error
	upserts   int
}

func (f *fakePrefRepo) GetByUser(ctx context.Context, userID string) (*entity.UserPreference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.pref, nil
}

func (f *fakePrefRepo) Upsert(ctx context.Context, pref *entity.UserPreference) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.upserts++
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.pref = pref
	return nil
}

func (f *fakePrefRepo) upsertCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.upserts
}

func (f *fakePrefRepo) saved() *entity.UserPreference {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pref
}

func company(id, name string, createdAt time.Time) *entity.Company {
	return &entity.Company{ID: id, UserID: "u1", Name: name, Currency: "KES", CreatedAt: createdAt}
}

// newestFirst empresas ordenadas como las devuelve el repositorio real.
func newestFirst() []*entity.Company {
	return []*entity.Company{
		company("c2", "Nueva SA", time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)),
		company("c1", "Vieja SA", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Resolución de la empresa activa al inicializar
// ──────────────────────────────────────────────────────────────────────────────

func TestInitialize_PreferenciaPresenteGana(t *testing.T) {
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{pref: &entity.UserPreference{UserID: "u1", SelectedCompanyID: "c1"}}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))

	assert.False(t, sctx.Loading())
	require.NotNil(t, sctx.Selected())
	assert.Equal(t, "c1", sctx.Selected().ID, "la preferencia guardada gana aunque no sea la más reciente")
}

func TestInitialize_SinPreferenciaCaeALaMasReciente(t *testing.T) {
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))

	require.NotNil(t, sctx.Selected())
	assert.Equal(t, "c2", sctx.Selected().ID, "sin preferencia se selecciona la más reciente")
}

func TestInitialize_PreferenciaColganteCaeALaMasReciente(t *testing.T) {
	// La empresa preferida fue borrada: la preferencia apunta a un id ausente.
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{pref: &entity.UserPreference{UserID: "u1", SelectedCompanyID: "c-borrada"}}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))

	require.NotNil(t, sctx.Selected())
	assert.Equal(t, "c2", sctx.Selected().ID)
}

func TestInitialize_SinEmpresasQuedaSinSeleccion(t *testing.T) {
	companies := &fakeCompanyRepo{}
	prefs := &fakePrefRepo{}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))

	assert.Nil(t, sctx.Selected(), "sin empresas no hay selección y no es error")
	assert.Empty(t, sctx.Companies())
	assert.False(t, sctx.Loading())
}

func TestInitialize_ErrorDeCargaTerminaElLoading(t *testing.T) {
	companies := &fakeCompanyRepo{listErr: errors.New("db caída")}
	prefs := &fakePrefRepo{}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	err := sctx.Initialize(context.Background())

	assert.Error(t, err)
	assert.False(t, sctx.Loading(), "el estado de carga debe terminar incluso ante error")
	assert.Nil(t, sctx.Selected())
}

func TestInitialize_ErrorDePreferenciaNoEsFatal(t *testing.T) {
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{getErr: errors.New("tabla ausente")}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))

	require.NotNil(t, sctx.Selected())
	assert.Equal(t, "c2", sctx.Selected().ID, "fallo de lectura de preferencia cae a la más reciente")
}

// ──────────────────────────────────────────────────────────────────────────────
// Select — cambio de empresa activa
// ──────────────────────────────────────────────────────────────────────────────

func TestSelect_CambiaYPersisteEnSegundoPlano(t *testing.T) {
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))

	assert.True(t, sctx.Select("c1"))
	require.NotNil(t, sctx.Selected())
	assert.Equal(t, "c1", sctx.Selected().ID, "la selección en memoria es inmediata")

	assert.Eventually(t, func() bool {
		p := prefs.saved()
		return p != nil && p.SelectedCompanyID == "c1"
	}, time.Second, 10*time.Millisecond, "la preferencia debe persistirse en segundo plano")
}

func TestSelect_IdDesconocidoEsNoOp(t *testing.T) {
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))

	_, genAntes := sctx.Snapshot()
	assert.False(t, sctx.Select("c-ajena"), "id ajeno no cambia nada")
	assert.Equal(t, "c2", sctx.Selected().ID)

	_, genDespues := sctx.Snapshot()
	assert.Equal(t, genAntes, genDespues, "un no-op no incrementa la generación")
	assert.Equal(t, 0, prefs.upsertCount(), "un no-op no persiste preferencia")
}

func TestSelect_FalloDePersistenciaNoRevierte(t *testing.T) {
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{upsertErr: errors.New("timeout")}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))

	assert.True(t, sctx.Select("c1"))
	assert.Eventually(t, func() bool {
		return prefs.upsertCount() == 1
	}, time.Second, 10*time.Millisecond)

	assert.Equal(t, "c1", sctx.Selected().ID, "la selección en memoria sobrevive al fallo del upsert")
}

// ──────────────────────────────────────────────────────────────────────────────
// Generación — descarte de pasadas viejas
// ──────────────────────────────────────────────────────────────────────────────

func TestSnapshot_GeneracionInvalidaTrasSelect(t *testing.T) {
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))

	companyID, gen := sctx.Snapshot()
	assert.Equal(t, "c2", companyID)
	assert.True(t, sctx.StillCurrent(gen))

	// La selección cambia mientras una pasada está en vuelo.
	require.True(t, sctx.Select("c1"))
	assert.False(t, sctx.StillCurrent(gen), "la pasada vieja debe descartarse")

	companyID2, gen2 := sctx.Snapshot()
	assert.Equal(t, "c1", companyID2)
	assert.True(t, sctx.StillCurrent(gen2))
}

func TestRefresh_ReResuelveContraPreferencia(t *testing.T) {
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{}

	sctx := appsession.NewContext("u1", companies, prefs, logger.Nop())
	require.NoError(t, sctx.Initialize(context.Background()))
	require.True(t, sctx.Select("c1"))

	assert.Eventually(t, func() bool { return prefs.saved() != nil }, time.Second, 10*time.Millisecond)

	// Tras un refresh la preferencia persistida mantiene la selección.
	require.NoError(t, sctx.Refresh(context.Background()))
	assert.Equal(t, "c1", sctx.Selected().ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Manager
// ──────────────────────────────────────────────────────────────────────────────

func TestManager_ReusaElContextoPorUsuario(t *testing.T) {
	companies := &fakeCompanyRepo{companies: newestFirst()}
	prefs := &fakePrefRepo{}
	mgr := appsession.NewManager(companies, prefs, logger.Nop())

	a, err := mgr.ForUser(context.Background(), "u1")
	require.NoError(t, err)
	b, err := mgr.ForUser(context.Background(), "u1")
	require.NoError(t, err)

	assert.Same(t, a, b, "el mismo usuario reusa su contexto")
}

func TestManager_ErrorDeInicializacionDevuelveContextoVacio(t *testing.T) {
	companies := &fakeCompanyRepo{listErr: errors.New("db caída")}
	prefs := &fakePrefRepo{}
	mgr := appsession.NewManager(companies, prefs, logger.Nop())

	sctx, err := mgr.ForUser(context.Background(), "u1")
	assert.Error(t, err)
	require.NotNil(t, sctx, "el contexto degradado sigue siendo usable")
	assert.Nil(t, sctx.Selected())
}
