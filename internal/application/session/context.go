// Package session implementa el contexto de empresa activa: la única pieza de
// estado mutable compartida entre páginas. Un Context por usuario autenticado,
// construido al inicio de la sesión e inyectado explícitamente — sin singletons
// de ambiente.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
	"github.com/jhoicas/Contable-api/pkg/logger"
)

// Context mantiene las empresas del usuario y la selección activa.
//
// Garantías:
//   - A lo sumo una empresa activa a la vez.
//   - "Sin empresa activa" es un estado válido y presentable, no un error.
//   - La generación se incrementa en cada cambio de selección; una pasada de
//     agregación que arrancó bajo una generación anterior debe descartarse
//     (ver Snapshot / StillCurrent).
type Context struct {
	mu         sync.Mutex
	userID     string
	companies  []*entity.Company
	selected   *entity.Company
	loading    bool
	generation uint64

	companyRepo repository.CompanyRepository
	prefRepo    repository.PreferenceRepository
	log         *logger.Logger
}

// NewContext construye el contexto para un usuario. Queda en estado "loading"
// hasta la primera llamada a Initialize.
func NewContext(userID string, companyRepo repository.CompanyRepository, prefRepo repository.PreferenceRepository, log *logger.Logger) *Context {
	return &Context{
		userID:      userID,
		loading:     true,
		companyRepo: companyRepo,
		prefRepo:    prefRepo,
		log:         log,
	}
}

// Initialize carga las empresas del usuario (más reciente primero) y resuelve
// la activa: (a) la preferencia guardada si apunta a una empresa presente,
// (b) si no, la primera (más reciente), (c) si no hay empresas, ninguna.
//
// Siempre termina el estado de carga, incluso ante error de lectura: el error
// se devuelve para que el llamador lo notifique, pero el contexto queda usable
// con estado vacío. Sin reintentos.
func (c *Context) Initialize(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	defer func() { c.loading = false }()

	if c.userID == "" {
		// Sin usuario autenticado: estado vacío, carga terminada.
		c.companies = nil
		c.selected = nil
		return nil
	}

	companies, err := c.companyRepo.ListByUser(ctx, c.userID)
	if err != nil {
		c.companies = nil
		c.selected = nil
		return fmt.Errorf("cargar empresas: %w", err)
	}
	c.companies = companies

	// La preferencia es mejor-esfuerzo: si falla la lectura o apunta a una
	// empresa que ya no existe, se cae a la primera empresa sin reportar.
	var preferredID string
	if pref, err := c.prefRepo.GetByUser(ctx, c.userID); err == nil && pref != nil {
		preferredID = pref.SelectedCompanyID
	}

	c.selected = nil
	if preferredID != "" {
		for _, comp := range companies {
			if comp.ID == preferredID {
				c.selected = comp
				break
			}
		}
	}
	if c.selected == nil && len(companies) > 0 {
		c.selected = companies[0]
	}
	return nil
}

// Refresh re-ejecuta la secuencia completa de Initialize. Se usa después de
// crear, editar o borrar una empresa en otra página.
func (c *Context) Refresh(ctx context.Context) error {
	return c.Initialize(ctx)
}

// Select cambia la empresa activa. No-op (devuelve false) si el id no está
// entre las empresas cargadas. La selección en memoria se aplica de inmediato;
// la preferencia se persiste en segundo plano vía upsert y su fallo se
// registra pero nunca revierte la selección.
func (c *Context) Select(companyID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	var found *entity.Company
	for _, comp := range c.companies {
		if comp.ID == companyID {
			found = comp
			break
		}
	}
	if found == nil {
		return false
	}

	c.selected = found
	c.generation++

	userID := c.userID
	go func() {
		pref := &entity.UserPreference{
			UserID:            userID,
			SelectedCompanyID: companyID,
			UpdatedAt:         time.Now(),
		}
		if err := c.prefRepo.Upsert(context.Background(), pref); err != nil {
			c.log.Warn().Err(err).
				Str("user_id", userID).
				Str("company_id", companyID).
				Msg("no se pudo persistir la preferencia de empresa")
		}
	}()
	return true
}

// Selected devuelve la empresa activa, o nil si no hay ninguna.
func (c *Context) Selected() *entity.Company {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// Companies devuelve las empresas cargadas, más reciente primero.
func (c *Context) Companies() []*entity.Company {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*entity.Company, len(c.companies))
	copy(out, c.companies)
	return out
}

// Loading informa si la carga inicial sigue en curso.
func (c *Context) Loading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loading
}

// Snapshot devuelve el id de la empresa activa (vacío si ninguna) y la
// generación vigente. Una pasada de agregación captura ambos al arrancar.
func (c *Context) Snapshot() (companyID string, generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected != nil {
		companyID = c.selected.ID
	}
	return companyID, c.generation
}

// StillCurrent informa si la generación capturada sigue vigente. Una respuesta
// calculada bajo una generación vieja corresponde a otra empresa y debe
// descartarse en lugar de pisar la vista actual.
func (c *Context) StillCurrent(generation uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation == generation
}
