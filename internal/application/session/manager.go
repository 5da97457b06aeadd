package session

import (
	"context"
	"sync"

	"github.com/jhoicas/Contable-api/internal/domain/repository"
	"github.com/jhoicas/Contable-api/pkg/logger"
)

// Manager mantiene un Context por usuario autenticado. HTTP es sin estado, así
// que el contexto se construye perezosamente en el primer acceso y se reusa en
// las peticiones siguientes de ese usuario.
type Manager struct {
	mu       sync.Mutex
	contexts map[string]*Context

	companyRepo repository.CompanyRepository
	prefRepo    repository.PreferenceRepository
	log         *logger.Logger
}

// NewManager construye el manager con los puertos de persistencia.
func NewManager(companyRepo repository.CompanyRepository, prefRepo repository.PreferenceRepository, log *logger.Logger) *Manager {
	return &Manager{
		contexts:    make(map[string]*Context),
		companyRepo: companyRepo,
		prefRepo:    prefRepo,
		log:         log,
	}
}

// ForUser devuelve el contexto del usuario, inicializándolo en el primer
// acceso. Si la carga inicial falla, el contexto se devuelve igualmente en
// estado vacío junto con el error: el llamador notifica y sigue — "sin empresa
// activa" es presentable.
func (m *Manager) ForUser(ctx context.Context, userID string) (*Context, error) {
	m.mu.Lock()
	sctx, ok := m.contexts[userID]
	if !ok {
		sctx = NewContext(userID, m.companyRepo, m.prefRepo, m.log)
		m.contexts[userID] = sctx
	}
	m.mu.Unlock()

	if ok {
		return sctx, nil
	}
	if err := sctx.Initialize(ctx); err != nil {
		m.log.Warn().Err(err).Str("user_id", userID).Msg("inicialización de sesión degradada a vacío")
		return sctx, err
	}
	return sctx, nil
}
