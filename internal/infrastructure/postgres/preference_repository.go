package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
	"github.com/jhoicas/Contable-api/internal/domain/repository"
)

var _ repository.PreferenceRepository = (*PreferenceRepo)(nil)

// PreferenceRepo implementación del puerto PreferenceRepository sobre PostgreSQL.
// La tabla user_preferences tiene a lo sumo una fila por usuario (PK user_id).
type PreferenceRepo struct {
	pool *pgxpool.Pool
}

// NewPreferenceRepository construye el adaptador de persistencia para preferencias.
func NewPreferenceRepository(pool *pgxpool.Pool) *PreferenceRepo {
	return &PreferenceRepo{pool: pool}
}

// GetByUser obtiene la preferencia del usuario. Devuelve (nil, nil) si no hay fila.
func (r *PreferenceRepo) GetByUser(ctx context.Context, userID string) (*entity.UserPreference, error) {
	query := `
		SELECT user_id, COALESCE(selected_company_id::text, ''), updated_at
		FROM user_preferences WHERE user_id = $1`
	var p entity.UserPreference
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.UserID, &p.SelectedCompanyID, &p.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get preference: %w", err)
	}
	return &p, nil
}

// Upsert inserta o actualiza la preferencia con clave de conflicto user_id,
// manteniendo la invariante de una sola fila por usuario.
func (r *PreferenceRepo) Upsert(ctx context.Context, pref *entity.UserPreference) error {
	query := `
		INSERT INTO user_preferences (user_id, selected_company_id, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET selected_company_id = EXCLUDED.selected_company_id,
		    updated_at          = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query, pref.UserID, pref.SelectedCompanyID, pref.UpdatedAt)
	if err != nil {
		return fmt.Errorf("upsert preference: %w", err)
	}
	return nil
}
