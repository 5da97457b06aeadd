package repository

import (
	"context"

	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// La implementación vive en infrastructure.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}

// PreferenceRepository define el puerto de persistencia para UserPreference.
// Upsert mantiene a lo sumo una fila por usuario (clave única user_id).
type PreferenceRepository interface {
	GetByUser(ctx context.Context, userID string) (*entity.UserPreference, error)
	Upsert(ctx context.Context, pref *entity.UserPreference) error
}
