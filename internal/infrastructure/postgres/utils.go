package postgres

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/Contable-api/internal/domain/entity"
)

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// encodeItems serializa las líneas de detalle a jsonb. Lista vacía → "[]",
// nunca NULL, para que el decode siempre devuelva slice.
func encodeItems(items []entity.OrderItem) ([]byte, error) {
	if items == nil {
		items = []entity.OrderItem{}
	}
	return json.Marshal(items)
}

// decodeItems deserializa la columna jsonb de líneas; NULL o vacío → slice vacío.
func decodeItems(raw []byte) ([]entity.OrderItem, error) {
	if len(raw) == 0 {
		return []entity.OrderItem{}, nil
	}
	var items []entity.OrderItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.OrderItem{}
	}
	return items, nil
}
