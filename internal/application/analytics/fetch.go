package analytics

import "github.com/jhoicas/Contable-api/pkg/logger"

// fetched encapsula el resultado de una sub-consulta del fan-out: filas o error.
type fetched[T any] struct {
	rows []T
	err  error
}

// rowsOrEmpty aplica la política "degradar a cero": un sub-fetch fallido
// aporta cero filas a la pasada en lugar de abortarla. El fallo se registra;
// no hay reintentos ni resultados parciales cacheados.
func rowsOrEmpty[T any](f fetched[T], log *logger.Logger, source string) []T {
	if f.err != nil {
		log.Warn().Err(f.err).Str("source", source).Msg("sub-consulta de agregación degradada a cero")
		return nil
	}
	return f.rows
}
