package usecase

import "time"

const dateLayout = "2006-01-02"

// parseDate interpreta una fecha de formulario. Fecha inválida o vacía cae a
// la fecha actual, igual que el valor inicial del formulario.
func parseDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Now()
	}
	return t
}

// parseDateOpt interpreta una fecha opcional; vacía o inválida → nil.
func parseDateOpt(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
