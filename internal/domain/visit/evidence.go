package visit

import (
	"fmt"
	"regexp"
	"time"
)

// EvidenceWindow duración de la ventana de evidencia tras la visita completada.
const EvidenceWindow = 48 * time.Hour

// linkPattern acepta URLs públicas de Instagram o TikTok (con o sin www).
var linkPattern = regexp.MustCompile(`^https?://(www\.)?(instagram\.com|tiktok\.com)/\S+$`)

// ValidSocialLink indica si el link pertenece a una plataforma soportada.
func ValidSocialLink(link string) bool {
	return linkPattern.MatchString(link)
}

// ParseFechaHora combina fecha (YYYY-MM-DD) y hora (HH:MM) en un instante local.
func ParseFechaHora(fecha, hora string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02 15:04", fecha+" "+hora, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha/hora inválida: %w", err)
	}
	return t, nil
}

// WindowOpen indica si la ventana de evidencia sigue abierta en el instante now
// para una visita con la fecha/hora dada. La ventana cierra exactamente 48
// horas después del momento de la visita (el límite mismo aún es válido).
func WindowOpen(fecha, hora string, now time.Time) (bool, error) {
	visita, err := ParseFechaHora(fecha, hora)
	if err != nil {
		return false, err
	}
	deadline := visita.Add(EvidenceWindow)
	return !now.After(deadline), nil
}
