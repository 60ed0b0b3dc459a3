// Package foodie contiene la regla de promoción al programa foodie.
// Es lógica pura: recibe métricas del aplicante y decide, sin tocar
// persistencia ni sesión.
package foodie

// Decision resultado de evaluar una solicitud.
type Decision int

const (
	// AprobacionAutomatica las métricas superan el umbral: se promueve el rol de inmediato.
	AprobacionAutomatica Decision = iota
	// RevisionManual la solicitud se registra y queda pendiente de revisión; no hay cambio de rol.
	RevisionManual
)

// UmbralSeguidores mínimo de seguidores (en la red con más alcance) para aprobación automática.
const UmbralSeguidores = 1000

// Metricas métricas públicas del aplicante.
type Metricas struct {
	SeguidoresInstagram int
	SeguidoresTiktok    int
	CuentaPublica       bool
}

// Evaluate aplica la regla de promoción:
// aprobación automática si y solo si max(instagram, tiktok) >= 1000 y la cuenta es pública.
func Evaluate(m Metricas) Decision {
	maxSeguidores := m.SeguidoresInstagram
	if m.SeguidoresTiktok > maxSeguidores {
		maxSeguidores = m.SeguidoresTiktok
	}
	if maxSeguidores >= UmbralSeguidores && m.CuentaPublica {
		return AprobacionAutomatica
	}
	return RevisionManual
}
