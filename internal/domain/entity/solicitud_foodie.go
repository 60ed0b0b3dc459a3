package entity

import "time"

// Estados de una solicitud foodie.
const (
	SolicitudAprobada = "aprobada"        // aprobación automática por métricas
	SolicitudRevision = "revision_manual" // queda en cola de revisión manual
)

// SolicitudFoodie formulario de aplicación para el programa foodie.
// Se registra siempre, tanto si la evaluación automática aprueba como si
// deriva a revisión manual.
type SolicitudFoodie struct {
	ID                  string
	UserID              string
	NombreCompleto      string
	Email               string
	NumeroPersonal      string
	FechaNacimiento     string // YYYY-MM-DD
	Genero              string
	PaisDondeVives      string
	CiudadDondeVives    string
	NivelContenido      string
	UsuarioInstagram    string
	SeguidoresInstagram int
	CuentaPublica       bool
	UsuarioTiktok       string
	SeguidoresTiktok    int
	SobreTi             string
	AceptaBeneficios    string
	AceptaTerminos      bool
	Estado              string
	CreatedAt           time.Time
}
