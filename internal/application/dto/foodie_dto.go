package dto

import "time"

// SolicitudFoodieRequest formulario de aplicación al programa foodie.
type SolicitudFoodieRequest struct {
	NombreCompleto      string `json:"nombreCompleto" validate:"required,min=2"`
	Email               string `json:"email" validate:"required,email"`
	NumeroPersonal      string `json:"numeroPersonal" validate:"required"`
	FechaNacimiento     string `json:"fechaNacimiento" validate:"required,datetime=2006-01-02"`
	Genero              string `json:"genero" validate:"required"`
	PaisDondeVives      string `json:"paisDondeVives" validate:"required"`
	CiudadDondeVives    string `json:"ciudadDondeVives" validate:"required"`
	NivelContenido      string `json:"nivelContenido" validate:"required"`
	UsuarioInstagram    string `json:"usuarioInstagram" validate:"required"`
	SeguidoresInstagram int    `json:"seguidoresInstagram" validate:"min=0"`
	CuentaPublica       bool   `json:"cuentaPublica"`
	UsuarioTiktok       string `json:"usuarioTiktok" validate:"required"`
	SeguidoresTiktok    int    `json:"seguidoresTiktok" validate:"min=0"`
	SobreTi             string `json:"sobreTi" validate:"required,min=50"`
	AceptaBeneficios    string `json:"aceptaBeneficios" validate:"required"`
	AceptaTerminos      bool   `json:"aceptaTerminos" validate:"required"`
}

// SolicitudFoodieResponse resultado de la aplicación. Usuario solo viene
// poblado cuando hubo aprobación automática confirmada (el rol ya mutó).
type SolicitudFoodieResponse struct {
	Success bool             `json:"success"`
	Message string           `json:"message"`
	Estado  string           `json:"estado"`
	Usuario *UsuarioResponse `json:"usuario,omitempty"`
}

// SolicitudView vista de una solicitud ya registrada.
type SolicitudView struct {
	ID                  string    `json:"id"`
	Estado              string    `json:"estado"`
	NivelContenido      string    `json:"nivelContenido"`
	UsuarioInstagram    string    `json:"usuarioInstagram"`
	SeguidoresInstagram int       `json:"seguidoresInstagram"`
	UsuarioTiktok       string    `json:"usuarioTiktok"`
	SeguidoresTiktok    int       `json:"seguidoresTiktok"`
	CuentaPublica       bool      `json:"cuentaPublica"`
	CreatedAt           time.Time `json:"fechaCreacion"`
}

// SolicitudListResponse sobre de respuesta para el historial de solicitudes.
type SolicitudListResponse struct {
	Success     bool            `json:"success"`
	Solicitudes []SolicitudView `json:"solicitudes"`
}
