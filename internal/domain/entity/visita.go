package entity

import "time"

// Estados del ciclo de vida de una visita.
//
//	programada ──► cancelada   (acción del usuario, terminal)
//	programada ──► completada  (acción administrativa, terminal)
//
// "confirmada" existe como estado almacenable por compatibilidad con datos
// históricos, pero ninguna operación actual lo produce.
const (
	EstadoProgramada = "programada"
	EstadoConfirmada = "confirmada"
	EstadoCompletada = "completada"
	EstadoCancelada  = "cancelada"
)

// ValidEstado indica si el estado es uno de los almacenables.
func ValidEstado(estado string) bool {
	switch estado {
	case EstadoProgramada, EstadoConfirmada, EstadoCompletada, EstadoCancelada:
		return true
	}
	return false
}

// RestauranteSnapshot copia desnormalizada de los datos del restaurante al
// momento de agendar. La visita no referencia un catálogo vivo: lo que el
// usuario vio al reservar es lo que queda guardado.
type RestauranteSnapshot struct {
	ID          string
	Nombre      string
	Ubicacion   string
	Tipo        string
	Imagen      string
	Descripcion string
	Horario     string
	Beneficios  []string
}

// Visita representa un compromiso agendado de un usuario con un restaurante.
// Solo el usuario dueño puede leerla o mutarla; solo en estado "programada"
// puede editarse o cancelarse.
type Visita struct {
	ID              string
	Restaurante     RestauranteSnapshot
	UserID          string
	Fecha           string // YYYY-MM-DD
	Hora            string // HH:MM
	NumeroPersonas  int    // 1–20
	NotasEspeciales string
	Estado          string
	CodigoReserva   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
