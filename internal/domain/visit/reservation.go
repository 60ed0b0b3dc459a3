// Package visit contiene la lógica pura del ciclo de vida de visitas:
// generación de códigos de reserva y reglas de la ventana de evidencia.
package visit

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// CodigoPrefix prefijo de todos los códigos de reserva.
const CodigoPrefix = "RES"

// GenerateCodigoReserva genera un código de reserva presentable:
// prefijo + timestamp en base 36 + 5 caracteres aleatorios en base 36, en
// mayúsculas. La unicidad es probabilística; el índice único en el store es
// quien la garantiza en última instancia.
func GenerateCodigoReserva(now time.Time) string {
	ts := strconv.FormatInt(now.UnixMilli(), 36)
	random := randomBase36(5)
	return strings.ToUpper(CodigoPrefix + ts + random)
}

const base36 = "0123456789abcdefghijklmnopqrstuvwxyz"

func randomBase36(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(base36[rand.Intn(len(base36))])
	}
	return b.String()
}
