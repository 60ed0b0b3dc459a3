package visit_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/visit"
)

func TestGenerateCodigoReserva_Formato(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 30, 0, 0, time.Local)
	code := visit.GenerateCodigoReserva(now)

	assert.Regexp(t, regexp.MustCompile(`^RES[0-9A-Z]+$`), code,
		"el código debe ser RES + base36 en mayúsculas")
	assert.Greater(t, len(code), len("RES")+5,
		"el código debe incluir timestamp y sufijo aleatorio")
}

func TestGenerateCodigoReserva_NoSeRepiteEnLlamadasSeguidas(t *testing.T) {
	now := time.Now()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := visit.GenerateCodigoReserva(now)
		assert.False(t, seen[code], "código repetido: %s", code)
		seen[code] = true
	}
}

func TestValidSocialLink(t *testing.T) {
	cases := []struct {
		link  string
		valid bool
	}{
		{"https://www.instagram.com/p/abc123/", true},
		{"https://instagram.com/reel/xyz", true},
		{"https://www.tiktok.com/@foodie/video/123", true},
		{"http://tiktok.com/@foodie/video/123", true},
		{"https://facebook.com/post/123", false},
		{"https://instagram.com.evil.com/p/abc", false},
		{"instagram.com/p/abc", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.valid, visit.ValidSocialLink(tc.link), "link: %q", tc.link)
	}
}

func TestWindowOpen_LimiteDe48Horas(t *testing.T) {
	const fecha = "2025-03-10"
	const hora = "20:00"

	visita, err := visit.ParseFechaHora(fecha, hora)
	require.NoError(t, err)

	// A 47h59m la ventana sigue abierta.
	open, err := visit.WindowOpen(fecha, hora, visita.Add(47*time.Hour+59*time.Minute))
	require.NoError(t, err)
	assert.True(t, open)

	// Exactamente a las 48h el límite aún es válido.
	open, err = visit.WindowOpen(fecha, hora, visita.Add(48*time.Hour))
	require.NoError(t, err)
	assert.True(t, open)

	// Un segundo después de las 48h la ventana está cerrada.
	open, err = visit.WindowOpen(fecha, hora, visita.Add(48*time.Hour+time.Second))
	require.NoError(t, err)
	assert.False(t, open)
}

func TestWindowOpen_FechaInvalida(t *testing.T) {
	_, err := visit.WindowOpen("10-03-2025", "20:00", time.Now())
	assert.Error(t, err)
}
