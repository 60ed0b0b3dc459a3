package foodie_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foodiesbnb/foodiesbnb-api/internal/domain/foodie"
)

func TestEvaluate_ReglasDePromocion(t *testing.T) {
	cases := []struct {
		name     string
		metricas foodie.Metricas
		want     foodie.Decision
	}{
		{
			name:     "instagram sobre el umbral y cuenta pública aprueba",
			metricas: foodie.Metricas{SeguidoresInstagram: 1500, CuentaPublica: true},
			want:     foodie.AprobacionAutomatica,
		},
		{
			name:     "pocos seguidores aunque la cuenta sea pública va a revisión",
			metricas: foodie.Metricas{SeguidoresInstagram: 500, CuentaPublica: true},
			want:     foodie.RevisionManual,
		},
		{
			name:     "muchos seguidores pero cuenta privada va a revisión",
			metricas: foodie.Metricas{SeguidoresInstagram: 2000, CuentaPublica: false},
			want:     foodie.RevisionManual,
		},
		{
			name:     "exactamente en el umbral aprueba",
			metricas: foodie.Metricas{SeguidoresInstagram: 1000, CuentaPublica: true},
			want:     foodie.AprobacionAutomatica,
		},
		{
			name:     "uno por debajo del umbral va a revisión",
			metricas: foodie.Metricas{SeguidoresInstagram: 999, CuentaPublica: true},
			want:     foodie.RevisionManual,
		},
		{
			name:     "tiktok compensa un instagram bajo",
			metricas: foodie.Metricas{SeguidoresInstagram: 10, SeguidoresTiktok: 4000, CuentaPublica: true},
			want:     foodie.AprobacionAutomatica,
		},
		{
			name:     "sin seguidores en ninguna red va a revisión",
			metricas: foodie.Metricas{CuentaPublica: true},
			want:     foodie.RevisionManual,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, foodie.Evaluate(tc.metricas))
		})
	}
}
