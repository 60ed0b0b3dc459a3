package http

import (
	"strconv"
	"time"

	redis_rate "github.com/go-redis/redis_rate/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"github.com/foodiesbnb/foodiesbnb-api/internal/application/dto"
)

// RateLimitMiddleware limita peticiones por IP usando redis_rate (ventana
// deslizante GCRA). Pensado para las rutas de auth, donde el costo de un
// bcrypt por intento hace atractivo el abuso.
//
// Si Redis no responde el middleware deja pasar: perder el límite es
// preferible a tumbar el login completo.
func RateLimitMiddleware(rdb *redis.Client, perMinute int) fiber.Handler {
	limiter := redis_rate.NewLimiter(rdb)
	limit := redis_rate.Limit{Rate: perMinute, Burst: perMinute, Period: time.Minute}

	return func(c *fiber.Ctx) error {
		key := "ratelimit:ip:" + c.IP()
		res, err := limiter.Allow(c.Context(), key, limit)
		if err != nil {
			return c.Next()
		}

		c.Set("X-RateLimit-Limit", strconv.Itoa(limit.Rate))
		c.Set("X-RateLimit-Remaining", strconv.Itoa(res.Remaining))

		if res.Allowed == 0 {
			retryAfter := int(res.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Set("Retry-After", strconv.Itoa(retryAfter))
			return c.Status(fiber.StatusTooManyRequests).JSON(
				dto.Err("RATE_LIMITED", "Demasiadas peticiones. Intenta de nuevo en unos segundos."))
		}
		return c.Next()
	}
}
