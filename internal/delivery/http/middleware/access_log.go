package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestIDKey = "request_id"
)

type AccessLogMiddleware struct {
	logger *log.Logger
}

func NewAccessLogMiddleware(logger *log.Logger) *AccessLogMiddleware {
	if logger == nil {
		logger = log.Default()
	}
	return &AccessLogMiddleware{logger: logger}
}

// Middleware reuses an incoming X-Request-ID or generates one, echoes it on the
// response and logs one line once the request completes.
func (m *AccessLogMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		start := time.Now()

		rid := c.Get(HeaderRequestID)
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Set(HeaderRequestID, rid)
		c.Locals(CtxRequestIDKey, rid)

		err := c.Next()

		if m != nil && m.logger != nil {
			m.logger.Printf(
				"[HTTP] rid=%s method=%s path=%s status=%d latency=%s ip=%s resp_bytes=%d",
				rid, c.Method(), c.OriginalURL(), c.Response().StatusCode(), time.Since(start), c.IP(),
				len(c.Response().Body()),
			)
		}

		return err
	}
}
