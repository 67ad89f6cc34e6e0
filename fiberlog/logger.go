package fiberlog

import (
	"os"
	"slices"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const RequestIDLocal = "requestid"

// getLogrusFields calls FuncTag functions on matching keys
func getLogrusFields(ftm map[string]FuncTag, c *fiber.Ctx, d *data) log.Fields {
	f := make(log.Fields)
	for k, ft := range ftm {
		value := ft(c, d)
		strValue, ok := value.(string)
		if ok {
			if strValue != "" {
				f[k] = strValue
			}
		} else {
			f[k] = value
		}
	}
	return f
}

// New creates a new middleware handler
func New(config ...Config) fiber.Handler {
	var cfg Config
	if len(config) == 0 {
		cfg = ConfigDefault
	} else {
		cfg = config[0]
	}
	pid := os.Getpid()
	return func(c *fiber.Ctx) error {
		if slices.Contains(cfg.SkipPaths, c.Path()) {
			return c.Next()
		}
		requestID := c.Get(fiber.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(RequestIDLocal, requestID)
		c.Set(fiber.HeaderXRequestID, requestID)

		// данные на запрос, middleware обслуживает запросы параллельно
		d := &data{pid: pid, start: time.Now()}
		err := c.Next()
		d.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		fields := getLogrusFields(getFuncTagMap(cfg, d), c, d)
		message := getMessage(c)
		switch cfg.Logger {
		case nil:
			log.WithFields(fields).Info(message)
		default:
			entity := cfg.Logger.WithFields(fields)
			if c.Response() != nil && c.Response().StatusCode() >= 300 {
				entity.Warn(message)
			} else {
				entity.Info(message)
			}
		}
		return err
	}
}

// GetRequestID - идентификатор запроса для логов хендлеров
func GetRequestID(c *fiber.Ctx) string {
	if id, ok := c.Locals(RequestIDLocal).(string); ok {
		return id
	}
	return ""
}

func getMessage(c *fiber.Ctx) string {
	return "запрос api"
}
