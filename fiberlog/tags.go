package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagURL      = "url"
	TagIP       = "ip"
	TagBody     = "body"
	TagResBody  = "resBody"
	TagQuery    = "query"
	TagUA       = "ua"
	RequestID   = "requestId"
	maxBodySize = 2048
)

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

// FuncTag - значение тега для записи лога
type FuncTag func(c *fiber.Ctx, d *data) interface{}

func getFuncTagMap(cfg Config, d *data) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, d *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			return truncate(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			return truncate(c.Response().Body())
		},
		TagQuery: func(c *fiber.Ctx, d *data) interface{} {
			return string(c.Request().URI().QueryString())
		},
		TagUA: func(c *fiber.Ctx, d *data) interface{} {
			return c.Get(fiber.HeaderUserAgent)
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			if id, ok := c.Locals(RequestIDLocal).(string); ok {
				return id
			}
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}

// бинарные ответы (xlsx/pdf) в лог не пишем целиком
func truncate(body []byte) string {
	if len(body) > maxBodySize {
		return string(body[:maxBodySize]) + "..."
	}
	return string(body)
}
