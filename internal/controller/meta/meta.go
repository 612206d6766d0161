package meta

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
	"go.uber.org/fx"

	"github.com/cellviz/nicodash/internal/core/series"
	"github.com/cellviz/nicodash/internal/pkg/bininfo"
	"github.com/cellviz/nicodash/internal/server/svr"
)

type Meta struct {
	fx.In

	SeriesRepo *series.Repo
}

func RegisterMeta(meta *svr.Meta, c Meta) {
	meta.Get("/bininfo", c.BinInfo)

	meta.Get("/health", cache.New(cache.Config{
		// cache it for a second to mitigate potential DDoS
		Expiration: time.Second,
	}), c.Health)
}

func (c *Meta) BinInfo(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"name":    bininfo.Name,
		"version": bininfo.Version,
		"build":   bininfo.BuildTime,
	})
}

// Health reports ok once the series lookup tables are available.
func (c *Meta) Health(ctx *fiber.Ctx) error {
	if _, err := c.SeriesRepo.Tables(ctx.UserContext()); err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"status": "ok",
	})
}
