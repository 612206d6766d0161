package meta

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cellviz/nicodash/internal/web"
)

func RegisterIndex(app *fiber.App, pages *web.Pages) {
	app.Get("/", func(c *fiber.Ctx) error {
		c.Type("html", "utf-8")
		return c.Send(pages.Landing)
	})
}
