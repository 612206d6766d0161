package cachectrl

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/zeebo/xxh3"
)

// DefaultMaxAge applies to responses that are a pure function of their request.
const DefaultMaxAge = time.Hour

func OptIn(ctx *fiber.Ctx) {
	OptInCustom(ctx, DefaultMaxAge)
}

func OptInCustom(ctx *fiber.Ctx, maxAge time.Duration) {
	ctx.Set(fiber.HeaderCacheControl, "public, max-age="+strconv.Itoa(int(maxAge.Seconds())))
}

func OptOut(ctx *fiber.Ctx) {
	ctx.Set(fiber.HeaderCacheControl, "no-cache, no-store, must-revalidate")
	ctx.Set(fiber.HeaderPragma, "no-cache")
	ctx.Set(fiber.HeaderExpires, "0")
}

// ETag returns the strong entity tag of body.
func ETag(body []byte) string {
	return `"` + strconv.FormatUint(xxh3.Hash(body), 16) + `"`
}

// ETagMatches sets the ETag header for body and reports whether the request's
// If-None-Match already names it.
func ETagMatches(ctx *fiber.Ctx, body []byte) bool {
	etag := ETag(body)
	ctx.Set(fiber.HeaderETag, etag)

	return ctx.Get(fiber.HeaderIfNoneMatch) == etag
}
