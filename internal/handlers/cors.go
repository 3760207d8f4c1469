package handlers

import "github.com/gofiber/fiber/v2"

const (
	functionAllowHeaders = "authorization, x-client-info, apikey, content-type"
	functionAllowMethods = "POST, OPTIONS"
)

// FunctionCORS attaches the function CORS headers to every response and
// answers pre-flight requests with an empty body.
func FunctionCORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
		c.Set(fiber.HeaderAccessControlAllowHeaders, functionAllowHeaders)
		c.Set(fiber.HeaderAccessControlAllowMethods, functionAllowMethods)

		if c.Method() == fiber.MethodOptions {
			return c.Status(fiber.StatusOK).Send(nil)
		}
		return c.Next()
	}
}
