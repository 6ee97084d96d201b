package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequirePermission enforces a claim-based authorization policy: the caller's
// verified token must carry the named permission. Being authenticated is not
// enough; a missing permission yields 403, never 404.
func RequirePermission(perm string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			perms, _ := c.Get("perms").([]string)
			for _, p := range perms {
				if p == perm {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
