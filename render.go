package blogpilot

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes one or more templ components as a single HTTP 200 HTML
// response. Action handlers use the extra components for htmx out-of-band
// swaps (toast, refreshed regions) alongside the primary target content.
func Render(c echo.Context, cmps ...templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmps...)
}

// RenderStatus writes templ components with a specific HTTP status code.
func RenderStatus(c echo.Context, code int, cmps ...templ.Component) error {
	c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	c.Response().WriteHeader(code)
	for _, cmp := range cmps {
		if err := cmp.Render(c.Request().Context(), c.Response().Writer); err != nil {
			return err
		}
	}
	return nil
}

// isHTMX reports whether the request came from htmx, i.e. the response
// should be a partial rather than a full page or redirect.
func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
