package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// PageHandler serves the console entry pages. The console itself is a client
// bundle; these endpoints return the shell that boots it.
type PageHandler struct{}

// NewPageHandler creates a new PageHandler instance
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

const appShell = `<!DOCTYPE html>
<html lang="nl-BE">
<head><meta charset="utf-8"><title>Horeca Console</title></head>
<body><div id="root"></div><script src="/static/console.js"></script></body>
</html>`

// Dashboard serves the merchant console shell.
func (h *PageHandler) Dashboard(c echo.Context) error {
	return c.HTML(http.StatusOK, appShell)
}

// AdminConsole serves the platform administration shell.
func (h *PageHandler) AdminConsole(c echo.Context) error {
	return c.HTML(http.StatusOK, appShell)
}
