package http

import (
	nethttp "net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"lingua/backend/pkg/logger"
)

// registerStatic serves the front-end page and its assets from dir. Nothing is
// registered when dir is empty or has no index.html.
func registerStatic(e *echo.Echo, dir string) {
	if dir == "" {
		return
	}
	index := filepath.Join(dir, "index.html")
	if info, err := os.Stat(index); err != nil || info.IsDir() {
		logger.Warn("static index not found", "module", "http", "action", "register", "resource", "static", "result", "skipped", "path", index)
		return
	}
	e.GET("/*", pageHandler(dir, index))
}

func pageHandler(dir, index string) echo.HandlerFunc {
	assets := nethttp.FileServer(nethttp.Dir(dir))
	return func(c echo.Context) error {
		rel := strings.TrimPrefix(path.Clean(c.Request().URL.Path), "/")
		if rel == "" || rel == "." {
			return c.File(index)
		}
		if info, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err == nil && !info.IsDir() {
			assets.ServeHTTP(c.Response(), c.Request())
			return nil
		}
		// Missing assets are 404; extensionless paths get the page.
		if path.Ext(rel) != "" {
			return echo.ErrNotFound
		}
		return c.File(index)
	}
}
