// Package spa serves a prebuilt single-page application bundle. Any GET
// that does not resolve to a regular file under the asset root gets the
// entry document so client-side routing can take over.
package spa

import (
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/hwmgr-labs/hardware-manager-backend/internal/logging"
)

type Handler struct {
	root  string
	index string
}

func NewHandler(root, index string) *Handler {
	return &Handler{root: root, index: index}
}

// Register mounts the entry document on "/" and the file lookup as the
// engine's NoRoute handler, so it must run after every API route is added.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.ServeIndex)
	r.HEAD("/", h.ServeIndex)
	r.NoRoute(h.Serve)
}

// Serve returns the file named by the request path, or the entry document
// when no such regular file exists.
func (h *Handler) Serve(c *gin.Context) {
	if m := c.Request.Method; m != http.MethodGet && m != http.MethodHead {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
		return
	}

	if name, ok := h.lookup(c.Request.URL.Path); ok {
		h.serveFile(c, name)
		return
	}
	h.ServeIndex(c)
}

func (h *Handler) ServeIndex(c *gin.Context) {
	h.serveFile(c, filepath.Join(h.root, h.index))
}

// lookup maps a URL path onto the asset root. The path is cleaned as an
// absolute path first, so ".." segments cannot leave the root.
func (h *Handler) lookup(urlPath string) (string, bool) {
	clean := path.Clean("/" + urlPath)
	if clean == "/" {
		return "", false
	}

	name := filepath.Join(h.root, filepath.FromSlash(clean))
	info, err := os.Stat(name)
	if err != nil || !info.Mode().IsRegular() {
		return "", false
	}
	return name, true
}

func (h *Handler) serveFile(c *gin.Context, name string) {
	f, err := os.Open(name)
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogWarnf("spa.open", "%v", err)
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogErrorf("spa.stat", "%v", err)
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
		return
	}
	if info.IsDir() {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "not found"})
		return
	}

	// ServeContent rather than c.File: http.ServeFile redirects
	// "/index.html" to "/".
	http.ServeContent(c.Writer, c.Request, info.Name(), info.ModTime(), f)
}
