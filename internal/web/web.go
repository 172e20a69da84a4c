// Package web serves the embedded dashboard page. The page is a static
// HTML/JS client of the JSON API; all data it shows comes from /api/v1.
package web

import (
	_ "embed"
	"net/http"
)

//go:embed dashboard.html
var dashboardHTML []byte

// Dashboard serves the single-page stats explorer UI.
func Dashboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(dashboardHTML)
}
