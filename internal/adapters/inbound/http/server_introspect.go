package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/rs/zerolog"
)

var (
	//go:embed templates/introspect.gohtml
	templateFS embed.FS
	tmpl       = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

type introspectPage struct {
	Title   string
	Agent   string
	Version string
	Graph   string
}

// Introspect renders the dependency graph registered by the app introspector.
func (api SamvaadServer) Introspect(w http.ResponseWriter, r *http.Request) {
	graph, err := depend.ResolveNamed[string]("introspection-graph-mermaid")
	if err != nil {
		http.Error(w, "Failed to resolve dependency graph", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	page := introspectPage{
		Title:   "Samvaad Introspection Graph",
		Agent:   agentName,
		Version: serviceVersion,
		Graph:   graph,
	}
	if err := tmpl.Execute(w, page); err != nil {
		// Headers are already sent at this point.
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("failed to render introspection page")
	}
}
