package server

import (
	"net/http"

	"github.com/a-h/templ"

	uierrors "github.com/conneroisu/tailblocks/internal/errors"
	"github.com/conneroisu/tailblocks/internal/registry"
	"github.com/conneroisu/tailblocks/internal/renderer"
)

func (s *PreviewServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.servePage(w, r, s.indexPage())
}

// handleComponents lists the catalog as JSON, optionally filtered by
// ?category=.
func (s *PreviewServer) handleComponents(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	components := make([]*registry.ComponentInfo, 0, s.registry.Count())
	for _, c := range s.registry.List() {
		if category == "" || c.Category == category {
			components = append(components, c)
		}
	}
	writeJSON(w, http.StatusOK, components)
}

func (s *PreviewServer) handleComponent(w http.ResponseWriter, r *http.Request) {
	component, err := s.renderer.Lookup(r.PathValue("name"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.servePage(w, r, s.componentPage(component))
}

// handleRender returns a bare HTML fragment. ?example= renders a fixture
// example; otherwise ?props= (JSON or YAML) and ?text= build the component
// directly.
func (s *PreviewServer) handleRender(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	q := r.URL.Query()

	var (
		html string
		err  error
	)
	if example := q.Get("example"); example != "" {
		html, err = s.renderer.RenderExample(r.Context(), name, example)
	} else {
		props, perr := renderer.ParseProps(q.Get("props"))
		if perr != nil {
			s.writeError(w, r, uierrors.ErrInvalidProps(name, perr))
			return
		}
		html, err = s.renderer.RenderComponent(r.Context(), name, props, q.Get("text"))
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

func (s *PreviewServer) servePage(w http.ResponseWriter, r *http.Request, page templ.Component) {
	templ.Handler(page, templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.writeError(w, r, uierrors.NewRenderError("render page", err))
		})
	})).ServeHTTP(w, r)
}

// writeError maps a UIError type onto an HTTP status.
func (s *PreviewServer) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error(r.Context(), err, "request failed", "path", r.URL.Path)
	} else {
		s.logger.Debug(r.Context(), "request rejected", "path", r.URL.Path, "error", err.Error())
	}
	http.Error(w, err.Error(), status)
}

func statusFor(err error) int {
	switch {
	case uierrors.IsNotFound(err):
		return http.StatusNotFound
	case uierrors.IsValidation(err), uierrors.IsType(err, uierrors.ErrorTypeSecurity):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
