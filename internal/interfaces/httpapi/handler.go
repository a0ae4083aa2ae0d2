package httpapi

import (
	"net/http"

	"github.com/riskibarqy/league-site/internal/platform/logging"
	"github.com/riskibarqy/league-site/internal/site"
)

type Handler struct {
	site   *site.Renderer
	logger *logging.Logger
}

func NewHandler(siteRenderer *site.Renderer, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		site:   siteRenderer,
		logger: logger,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	_, span := startHandlerSpan(r.Context(), "Healthz")
	defer span.End()

	writeSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Page renders one site page. A page whose data could not be loaded is
// still a 200: the error alert is part of the page.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "Page")
	defer span.End()

	page, err := site.PageByName(r.PathValue("page"))
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := h.site.Render(ctx, page)
	if err != nil {
		h.logger.ErrorContext(ctx, "render page failed", "page", page.Name, "error", err)
		writeInternalError(w)
		return
	}
	if result.PageErr != nil {
		span.RecordError(result.PageErr)
	}

	writeHTML(w, http.StatusOK, result.HTML)
}

func (h *Handler) Stylesheet(w http.ResponseWriter, r *http.Request) {
	ctx, span := startHandlerSpan(r.Context(), "Stylesheet")
	defer span.End()

	raw, err := site.Stylesheet()
	if err != nil {
		h.logger.ErrorContext(ctx, "read stylesheet failed", "error", err)
		writeInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(raw)
}
