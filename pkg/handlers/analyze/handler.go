package analyze

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lvervaek/energy-app/pkg/adapters"
	"github.com/lvervaek/energy-app/pkg/models/api"
	"github.com/lvervaek/energy-app/pkg/models/domain"
	"github.com/lvervaek/energy-app/pkg/services/cost"
)

// maxUploadBytes caps the multipart form size; a year of quarter-hour
// readings is well under 10MB.
const maxUploadBytes = 32 << 20

// Catalog lists the selectable supplier/product pairs.
type Catalog interface {
	Catalog() []domain.CatalogEntry
}

type Handler struct {
	analyzer cost.Analyzer
	catalog  Catalog
}

func NewHandler(analyzer cost.Analyzer, catalog Catalog) *Handler {
	return &Handler{analyzer: analyzer, catalog: catalog}
}

// Analyze accepts a multipart meter export plus supplier, product and
// postal code, runs the cost pipeline and returns the report.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file uploaded")
		return
	}
	defer file.Close()

	req := cost.AnalyzeRequest{
		Supplier:   strings.TrimSpace(r.FormValue("supplier")),
		Product:    strings.TrimSpace(r.FormValue("product")),
		PostalCode: strings.TrimSpace(r.FormValue("postalCode")),
	}

	report, err := h.analyzer.Analyze(ctx, file, req)
	if err != nil {
		var validation domain.ValidationError
		if errors.As(err, &validation) {
			writeError(w, http.StatusBadRequest, validation.Error())
			return
		}
		logger.Error().Err(err).Msg("analysis failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(ctx, w, http.StatusOK, adapters.MapDomainReportToAPI(report))
}

// ListCatalog returns every supplier/product pair from the tariff
// catalog.
func (h *Handler) ListCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, adapters.MapCatalogToAPI(h.catalog.Catalog()))
}

// Health is the liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
