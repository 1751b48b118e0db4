// Package handlers exposes the document rendering endpoints over HTTP.
// The handlers own boundary concerns only: decoding, validation, content
// types; all document semantics live in the document and render packages.
package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/shakeelmo/smartuniit-task-flow-sub001/document"
	"github.com/shakeelmo/smartuniit-task-flow-sub001/render"
)

const maxBodyBytes = 2 << 20

// Routes registers all document endpoints on the router.
func Routes(r *mux.Router, brand render.Branding) {
	r.HandleFunc("/healthz", HandleHealth).Methods(http.MethodGet)
	r.HandleFunc("/api/documents/{kind}/pdf", HandleRenderPDF(brand)).Methods(http.MethodPost)
	r.HandleFunc("/api/documents/{kind}/xlsx", HandleRenderWorkbook(brand)).Methods(http.MethodPost)
}

// HandleHealth reports service liveness.
func HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// HandleRenderPDF returns a handler that renders the posted document model
// as a paginated PDF and streams it back as a download.
func HandleRenderPDF(brand render.Branding) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flavor, model, ok := decodeRenderRequest(w, r)
		if !ok {
			return
		}

		assembler := render.NewAssembler(flavor, brand)
		pdfBytes, err := assembler.RenderPDF(r.Context(), model)
		if err != nil {
			log.Printf("render: %s pdf for %s failed: %v", flavor.Kind, model.Number, err)
			http.Error(w, "Failed to render document", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("%s-%s.pdf", flavor.Kind, sanitizeFilename(model.Number))
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.Write(pdfBytes)
	}
}

// HandleRenderWorkbook returns a handler that renders the posted document
// model as a spreadsheet workbook.
func HandleRenderWorkbook(brand render.Branding) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flavor, model, ok := decodeRenderRequest(w, r)
		if !ok {
			return
		}

		xlsxBytes, err := render.RenderWorkbook(model, flavor)
		if err != nil {
			log.Printf("render: %s workbook for %s failed: %v", flavor.Kind, model.Number, err)
			http.Error(w, "Failed to render document", http.StatusInternalServerError)
			return
		}

		filename := fmt.Sprintf("%s-%s.xlsx", flavor.Kind, sanitizeFilename(model.Number))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
		w.Write(xlsxBytes)
	}
}

// decodeRenderRequest resolves the document flavor from the route and
// decodes plus validates the posted model. On failure it writes the error
// response and returns ok=false.
func decodeRenderRequest(w http.ResponseWriter, r *http.Request) (render.Flavor, *document.DocumentModel, bool) {
	kind := mux.Vars(r)["kind"]
	flavor, err := render.FlavorForKind(kind)
	if err != nil {
		http.Error(w, fmt.Sprintf("Unknown document kind %q", kind), http.StatusNotFound)
		return render.Flavor{}, nil, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()

	var model document.DocumentModel
	if err := json.NewDecoder(r.Body).Decode(&model); err != nil {
		http.Error(w, "Invalid document payload", http.StatusBadRequest)
		return render.Flavor{}, nil, false
	}

	if err := model.Validate(); err != nil {
		http.Error(w, fmt.Sprintf("Invalid document: %v", err), http.StatusUnprocessableEntity)
		return render.Flavor{}, nil, false
	}

	return flavor, &model, true
}

// sanitizeFilename strips characters that are unsafe inside a download
// filename.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer("/", "-", "\\", "-", "\"", "", " ", "_")
	out := replacer.Replace(name)
	if out == "" {
		out = "document"
	}
	return out
}
