package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/render"

	"github.com/soclog/change-inventory/models"
	"github.com/soclog/change-inventory/services"
)

// maxImportSize caps the accepted upload size; imports are administrative
// batches, not a bulk pipeline.
const maxImportSize = 10 << 20

// CSVController handles bulk export and import of change records
type CSVController struct {
	services *services.Services
}

// NewCSVController creates a new CSV controller
func NewCSVController(services *services.Services) *CSVController {
	return &CSVController{services: services}
}

// Export handles GET /api/export-csv
func (c *CSVController) Export(w http.ResponseWriter, r *http.Request) {
	// Buffer the document so a storage failure can still become a 500.
	var buf bytes.Buffer
	if err := c.services.CSV.Export(r.Context(), &buf); err != nil {
		respondError(w, r, err)
		return
	}

	filename := fmt.Sprintf("change_inventory_%s.csv", time.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	w.Write(buf.Bytes())
}

// Import handles POST /api/import-csv (multipart file upload)
func (c *CSVController) Import(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImportSize); err != nil {
		respondError(w, r, models.NewValidationError("failed to parse upload"))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, r, models.NewValidationError("No file provided"))
		return
	}
	defer file.Close()

	if header.Filename == "" {
		respondError(w, r, models.NewValidationError("No file selected"))
		return
	}
	if !strings.HasSuffix(strings.ToLower(header.Filename), ".csv") {
		respondError(w, r, models.NewValidationError("File must be a CSV"))
		return
	}

	summary, err := c.services.CSV.Import(r.Context(), file)
	if err != nil {
		respondError(w, r, err)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"success":  true,
		"message":  fmt.Sprintf("%d change(s) imported successfully", summary.Imported),
		"batch_id": summary.BatchID,
		"imported": summary.Imported,
		"errors":   summary.Errors,
	})
}
