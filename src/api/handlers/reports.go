package handlers

import (
	"fmt"
	"net/http"

	"inventario/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	summary, err := h.Controller.GetDashboard(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, summary, http.StatusOK)
}

func (h *Handler) GetExport(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	filename, data, err := h.Controller.ExportCSV(ctx, chi.URLParam(r, "kind"))
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	_, _ = w.Write(data)
}

func (h *Handler) GetWorkbook(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.requestContext(r)
	defer cancel()

	xlsxFile, err := h.Controller.GenerateXLSX(ctx)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}
	defer xlsxFile.Close()

	buffer, err := xlsxFile.WriteToBuffer()
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+utils.WorkbookFilename)
	w.Header().Set("Content-Length", fmt.Sprintf("%d", buffer.Len()))
	_, _ = w.Write(buffer.Bytes())
}
