package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"gst-reconciliation/internal/config"
	"gst-reconciliation/internal/domain"
	"gst-reconciliation/internal/gateway"
	"gst-reconciliation/internal/usecase"
)

// Handler exposes the reconciliation engine over HTTP. It parses payloads,
// delegates to the pure pipeline, and serializes the response; no business
// logic lives here.
type Handler struct {
	csv  *gateway.CSVReportWriter
	xlsx *gateway.XLSXReportWriter
	log  *logrus.Logger
}

// NewHandler creates a handler with its exporters wired in.
func NewHandler() *Handler {
	return &Handler{
		csv:  gateway.NewCSVReportWriter(),
		xlsx: gateway.NewXLSXReportWriter(),
		log:  config.GetLogger(),
	}
}

// Reconcile runs a reconciliation and returns the JSON report.
func (h *Handler) Reconcile(w http.ResponseWriter, r *http.Request) {
	report, _, ok := h.runReconciliation(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// ReconcileCSV runs a reconciliation and returns the CSV export as an
// attachment named for the target period.
func (h *Handler) ReconcileCSV(w http.ResponseWriter, r *http.Request) {
	report, period, ok := h.runReconciliation(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", period.FileStem()))
	if err := h.csv.Write(w, report); err != nil {
		h.log.WithError(err).Error("failed to stream CSV export")
	}
}

// ReconcileXLSX runs a reconciliation and returns the XLSX export as an
// attachment named for the target period.
func (h *Handler) ReconcileXLSX(w http.ResponseWriter, r *http.Request) {
	report, period, ok := h.runReconciliation(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", period.FileStem()))
	if err := h.xlsx.Write(w, report); err != nil {
		h.log.WithError(err).Error("failed to stream XLSX export")
	}
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) runReconciliation(w http.ResponseWriter, r *http.Request) (*domain.ReconciliationReport, domain.Period, bool) {
	var req ReconcileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
		return nil, domain.Period{}, false
	}

	period, err := domain.NewPeriod(req.Period.Month, req.Period.Year)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, domain.Period{}, false
	}

	tolerance := usecase.DefaultTolerance
	if req.Tolerance != nil {
		tolerance, err = decimal.NewFromString(*req.Tolerance)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid tolerance %q", *req.Tolerance))
			return nil, domain.Period{}, false
		}
	}

	families, err := domain.ParseFamilies(req.Families)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return nil, domain.Period{}, false
	}

	docs, err := gateway.ParseAuthorityPayload(req.Authority, families)
	if err != nil {
		h.writeParseError(w, err)
		return nil, domain.Period{}, false
	}
	bills, err := gateway.ParsePurchaseBills(req.Ledger)
	if err != nil {
		h.writeParseError(w, err)
		return nil, domain.Period{}, false
	}

	report := usecase.BuildReport(docs, bills, usecase.ReconcileParams{
		Period:    period,
		Families:  families,
		Tolerance: tolerance,
	})
	return report, period, true
}

func (h *Handler) writeParseError(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrMalformedPayload) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.log.WithError(err).Error("reconciliation failed")
	writeError(w, http.StatusInternalServerError, "internal error")
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
