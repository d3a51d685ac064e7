package http

import (
	"net/http"
	"time"

	"github.com/kintai-app/kintai-backend-go/internal/domain/report"
	"github.com/kintai-app/kintai-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Monthly(w http.ResponseWriter, r *http.Request)
	FiscalMonths(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Monthly implements ReportHandler.
func (h *ReportHandlerImpl) Monthly(w http.ResponseWriter, r *http.Request) {
	filter := report.MonthlyReportFilter{
		Year:  parseIntQuery(r, "year"),
		Month: parseIntQuery(r, "month"),
	}

	monthly, err := h.reportService.Monthly(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, monthly)
}

// FiscalMonths implements ReportHandler. The year defaults to the
// current calendar year when not supplied.
func (h *ReportHandlerImpl) FiscalMonths(w http.ResponseWriter, r *http.Request) {
	year := parseIntQuery(r, "year")
	if year == 0 {
		year = time.Now().Year()
	}

	months, err := h.reportService.FiscalMonths(r.Context(), year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, months)
}
