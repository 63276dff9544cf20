package httpadapter

import (
	"net/http"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

type reportReq struct {
	CampaignID    uuid.UUID                    `json:"campaign_id" validate:"required"`
	RetailerID    uuid.UUID                    `json:"retailer_id"`
	VisitID       *uuid.UUID                   `json:"visit_id"`
	Type          string                       `json:"type" validate:"required,oneof=window_display stock others"`
	WindowDisplay *domain.WindowDisplayDetails `json:"window_display" validate:"required_if=Type window_display"`
	Stock         *domain.StockDetails         `json:"stock" validate:"required_if=Type stock"`
	Others        *domain.OtherDetails         `json:"others" validate:"required_if=Type others"`
}

func (h *Handler) handleSubmitReport(w http.ResponseWriter, r *http.Request) {
	var req reportReq
	if !h.decode(w, r, &req) {
		return
	}
	rep, err := h.svc.Reports.SubmitReport(r.Context(), actorFrom(r), domain.Report{
		CampaignID:    req.CampaignID,
		RetailerID:    req.RetailerID,
		VisitID:       req.VisitID,
		Type:          domain.ReportType(req.Type),
		WindowDisplay: req.WindowDisplay,
		Stock:         req.Stock,
		Others:        req.Others,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rep)
}

func (h *Handler) handleListReports(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r.URL)
	filter := port.ReportFilter{
		CampaignID: q.uuid("campaign_id"),
		RetailerID: q.uuid("retailer_id"),
		EmployeeID: q.uuid("employee_id"),
		From:       q.time("from", false),
		To:         q.time("to", true),
	}
	if s := q.str("type"); s != nil {
		t := domain.ReportType(*s)
		if !t.Valid() {
			writeMessage(w, http.StatusBadRequest, "invalid 'type'")
			return
		}
		filter.Type = &t
	}
	if q.err != nil {
		writeMessage(w, http.StatusBadRequest, q.err.Error())
		return
	}
	list, err := h.svc.Reports.ListReports(r.Context(), actorFrom(r), filter)
	respond(h, w, r, list, err)
}

func (h *Handler) handleGetReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	rep, err := h.svc.Reports.GetReport(r.Context(), actorFrom(r), id)
	respond(h, w, r, rep, err)
}

func (h *Handler) handleDeleteReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Reports.DeleteReport(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
