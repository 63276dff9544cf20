package httpadapter

import (
	"net/http"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

type visitReq struct {
	CampaignID uuid.UUID `json:"campaign_id" validate:"required"`
	EmployeeID uuid.UUID `json:"employee_id"`
	RetailerID uuid.UUID `json:"retailer_id" validate:"required"`
	VisitDate  *date     `json:"visit_date" validate:"required"`
	Notes      string    `json:"notes" validate:"max=1000"`
}

func (h *Handler) handleScheduleVisit(w http.ResponseWriter, r *http.Request) {
	var req visitReq
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.svc.Visits.ScheduleVisit(r.Context(), actorFrom(r), port.VisitInput{
		CampaignID: req.CampaignID,
		EmployeeID: req.EmployeeID,
		RetailerID: req.RetailerID,
		VisitDate:  req.VisitDate.Time,
		Notes:      req.Notes,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, v)
}

func (h *Handler) handleListVisits(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r.URL)
	filter := port.VisitFilter{
		CampaignID: q.uuid("campaign_id"),
		EmployeeID: q.uuid("employee_id"),
		RetailerID: q.uuid("retailer_id"),
		From:       q.time("from", false),
		To:         q.time("to", true),
	}
	if s := q.str("status"); s != nil {
		status := domain.VisitStatus(*s)
		filter.Status = &status
	}
	if q.err != nil {
		writeMessage(w, http.StatusBadRequest, q.err.Error())
		return
	}
	list, err := h.svc.Visits.ListVisits(r.Context(), actorFrom(r), filter)
	respond(h, w, r, list, err)
}

type visitStatusReq struct {
	Status string `json:"status" validate:"required,oneof=completed missed cancelled"`
	Notes  string `json:"notes" validate:"max=1000"`
}

func (h *Handler) handleUpdateVisitStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req visitStatusReq
	if !h.decode(w, r, &req) {
		return
	}
	v, err := h.svc.Visits.UpdateVisitStatus(r.Context(), actorFrom(r), id, domain.VisitStatus(req.Status), req.Notes)
	respond(h, w, r, v, err)
}

func (h *Handler) handleDeleteVisit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Visits.DeleteVisit(r.Context(), actorFrom(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
