package httpadapter

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

type campaignReq struct {
	ClientID    uuid.UUID `json:"client_id" validate:"required"`
	Name        string    `json:"name" validate:"notblank,max=200"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	States      []string  `json:"states" validate:"dive,notblank"`
	StartDate   *date     `json:"start_date" validate:"required"`
	EndDate     *date     `json:"end_date" validate:"required"`
	Status      string    `json:"status" validate:"omitempty,oneof=active inactive completed"`
}

func (req campaignReq) toInput() port.CampaignInput {
	return port.CampaignInput{
		ClientID:    req.ClientID,
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		States:      req.States,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		Status:      domain.CampaignStatus(req.Status),
	}
}

func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Campaigns.ListCampaigns(r.Context(), actorFrom(r))
	respond(h, w, r, list, err)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req campaignReq
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Campaigns.CreateCampaign(r.Context(), req.toInput())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	c, err := h.svc.Campaigns.GetCampaign(r.Context(), actorFrom(r), id)
	respond(h, w, r, c, err)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req campaignReq
	if !h.decode(w, r, &req) {
		return
	}
	c, err := h.svc.Campaigns.UpdateCampaign(r.Context(), id, req.toInput())
	respond(h, w, r, c, err)
}

func (h *Handler) handleDeleteCampaign(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	if err := h.svc.Campaigns.DeleteCampaign(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCampaignOverview(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	ov, err := h.svc.Campaigns.Overview(r.Context(), actorFrom(r), id)
	respond(h, w, r, ov, err)
}

type idsReq struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

type assignedResp struct {
	Added int64 `json:"added"`
}

func (h *Handler) handleAssignEmployees(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, h.svc.Campaigns.AssignEmployees)
}

func (h *Handler) handleAssignRetailers(w http.ResponseWriter, r *http.Request) {
	h.assign(w, r, h.svc.Campaigns.AssignRetailers)
}

func (h *Handler) assign(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context, campaignID uuid.UUID, ids []uuid.UUID) (int64, error)) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req idsReq
	if !h.decode(w, r, &req) {
		return
	}
	n, err := fn(r.Context(), id, req.IDs)
	respond(h, w, r, assignedResp{Added: n}, err)
}

func (h *Handler) handleUnassignEmployee(w http.ResponseWriter, r *http.Request) {
	h.unassign(w, r, "employeeID", h.svc.Campaigns.UnassignEmployee)
}

func (h *Handler) handleUnassignRetailer(w http.ResponseWriter, r *http.Request) {
	h.unassign(w, r, "retailerID", h.svc.Campaigns.UnassignRetailer)
}

func (h *Handler) unassign(w http.ResponseWriter, r *http.Request, param string, fn func(ctx context.Context, campaignID, partyID uuid.UUID) error) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	partyID, ok := pathID(w, r, param)
	if !ok {
		return
	}
	if err := fn(r.Context(), id, partyID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleLinkRetailers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	employeeID, ok := pathID(w, r, "employeeID")
	if !ok {
		return
	}
	var req idsReq
	if !h.decode(w, r, &req) {
		return
	}
	n, err := h.svc.Campaigns.LinkRetailers(r.Context(), id, employeeID, req.IDs)
	respond(h, w, r, assignedResp{Added: n}, err)
}

type respondReq struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

func (h *Handler) handleRespond(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	var req respondReq
	if !h.decode(w, r, &req) {
		return
	}
	a, err := h.svc.Campaigns.Respond(r.Context(), actorFrom(r), id, domain.AssignmentStatus(req.Status))
	respond(h, w, r, a, err)
}
