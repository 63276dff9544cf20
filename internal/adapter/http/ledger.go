package httpadapter

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"agency-desk/internal/adapter/excel"
	"agency-desk/internal/core/domain"
	"agency-desk/internal/core/port"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func (h *Handler) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r.URL)
	filter := port.BudgetFilter{CampaignID: q.uuid("campaign_id")}
	if q.err != nil {
		writeMessage(w, http.StatusBadRequest, q.err.Error())
		return
	}
	list, err := h.svc.Ledger.ListBudgets(r.Context(), actorFrom(r), filter)
	respond(h, w, r, list, err)
}

func (h *Handler) handleMyBudget(w http.ResponseWriter, r *http.Request) {
	actor := actorFrom(r)
	b, err := h.svc.Ledger.GetBudget(r.Context(), actor, actor.ProfileID)
	respond(h, w, r, b, err)
}

func (h *Handler) handleGetBudget(w http.ResponseWriter, r *http.Request) {
	retailerID, ok := pathID(w, r, "retailerID")
	if !ok {
		return
	}
	b, err := h.svc.Ledger.GetBudget(r.Context(), actorFrom(r), retailerID)
	respond(h, w, r, b, err)
}

type allocationReq struct {
	Amount decimal.Decimal `json:"amount"`
}

func (h *Handler) handleSetAllocation(w http.ResponseWriter, r *http.Request) {
	retailerID, campaignID, ok := ledgerPath(w, r)
	if !ok {
		return
	}
	var req allocationReq
	if !h.decode(w, r, &req) {
		return
	}
	b, err := h.svc.Ledger.SetAllocation(r.Context(), retailerID, campaignID, req.Amount)
	respond(h, w, r, b, err)
}

func (h *Handler) handleRemoveCampaignBudget(w http.ResponseWriter, r *http.Request) {
	retailerID, campaignID, ok := ledgerPath(w, r)
	if !ok {
		return
	}
	if err := h.svc.Ledger.RemoveCampaignBudget(r.Context(), retailerID, campaignID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type installmentReq struct {
	Amount  decimal.Decimal `json:"amount"`
	UTR     string          `json:"utr" validate:"notblank,max=64"`
	PaidOn  *date           `json:"paid_on" validate:"required"`
	Remarks string          `json:"remarks" validate:"max=500"`
}

func (h *Handler) handleAddInstallment(w http.ResponseWriter, r *http.Request) {
	retailerID, campaignID, ok := ledgerPath(w, r)
	if !ok {
		return
	}
	var req installmentReq
	if !h.decode(w, r, &req) {
		return
	}
	inst, err := h.svc.Ledger.AddInstallment(r.Context(), retailerID, campaignID, domain.InstallmentInput{
		Amount:  req.Amount,
		UTR:     req.UTR,
		PaidOn:  req.PaidOn.Time,
		Remarks: req.Remarks,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, inst)
}

type installmentPatchReq struct {
	Amount  *decimal.Decimal `json:"amount"`
	UTR     *string          `json:"utr" validate:"omitempty,notblank,max=64"`
	PaidOn  *date            `json:"paid_on"`
	Remarks *string          `json:"remarks" validate:"omitempty,max=500"`
}

func (h *Handler) handleUpdateInstallment(w http.ResponseWriter, r *http.Request) {
	retailerID, campaignID, ok := ledgerPath(w, r)
	if !ok {
		return
	}
	installmentID, ok := pathID(w, r, "installmentID")
	if !ok {
		return
	}
	var req installmentPatchReq
	if !h.decode(w, r, &req) {
		return
	}
	patch := domain.InstallmentPatch{Amount: req.Amount, UTR: req.UTR, Remarks: req.Remarks}
	if req.PaidOn != nil {
		patch.PaidOn = &req.PaidOn.Time
	}
	inst, err := h.svc.Ledger.UpdateInstallment(r.Context(), retailerID, campaignID, installmentID, patch)
	respond(h, w, r, inst, err)
}

func (h *Handler) handleRemoveInstallment(w http.ResponseWriter, r *http.Request) {
	retailerID, campaignID, ok := ledgerPath(w, r)
	if !ok {
		return
	}
	installmentID, ok := pathID(w, r, "installmentID")
	if !ok {
		return
	}
	if err := h.svc.Ledger.RemoveInstallment(r.Context(), retailerID, campaignID, installmentID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleImportAllocations(w http.ResponseWriter, r *http.Request) {
	file, name, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	rows, err := excel.ParseAllocations(file, name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Ledger.ImportAllocations(r.Context(), rows)
	respond(h, w, r, res, err)
}

func (h *Handler) handleImportInstallments(w http.ResponseWriter, r *http.Request) {
	file, name, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()
	rows, err := excel.ParseInstallments(file, name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	res, err := h.svc.Ledger.ImportInstallments(r.Context(), rows)
	respond(h, w, r, res, err)
}

func (h *Handler) handleExportLedger(w http.ResponseWriter, r *http.Request) {
	q := newQuery(r.URL)
	filter := port.BudgetFilter{CampaignID: q.uuid("campaign_id")}
	if q.err != nil {
		writeMessage(w, http.StatusBadRequest, q.err.Error())
		return
	}
	rows, err := h.svc.Ledger.ExportLedger(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	name := fmt.Sprintf("ledger-%s.xlsx", time.Now().UTC().Format("20060102"))
	h.writeWorkbook(w, r, name, func(out io.Writer) error { return excel.WriteLedger(out, rows) })
}

func (h *Handler) handleImportTemplate(w http.ResponseWriter, r *http.Request) {
	switch kind := chi.URLParam(r, "kind"); kind {
	case "allocations":
		h.writeWorkbook(w, r, "tca-template.xlsx", excel.WriteAllocationTemplate)
	case "installments":
		h.writeWorkbook(w, r, "installments-template.xlsx", excel.WriteInstallmentTemplate)
	default:
		writeMessage(w, http.StatusNotFound, fmt.Sprintf("unknown template %q", kind))
	}
}

func (h *Handler) writeWorkbook(w http.ResponseWriter, r *http.Request, name string, write func(io.Writer) error) {
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	if err := write(w); err != nil {
		h.logger.ErrorContext(r.Context(), "write workbook", "file", name, "error", err)
	}
}

func ledgerPath(w http.ResponseWriter, r *http.Request) (retailerID, campaignID uuid.UUID, ok bool) {
	if retailerID, ok = pathID(w, r, "retailerID"); !ok {
		return
	}
	campaignID, ok = pathID(w, r, "campaignID")
	return
}
