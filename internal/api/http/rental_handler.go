package http

import (
	"net/http"

	"gasdepot-backend/internal/service"
)

type RentalHandler struct {
	rentalSvc  service.RentalService
	pricingSvc service.PricingService
}

func NewRentalHandler(rentalSvc service.RentalService, pricingSvc service.PricingService) *RentalHandler {
	return &RentalHandler{rentalSvc: rentalSvc, pricingSvc: pricingSvc}
}

type submitRentalRequest struct {
	MemberID           int32   `json:"member_id"`
	RentCylinderIDs    []int32 `json:"rent_cylinder_ids"`
	ReturnCylinderIDs  []int32 `json:"return_cylinder_ids"`
	TotalRentCostCents int64   `json:"total_rent_cost_cents"`
	IsUnpaid           bool    `json:"is_unpaid"`
}

// Submit applies one compiled rental/return action and returns the appended
// ledger entries.
func (h *RentalHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRentalRequest
	if !decodeBody(w, r, &req) {
		return
	}
	txs, err := h.rentalSvc.CompileAndApply(r.Context(),
		req.MemberID, req.RentCylinderIDs, req.ReturnCylinderIDs, req.TotalRentCostCents, req.IsUnpaid)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, txs)
}

type quoteRequest struct {
	MemberID    int32   `json:"member_id"`
	CylinderIDs []int32 `json:"cylinder_ids"`
}

// Quote previews per-item prices for the operator before submission. A
// missing price shows up as zero with any_missing set so the UI can warn.
func (h *RentalHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decodeBody(w, r, &req) {
		return
	}
	quote, err := h.pricingSvc.QuoteRental(r.Context(), req.CylinderIDs, req.MemberID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quote)
}
