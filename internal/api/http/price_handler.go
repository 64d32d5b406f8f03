package http

import (
	"net/http"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
)

type PriceHandler struct {
	priceRepo repository.PriceRepository
}

func NewPriceHandler(priceRepo repository.PriceRepository) *PriceHandler {
	return &PriceHandler{priceRepo: priceRepo}
}

type basePriceRequest struct {
	GasType    string `json:"gas_type"`
	Size       string `json:"size"`
	PriceCents int64  `json:"price_cents"`
}

func (h *PriceHandler) ListBase(w http.ResponseWriter, r *http.Request) {
	prices, err := h.priceRepo.ListBasePrices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}

func (h *PriceHandler) UpsertBase(w http.ResponseWriter, r *http.Request) {
	var req basePriceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p := &domain.BasePrice{
		GasType:    domain.GasType(req.GasType),
		Size:       domain.CylinderSize(req.Size),
		PriceCents: req.PriceCents,
	}
	if !p.GasType.Valid() || !p.Size.Valid() || p.PriceCents < 0 {
		writeError(w, domain.ErrValidation)
		return
	}
	if err := h.priceRepo.UpsertBasePrice(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PriceHandler) DeleteBase(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	gas := domain.GasType(q.Get("gas_type"))
	size := domain.CylinderSize(q.Get("size"))
	if !gas.Valid() || !size.Valid() {
		writeError(w, domain.ErrValidation)
		return
	}
	if err := h.priceRepo.DeleteBasePrice(r.Context(), gas, size); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *PriceHandler) ListMemberPrices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	prices, err := h.priceRepo.ListMemberPrices(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}

func (h *PriceHandler) UpsertMemberPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	var req basePriceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p := &domain.MemberPrice{
		MemberID:   id,
		GasType:    domain.GasType(req.GasType),
		Size:       domain.CylinderSize(req.Size),
		PriceCents: req.PriceCents,
	}
	if !p.GasType.Valid() || !p.Size.Valid() || p.PriceCents < 0 {
		writeError(w, domain.ErrValidation)
		return
	}
	if err := h.priceRepo.UpsertMemberPrice(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *PriceHandler) DeleteMemberPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	q := r.URL.Query()
	gas := domain.GasType(q.Get("gas_type"))
	size := domain.CylinderSize(q.Get("size"))
	if !gas.Valid() || !size.Valid() {
		writeError(w, domain.ErrValidation)
		return
	}
	if err := h.priceRepo.DeleteMemberPrice(r.Context(), id, gas, size); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}
