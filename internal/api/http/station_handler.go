package http

import (
	"net/http"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/service"
)

type StationHandler struct {
	stationSvc service.StationService
}

func NewStationHandler(stationSvc service.StationService) *StationHandler {
	return &StationHandler{stationSvc: stationSvc}
}

func (h *StationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var st domain.RefillStation
	if !decodeBody(w, r, &st) {
		return
	}
	if err := h.stationSvc.CreateStation(r.Context(), &st); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, st)
}

func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	stations, err := h.stationSvc.ListStations(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stations)
}

func (h *StationHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	st, err := h.stationSvc.GetStation(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *StationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	var st domain.RefillStation
	if !decodeBody(w, r, &st) {
		return
	}
	st.ID = id
	if err := h.stationSvc.UpdateStation(r.Context(), &st); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *StationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	if err := h.stationSvc.DeleteStation(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type stationPriceRequest struct {
	GasType    string `json:"gas_type"`
	Size       string `json:"size"`
	PriceCents int64  `json:"price_cents"`
}

func (h *StationHandler) SetPrice(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	var req stationPriceRequest
	if !decodeBody(w, r, &req) {
		return
	}
	p := &domain.StationPrice{
		StationID:  id,
		GasType:    domain.GasType(req.GasType),
		Size:       domain.CylinderSize(req.Size),
		PriceCents: req.PriceCents,
	}
	if err := h.stationSvc.SetStationPrice(r.Context(), p); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *StationHandler) ListPrices(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	prices, err := h.stationSvc.ListStationPrices(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}
