package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
	"gasdepot-backend/internal/service"
)

type CylinderHandler struct {
	cylinderSvc service.CylinderService
}

func NewCylinderHandler(cylinderSvc service.CylinderService) *CylinderHandler {
	return &CylinderHandler{cylinderSvc: cylinderSvc}
}

type addCylinderRequest struct {
	SerialCode   string `json:"serial_code"`
	GasType      string `json:"gas_type"`
	Size         string `json:"size"`
	Status       string `json:"status,omitempty"`
	LastLocation string `json:"last_location,omitempty"`
}

func (h *CylinderHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addCylinderRequest
	if !decodeBody(w, r, &req) {
		return
	}
	cyl := &domain.Cylinder{
		SerialCode:   req.SerialCode,
		GasType:      domain.GasType(req.GasType),
		Size:         domain.CylinderSize(req.Size),
		Status:       domain.CylinderStatus(req.Status),
		LastLocation: req.LastLocation,
	}
	if err := h.cylinderSvc.AddCylinder(r.Context(), cyl); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cyl)
}

func (h *CylinderHandler) Import(w http.ResponseWriter, r *http.Request) {
	result, err := h.cylinderSvc.ImportCSV(r.Context(), r.Body)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *CylinderHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	cyl, err := h.cylinderSvc.GetCylinder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cyl)
}

func (h *CylinderHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.CylinderFilter{
		Status:  domain.CylinderStatus(q.Get("status")),
		GasType: domain.GasType(q.Get("gas_type")),
		Size:    domain.CylinderSize(q.Get("size")),
		Query:   q.Get("q"),
	}
	page, pageSize := pagination(r)

	// Serial lookup short path for scanners.
	if serial := q.Get("serial"); serial != "" {
		cyl, err := h.cylinderSvc.GetBySerial(r.Context(), serial)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, listResponse{Rows: []interface{}{cyl}, Total: 1})
		return
	}

	cyls, total, err := h.cylinderSvc.ListCylinders(r.Context(), filter, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Rows: toRows(cyls), Total: total})
}

func (h *CylinderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	var cyl domain.Cylinder
	if !decodeBody(w, r, &cyl) {
		return
	}
	cyl.ID = id
	if err := h.cylinderSvc.AdminUpdate(r.Context(), &cyl); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cyl)
}

func (h *CylinderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	if err := h.cylinderSvc.DeleteCylinder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type damageRequest struct {
	ClearHolder bool `json:"clear_holder"`
}

func (h *CylinderHandler) MarkDamaged(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	var req damageRequest
	if !decodeBody(w, r, &req) {
		return
	}
	cyl, err := h.cylinderSvc.MarkDamaged(r.Context(), id, req.ClearHolder)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cyl)
}

type refillBatchRequest struct {
	CylinderIDs []int32 `json:"cylinder_ids"`
	StationID   int32   `json:"station_id"`
}

func (h *CylinderHandler) SendToRefill(w http.ResponseWriter, r *http.Request) {
	var req refillBatchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	txs, err := h.cylinderSvc.SendToRefill(r.Context(), req.CylinderIDs, req.StationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *CylinderHandler) ReceiveFromRefill(w http.ResponseWriter, r *http.Request) {
	var req refillBatchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	txs, err := h.cylinderSvc.ReceiveFromRefill(r.Context(), req.CylinderIDs, req.StationID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

type dispatchRequest struct {
	CylinderIDs []int32 `json:"cylinder_ids"`
}

func (h *CylinderHandler) Dispatch(w http.ResponseWriter, r *http.Request) {
	var req dispatchRequest
	if !decodeBody(w, r, &req) {
		return
	}
	txs, err := h.cylinderSvc.DispatchForDelivery(r.Context(), req.CylinderIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, txs)
}

func (h *CylinderHandler) StockLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.cylinderSvc.StockLevels(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, levels)
}

// helpers shared by handlers

type listResponse struct {
	Rows  []interface{} `json:"rows"`
	Total int32         `json:"total"`
}

func toRows[T any](items []T) []interface{} {
	rows := make([]interface{}, len(items))
	for i := range items {
		rows[i] = items[i]
	}
	return rows
}

func pathID32(w http.ResponseWriter, r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid id"})
		return 0, false
	}
	return int32(id), true
}

func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 50
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 500 {
		pageSize = int32(v)
	}
	return page, pageSize
}
