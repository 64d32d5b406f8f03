package http

import (
	"net/http"
	"strconv"
	"time"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/repository"
	"gasdepot-backend/internal/service"
)

type LedgerHandler struct {
	ledgerSvc service.LedgerService
}

func NewLedgerHandler(ledgerSvc service.LedgerService) *LedgerHandler {
	return &LedgerHandler{ledgerSvc: ledgerSvc}
}

func pathID32Query(raw string) (int32, bool) {
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

func (h *LedgerHandler) AuditTrail(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.TransactionFilter{
		Type: domain.TransactionType(q.Get("type")),
	}
	if v, ok := pathID32Query(q.Get("member_id")); ok {
		filter.MemberID = v
	}
	if t, err := time.Parse("2006-01-02", q.Get("from")); err == nil {
		filter.From = t
	}
	if t, err := time.Parse("2006-01-02", q.Get("to")); err == nil {
		filter.To = t
	}
	page, pageSize := pagination(r)

	entries, total, err := h.ledgerSvc.AuditTrail(r.Context(), filter, q.Get("q"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Rows: toRows(entries), Total: total})
}

func (h *LedgerHandler) HoldReport(w http.ResponseWriter, r *http.Request) {
	holds, err := h.ledgerSvc.HoldReport(r.Context(), time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, holds)
}
