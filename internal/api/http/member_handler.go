package http

import (
	"net/http"
	"time"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/service"
)

type MemberHandler struct {
	memberSvc service.MemberService
	ledgerSvc service.LedgerService
}

func NewMemberHandler(memberSvc service.MemberService, ledgerSvc service.LedgerService) *MemberHandler {
	return &MemberHandler{memberSvc: memberSvc, ledgerSvc: ledgerSvc}
}

type onboardRequest struct {
	CompanyName      string                `json:"company_name"`
	ContactName      string                `json:"contact_name"`
	Phone            string                `json:"phone"`
	Address          string                `json:"address"`
	DepositCounts    service.DepositCounts `json:"deposit_counts"`
	CarriedOverCents *int64                `json:"carried_over_cents,omitempty"`
}

func (h *MemberHandler) Onboard(w http.ResponseWriter, r *http.Request) {
	var req onboardRequest
	if !decodeBody(w, r, &req) {
		return
	}
	member := &domain.Member{
		CompanyName: req.CompanyName,
		ContactName: req.ContactName,
		Phone:       req.Phone,
		Address:     req.Address,
	}
	if err := h.memberSvc.Onboard(r.Context(), member, req.DepositCounts, req.CarriedOverCents); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

func (h *MemberHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	member, err := h.memberSvc.GetMember(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, pageSize := pagination(r)
	members, total, err := h.memberSvc.ListMembers(r.Context(),
		domain.MemberStatus(q.Get("status")), q.Get("q"), page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse{Rows: toRows(members), Total: total})
}

func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	var member domain.Member
	if !decodeBody(w, r, &member) {
		return
	}
	member.ID = id
	if err := h.memberSvc.UpdateMember(r.Context(), &member); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) OutstandingBills(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	bills, total, err := h.ledgerSvc.OutstandingBills(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"bills":       bills,
		"total_cents": total,
	})
}

type payDebtRequest struct {
	AmountCents int64   `json:"amount_cents"`
	SettleTxIDs []int64 `json:"settle_tx_ids"`
}

func (h *MemberHandler) PayDebt(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	var req payDebtRequest
	if !decodeBody(w, r, &req) {
		return
	}
	entry, err := h.memberSvc.PayDebt(r.Context(), id, req.AmountCents, req.SettleTxIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (h *MemberHandler) RequestExit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	member, err := h.memberSvc.RequestExit(r.Context(), id, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, member)
}

func (h *MemberHandler) RefundStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	status, err := h.memberSvc.RefundStatus(r.Context(), id, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *MemberHandler) ConfirmRefund(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID32(w, r, "id")
	if !ok {
		return
	}
	entry, err := h.memberSvc.ConfirmRefund(r.Context(), id, time.Now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
