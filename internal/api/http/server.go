package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Handlers struct {
	Cylinder *CylinderHandler
	Member   *MemberHandler
	Rental   *RentalHandler
	Ledger   *LedgerHandler
	Price    *PriceHandler
	Station  *StationHandler
}

// NewRouter wires all routes under /api/v1.
func NewRouter(h *Handlers) *mux.Router {
	r := mux.NewRouter()
	r.Use(requestID, requestLogging)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Cylinder catalog and lifecycle
	api.HandleFunc("/cylinders", h.Cylinder.Add).Methods(http.MethodPost)
	api.HandleFunc("/cylinders", h.Cylinder.List).Methods(http.MethodGet)
	api.HandleFunc("/cylinders/import", h.Cylinder.Import).Methods(http.MethodPost)
	api.HandleFunc("/cylinders/refill/send", h.Cylinder.SendToRefill).Methods(http.MethodPost)
	api.HandleFunc("/cylinders/refill/receive", h.Cylinder.ReceiveFromRefill).Methods(http.MethodPost)
	api.HandleFunc("/cylinders/delivery/dispatch", h.Cylinder.Dispatch).Methods(http.MethodPost)
	api.HandleFunc("/cylinders/stock", h.Cylinder.StockLevels).Methods(http.MethodGet)
	api.HandleFunc("/cylinders/{id:[0-9]+}", h.Cylinder.Get).Methods(http.MethodGet)
	api.HandleFunc("/cylinders/{id:[0-9]+}", h.Cylinder.Update).Methods(http.MethodPut)
	api.HandleFunc("/cylinders/{id:[0-9]+}", h.Cylinder.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/cylinders/{id:[0-9]+}/damage", h.Cylinder.MarkDamaged).Methods(http.MethodPost)

	// Members and their financial ledger
	api.HandleFunc("/members", h.Member.Onboard).Methods(http.MethodPost)
	api.HandleFunc("/members", h.Member.List).Methods(http.MethodGet)
	api.HandleFunc("/members/{id:[0-9]+}", h.Member.Get).Methods(http.MethodGet)
	api.HandleFunc("/members/{id:[0-9]+}", h.Member.Update).Methods(http.MethodPut)
	api.HandleFunc("/members/{id:[0-9]+}/bills", h.Member.OutstandingBills).Methods(http.MethodGet)
	api.HandleFunc("/members/{id:[0-9]+}/debt-payments", h.Member.PayDebt).Methods(http.MethodPost)
	api.HandleFunc("/members/{id:[0-9]+}/exit-request", h.Member.RequestExit).Methods(http.MethodPost)
	api.HandleFunc("/members/{id:[0-9]+}/refund", h.Member.RefundStatus).Methods(http.MethodGet)
	api.HandleFunc("/members/{id:[0-9]+}/refund", h.Member.ConfirmRefund).Methods(http.MethodPost)
	api.HandleFunc("/members/{id:[0-9]+}/prices", h.Price.ListMemberPrices).Methods(http.MethodGet)
	api.HandleFunc("/members/{id:[0-9]+}/prices", h.Price.UpsertMemberPrice).Methods(http.MethodPut)
	api.HandleFunc("/members/{id:[0-9]+}/prices", h.Price.DeleteMemberPrice).Methods(http.MethodDelete)

	// Rental submissions
	api.HandleFunc("/rentals", h.Rental.Submit).Methods(http.MethodPost)
	api.HandleFunc("/rentals/quote", h.Rental.Quote).Methods(http.MethodPost)

	// Ledger read side
	api.HandleFunc("/transactions", h.Ledger.AuditTrail).Methods(http.MethodGet)
	api.HandleFunc("/reports/holds", h.Ledger.HoldReport).Methods(http.MethodGet)

	// Base price table
	api.HandleFunc("/prices/base", h.Price.ListBase).Methods(http.MethodGet)
	api.HandleFunc("/prices/base", h.Price.UpsertBase).Methods(http.MethodPut)
	api.HandleFunc("/prices/base", h.Price.DeleteBase).Methods(http.MethodDelete)

	// Refill stations
	api.HandleFunc("/stations", h.Station.Create).Methods(http.MethodPost)
	api.HandleFunc("/stations", h.Station.List).Methods(http.MethodGet)
	api.HandleFunc("/stations/{id:[0-9]+}", h.Station.Get).Methods(http.MethodGet)
	api.HandleFunc("/stations/{id:[0-9]+}", h.Station.Update).Methods(http.MethodPut)
	api.HandleFunc("/stations/{id:[0-9]+}", h.Station.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/stations/{id:[0-9]+}/prices", h.Station.SetPrice).Methods(http.MethodPut)
	api.HandleFunc("/stations/{id:[0-9]+}/prices", h.Station.ListPrices).Methods(http.MethodGet)

	return r
}
