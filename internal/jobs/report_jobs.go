package jobs

import (
	"context"
	"time"

	"gasdepot-backend/internal/domain"
	"gasdepot-backend/internal/logger"
	"gasdepot-backend/internal/service"
)

// ReportLongHolds emails the operator every rented cylinder held past the
// long-hold threshold. The thresholds only shape reporting; nothing about
// the rental itself changes.
func (jr *JobRunner) ReportLongHolds() {
	jr.runWithRecovery("ReportLongHolds", func() {
		ctx := context.Background()

		holds, err := jr.services.Ledger.HoldReport(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to compute hold report", "error", err)
			return
		}

		var items []service.HoldAlertItem
		for _, h := range holds {
			if h.HeldDays < jr.config.Rules.LongHoldDays {
				continue
			}
			name := "Unknown"
			if m, err := jr.services.Member.GetMember(ctx, h.MemberID); err == nil {
				name = m.CompanyName
			}
			items = append(items, service.HoldAlertItem{
				SerialCode:  h.Cylinder.SerialCode,
				CompanyName: name,
				HeldDays:    h.HeldDays,
			})
		}
		if len(items) == 0 {
			logger.Info("No long holds to report")
			return
		}

		to := jr.config.SendGrid.OperatorEmail
		if err := jr.services.Email.SendLongHoldAlert(ctx, to, items); err != nil {
			logger.Error("Failed to send long-hold alert", "error", err)
			return
		}
		logger.Info("Sent long-hold alert", "count", len(items))
	})
}

// ReportLowStock emails the operator every (gas, size) pair whose available
// count fell below the configured threshold.
func (jr *JobRunner) ReportLowStock() {
	jr.runWithRecovery("ReportLowStock", func() {
		ctx := context.Background()

		levels, err := jr.services.Cylinder.StockLevels(ctx)
		if err != nil {
			logger.Error("Failed to read stock levels", "error", err)
			return
		}

		var items []service.StockAlertItem
		for _, lvl := range levels {
			if lvl.Available < jr.config.Rules.LowStockThreshold {
				items = append(items, service.StockAlertItem{
					GasType:   lvl.GasType,
					Size:      lvl.Size,
					Available: lvl.Available,
				})
			}
		}
		if len(items) == 0 {
			logger.Info("Stock levels healthy")
			return
		}

		to := jr.config.SendGrid.OperatorEmail
		if err := jr.services.Email.SendLowStockAlert(ctx, to, items); err != nil {
			logger.Error("Failed to send low-stock alert", "error", err)
			return
		}
		logger.Info("Sent low-stock alert", "count", len(items))
	})
}

// ReportRefundReady emails the operator every pending-exit member whose
// cooling period has elapsed. Eligibility is recomputed here, never stored.
func (jr *JobRunner) ReportRefundReady() {
	jr.runWithRecovery("ReportRefundReady", func() {
		ctx := context.Background()
		now := time.Now()

		pending, _, err := jr.services.Member.ListMembers(ctx, domain.MemberStatusPendingExit, "", 1, 1000)
		if err != nil {
			logger.Error("Failed to list pending-exit members", "error", err)
			return
		}

		var items []service.RefundAlertItem
		for _, m := range pending {
			if m.ExitRequestedOn == nil {
				continue
			}
			if eligible, _ := domain.RefundEligibility(*m.ExitRequestedOn, now); eligible {
				items = append(items, service.RefundAlertItem{
					CompanyName: m.CompanyName,
					PayoutCents: domain.RefundAmount(m.DepositCents),
				})
			}
		}
		if len(items) == 0 {
			logger.Info("No refunds ready")
			return
		}

		to := jr.config.SendGrid.OperatorEmail
		if err := jr.services.Email.SendRefundReadyAlert(ctx, to, items); err != nil {
			logger.Error("Failed to send refund-ready alert", "error", err)
			return
		}
		logger.Info("Sent refund-ready alert", "count", len(items))
	})
}
