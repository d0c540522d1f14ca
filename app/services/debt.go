package services

import (
	"time"

	"github.com/Angel-Lizarzado/Transporte/app/models"
)

// ComputeDebt calculates a representative's outstanding balance.
//
// Every active passenger contributes its resolved weekly tariff to both
// accumulators as the upcoming, not-yet-billed baseline. Every transaction
// then adjusts current (charges add, payments subtract). Transactions dated
// on or after the cutoff, the organization's last weekly charge, adjust
// previous as well; without a cutoff every transaction counts for both.
//
// Both values are signed: a representative who overpaid shows a negative
// (credit) balance.
func ComputeDebt(passengers []*models.Passenger, transactions []*models.Transaction, generalTariff float64, cutoff *time.Time) (current, previous float64) {
	for _, p := range passengers {
		if !p.IsActive {
			continue
		}
		fee := p.ResolveTariff(generalTariff)
		current += fee
		previous += fee
	}

	for _, tx := range transactions {
		amount := tx.AmountUSD
		if tx.Kind == models.TransactionPayment {
			amount = -amount
		}
		current += amount
		if cutoff == nil || !tx.Date.Before(*cutoff) {
			previous += amount
		}
	}
	return current, previous
}
