package metrics

import (
	"log/slog"
	"math"
	"sort"

	"fundpulse/pkg/contracts/domain"
)

const (
	topHolderLimit    = 10
	recentRecordLimit = 8
)

// Calculator derives metric snapshots from typed records. It holds no state
// beyond its logger; every Calculate call works only from its inputs.
type Calculator struct {
	logger *slog.Logger
}

// NewCalculator creates a Calculator.
func NewCalculator(logger *slog.Logger) *Calculator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Calculator{logger: logger}
}

// round2 rounds monetary aggregates to cents at computation time.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Calculate produces the full snapshot for an already-filtered dataset view.
func (c *Calculator) Calculate(invoices []domain.Invoice, creditNotes []domain.CreditNote) *Snapshot {
	snap := &Snapshot{
		TotalInvoices:    len(invoices),
		TotalCreditNotes: len(creditNotes),
	}

	var totalSum, paidSum, outstandingSum float64
	validTotals := 0
	for _, inv := range invoices {
		if inv.Total.Valid {
			totalSum += inv.Total.Value
			validTotals++
		}
		paidSum += inv.AmountPaid.Or(0)
		outstandingSum += inv.DueAmount.Or(0)
	}
	snap.TotalInvoiceAmount = round2(totalSum)
	snap.TotalAmountPaid = round2(paidSum)
	snap.TotalOutstanding = round2(outstandingSum)
	if validTotals > 0 {
		snap.AvgInvoiceAmount = domain.NewFloat(round2(totalSum / float64(validTotals)))
	}
	if snap.TotalInvoiceAmount > 0 {
		snap.CollectionRate = round2(snap.TotalAmountPaid / snap.TotalInvoiceAmount * 100)
	}

	var creditSum, appliedSum, unappliedSum float64
	for _, cn := range creditNotes {
		creditSum += cn.Total.Or(0)
		appliedSum += cn.AppliedAmount.Or(0)
		unappliedSum += cn.UnappliedAmount.Or(0)
	}
	snap.TotalCreditAmount = round2(creditSum)
	snap.TotalAppliedCredit = round2(appliedSum)
	snap.TotalUnappliedCredit = round2(unappliedSum)

	snap.PaymentStatusBreakdown = paymentStatusBreakdown(invoices)
	snap.CreditStatusBreakdown = creditStatusBreakdown(creditNotes)
	snap.MonthlyTrends = monthlyTrends(invoices)
	snap.YearlyInvoices = yearlyInvoices(invoices)
	snap.YearlyCredits = yearlyCredits(creditNotes)
	snap.TopHolders = topHolders(invoices, topHolderLimit)
	snap.RecentInvoices = recentInvoices(invoices, recentRecordLimit)
	snap.RecentCreditNotes = recentCreditNotes(creditNotes, recentRecordLimit)

	c.logger.Debug("Calculated metrics snapshot",
		slog.Int("invoices", snap.TotalInvoices),
		slog.Int("credit_notes", snap.TotalCreditNotes),
		slog.Float64("total_invoice_amount", snap.TotalInvoiceAmount))

	return snap
}

// sortBreakdown orders a status breakdown by descending count, ties broken
// by label so output is stable across runs.
func sortBreakdown(counts map[string]int) []StatusCount {
	breakdown := make([]StatusCount, 0, len(counts))
	for status, count := range counts {
		breakdown = append(breakdown, StatusCount{Status: status, Count: count})
	}
	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Count != breakdown[j].Count {
			return breakdown[i].Count > breakdown[j].Count
		}
		return breakdown[i].Status < breakdown[j].Status
	})
	return breakdown
}

func paymentStatusBreakdown(invoices []domain.Invoice) []StatusCount {
	counts := make(map[string]int)
	for _, inv := range invoices {
		if inv.PaymentStatus.Valid {
			counts[inv.PaymentStatus.Value]++
		}
	}
	return sortBreakdown(counts)
}

func creditStatusBreakdown(creditNotes []domain.CreditNote) []StatusCount {
	counts := make(map[string]int)
	for _, cn := range creditNotes {
		if cn.CreditStatus.Valid {
			counts[cn.CreditStatus.Value]++
		}
	}
	return sortBreakdown(counts)
}

// monthlyTrends rolls invoices up by invoice month. Invoices without a valid
// invoice date are skipped from this rollup only.
func monthlyTrends(invoices []domain.Invoice) []MonthlyTrend {
	byMonth := make(map[string]*MonthlyTrend)
	for _, inv := range invoices {
		if !inv.InvoiceDate.Valid {
			continue
		}
		key := inv.InvoiceDate.Time.Format("2006-01")
		trend, ok := byMonth[key]
		if !ok {
			trend = &MonthlyTrend{Month: key}
			byMonth[key] = trend
		}
		trend.TotalAmount += inv.Total.Or(0)
		trend.AmountPaid += inv.AmountPaid.Or(0)
		trend.InvoiceCount++
	}

	trends := make([]MonthlyTrend, 0, len(byMonth))
	for _, trend := range byMonth {
		trend.TotalAmount = round2(trend.TotalAmount)
		trend.AmountPaid = round2(trend.AmountPaid)
		trends = append(trends, *trend)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Month < trends[j].Month })
	return trends
}

func yearlyInvoices(invoices []domain.Invoice) []YearlyRollup {
	byYear := make(map[int]*YearlyRollup)
	for _, inv := range invoices {
		if !inv.InvoiceDate.Valid {
			continue
		}
		year := inv.InvoiceDate.Time.Year()
		rollup, ok := byYear[year]
		if !ok {
			rollup = &YearlyRollup{Year: year}
			byYear[year] = rollup
		}
		rollup.TotalAmount += inv.Total.Or(0)
		rollup.Count++
	}
	return sortYearly(byYear)
}

func yearlyCredits(creditNotes []domain.CreditNote) []YearlyRollup {
	byYear := make(map[int]*YearlyRollup)
	for _, cn := range creditNotes {
		if !cn.Date.Valid {
			continue
		}
		year := cn.Date.Time.Year()
		rollup, ok := byYear[year]
		if !ok {
			rollup = &YearlyRollup{Year: year}
			byYear[year] = rollup
		}
		rollup.TotalAmount += cn.Total.Or(0)
		rollup.Count++
	}
	return sortYearly(byYear)
}

func sortYearly(byYear map[int]*YearlyRollup) []YearlyRollup {
	rollups := make([]YearlyRollup, 0, len(byYear))
	for _, rollup := range byYear {
		rollup.TotalAmount = round2(rollup.TotalAmount)
		rollups = append(rollups, *rollup)
	}
	sort.Slice(rollups, func(i, j int) bool { return rollups[i].Year < rollups[j].Year })
	return rollups
}

// topHolders ranks account holders by summed invoice totals. Invoices with no
// display name are skipped; a blank bar tells the reader nothing.
func topHolders(invoices []domain.Invoice, limit int) []HolderTotal {
	totals := make(map[string]float64)
	for _, inv := range invoices {
		if !inv.DisplayName.Valid {
			continue
		}
		totals[inv.DisplayName.Value] += inv.Total.Or(0)
	}

	holders := make([]HolderTotal, 0, len(totals))
	for name, total := range totals {
		holders = append(holders, HolderTotal{DisplayName: name, TotalAmount: round2(total)})
	}
	sort.Slice(holders, func(i, j int) bool {
		if holders[i].TotalAmount != holders[j].TotalAmount {
			return holders[i].TotalAmount > holders[j].TotalAmount
		}
		return holders[i].DisplayName < holders[j].DisplayName
	})
	if len(holders) > limit {
		holders = holders[:limit]
	}
	return holders
}

func recentInvoices(invoices []domain.Invoice, limit int) []domain.Invoice {
	recent := make([]domain.Invoice, len(invoices))
	copy(recent, invoices)
	sort.SliceStable(recent, func(i, j int) bool {
		return laterDate(recent[i].Created, recent[j].Created)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

func recentCreditNotes(creditNotes []domain.CreditNote, limit int) []domain.CreditNote {
	recent := make([]domain.CreditNote, len(creditNotes))
	copy(recent, creditNotes)
	sort.SliceStable(recent, func(i, j int) bool {
		return laterDate(recent[i].Created, recent[j].Created)
	})
	if len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// laterDate orders valid dates newest first and sinks missing dates to the end.
func laterDate(a, b domain.Date) bool {
	if a.Valid != b.Valid {
		return a.Valid
	}
	if !a.Valid {
		return false
	}
	return a.Time.After(b.Time)
}
