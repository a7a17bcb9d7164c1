// Package analytics contiene el caso de uso del resumen financiero del
// dashboard: ventas del día y del mes, saldos pendientes y productos más
// vendidos.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowi-app/flowi-api/internal/application/dto"
	"github.com/flowi-app/flowi-api/internal/domain/repository"
)

const dashboardTopProducts = 5 // número de productos en el widget del dashboard

// DashboardUseCase genera el resumen financiero del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only) más la tasa
// activa. Los totales siempre van por moneda: el dashboard nunca combina
// USD y VES en un solo número.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	rateRepo      repository.ExchangeRateRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, rateRepo repository.ExchangeRateRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, rateRepo: rateRepo}
}

// GetSummary construye el DashboardSummaryDTO.
//
// Cuatro llamadas en paralelo:
//  1. GetSalesTotals(hoy)       → TodaySales
//  2. GetSalesTotals(mes)       → MonthlySales
//  3. GetOutstandingTotals()    → Outstanding (por entidad y moneda)
//  4. GetTopProducts(mes, top5) → TopProducts
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	type totalsResult struct {
		totals *repository.SalesTotalsResult
		err    error
	}
	type outstandingResult struct {
		rows []repository.OutstandingResult
		err  error
	}
	type topResult struct {
		rows []repository.TopProductResult
		err  error
	}

	todayCh := make(chan totalsResult, 1)
	monthCh := make(chan totalsResult, 1)
	outCh := make(chan outstandingResult, 1)
	topCh := make(chan topResult, 1)

	go func() {
		t, err := uc.analyticsRepo.GetSalesTotals(ctx, todayStart, todayEnd)
		todayCh <- totalsResult{t, err}
	}()
	go func() {
		t, err := uc.analyticsRepo.GetSalesTotals(ctx, monthStart, monthEnd)
		monthCh <- totalsResult{t, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetOutstandingTotals(ctx)
		outCh <- outstandingResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.GetTopProducts(ctx, monthStart, monthEnd, dashboardTopProducts)
		topCh <- topResult{rows, err}
	}()

	today := <-todayCh
	month := <-monthCh
	outstanding := <-outCh
	top := <-topCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: ventas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: ventas del mes: %w", month.err)
	}
	if outstanding.err != nil {
		return nil, fmt.Errorf("dashboard: saldos pendientes: %w", outstanding.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: productos top: %w", top.err)
	}

	summary := &dto.DashboardSummaryDTO{
		TodaySales:   toTotalsDTO(today.totals),
		MonthlySales: toTotalsDTO(month.totals),
		Outstanding:  make([]dto.OutstandingSummaryDTO, 0, len(outstanding.rows)),
		TopProducts:  make([]dto.TopProductDTO, 0, len(top.rows)),
		DateLabel:    monthLabel(now),
	}
	for _, row := range outstanding.rows {
		summary.Outstanding = append(summary.Outstanding, dto.OutstandingSummaryDTO{
			EntityType: row.EntityType,
			Currency:   row.Currency,
			Total:      row.Total.Round(2),
			Count:      row.Count,
		})
	}
	for _, row := range top.rows {
		summary.TopProducts = append(summary.TopProducts, dto.TopProductDTO{
			ProductID:   row.ProductID,
			ProductName: row.ProductName,
			UnitsSold:   row.UnitsSold,
			RevenueUSD:  row.RevenueUSD.Round(2),
		})
	}

	// Tasa activa informativa; el dashboard funciona aunque no haya tasa
	if rate, err := uc.rateRepo.GetActive(); err == nil && rate != nil {
		summary.ActiveRate = rate.USDToVES
		summary.RateSource = rate.Source
	} else {
		summary.ActiveRate = decimal.Zero
	}

	return summary, nil
}

func toTotalsDTO(t *repository.SalesTotalsResult) dto.SalesTotalsDTO {
	if t == nil {
		return dto.SalesTotalsDTO{TotalUSD: decimal.Zero, TotalVES: decimal.Zero}
	}
	return dto.SalesTotalsDTO{
		SaleCount: t.SaleCount,
		TotalUSD:  t.TotalUSD.Round(2),
		TotalVES:  t.TotalVES.Round(2),
	}
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Agosto 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
