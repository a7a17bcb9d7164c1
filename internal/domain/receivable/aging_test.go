package receivable_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowi-app/flowi-api/internal/domain"
	"github.com/flowi-app/flowi-api/internal/domain/entity"
	"github.com/flowi-app/flowi-api/internal/domain/receivable"
)

var (
	testNow  = time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC)
	testDue  = time.Date(2024, 11, 25, 0, 0, 0, 0, time.UTC)
	hundred  = decimal.NewFromInt(100)
)

func pending(num, name, currency string, due time.Time) *entity.Receivable {
	r, _ := receivable.New(num, entity.EntityTypeCustomer, name, hundred, currency, due, 30, "", testDue.AddDate(0, 0, -30))
	return r
}

// ── New ───────────────────────────────────────────────────────────────────────

func TestNew_EstadoInicialPending(t *testing.T) {
	r, err := receivable.New("INV-001", entity.EntityTypeCustomer, "Bodega El Sol", hundred, entity.CurrencyUSD, testDue, 30, "venta a crédito", testNow)
	require.NoError(t, err)
	assert.Equal(t, entity.ReceivableStatusPending, r.Status)
	assert.Equal(t, "INV-001", r.InvoiceNumber)
}

func TestNew_DueDateDesdePlazo(t *testing.T) {
	r, err := receivable.New("INV-002", entity.EntityTypeSupplier, "Distribuidora Caracas", hundred, entity.CurrencyVES, time.Time{}, 15, "", testNow)
	require.NoError(t, err)
	assert.Equal(t, testNow.AddDate(0, 0, 15), r.DueDate, "sin dueDate explícito se usa now + plazo")
}

func TestNew_Validaciones(t *testing.T) {
	cases := []struct {
		name string
		fn   func() (*entity.Receivable, error)
	}{
		{"monto cero", func() (*entity.Receivable, error) {
			return receivable.New("INV-1", entity.EntityTypeCustomer, "X", decimal.Zero, entity.CurrencyUSD, testDue, 30, "", testNow)
		}},
		{"monto negativo", func() (*entity.Receivable, error) {
			return receivable.New("INV-1", entity.EntityTypeCustomer, "X", decimal.NewFromInt(-5), entity.CurrencyUSD, testDue, 30, "", testNow)
		}},
		{"tipo de entidad desconocido", func() (*entity.Receivable, error) {
			return receivable.New("INV-1", "employee", "X", hundred, entity.CurrencyUSD, testDue, 30, "", testNow)
		}},
		{"moneda desconocida", func() (*entity.Receivable, error) {
			return receivable.New("INV-1", entity.EntityTypeCustomer, "X", hundred, "EUR", testDue, 30, "", testNow)
		}},
		{"sin número de factura", func() (*entity.Receivable, error) {
			return receivable.New("", entity.EntityTypeCustomer, "X", hundred, entity.CurrencyUSD, testDue, 30, "", testNow)
		}},
		{"sin nombre de entidad", func() (*entity.Receivable, error) {
			return receivable.New("INV-1", entity.EntityTypeCustomer, "", hundred, entity.CurrencyUSD, testDue, 30, "", testNow)
		}},
	}
	for _, tc := range cases {
		_, err := tc.fn()
		assert.ErrorIs(t, err, domain.ErrInvalidInput, tc.name)
	}
}

// ── RefreshStatuses ───────────────────────────────────────────────────────────

// Escenario de referencia: vencida el 2024-11-25, pending, asOf 2024-12-01 → overdue.
func TestRefreshStatuses_PendienteVencidaPasaAOverdue(t *testing.T) {
	r := pending("INV-010", "Bodega El Sol", entity.CurrencyUSD, testDue)
	changed := receivable.RefreshStatuses([]*entity.Receivable{r}, testNow)

	require.Len(t, changed, 1)
	assert.Equal(t, entity.ReceivableStatusOverdue, r.Status)
}

func TestRefreshStatuses_NoVencidaSigueIgual(t *testing.T) {
	r := pending("INV-011", "Bodega El Sol", entity.CurrencyUSD, testNow.AddDate(0, 0, 10))
	changed := receivable.RefreshStatuses([]*entity.Receivable{r}, testNow)

	assert.Empty(t, changed)
	assert.Equal(t, entity.ReceivableStatusPending, r.Status)
}

func TestRefreshStatuses_NuncaTocaPagadas(t *testing.T) {
	r := pending("INV-012", "Bodega El Sol", entity.CurrencyUSD, testDue)
	require.NoError(t, receivable.MarkPaid(r, testNow))

	changed := receivable.RefreshStatuses([]*entity.Receivable{r}, testNow.AddDate(0, 0, 30))
	assert.Empty(t, changed)
	assert.Equal(t, entity.ReceivableStatusPaid, r.Status, "paid es terminal")
}

func TestRefreshStatuses_EsIdempotente(t *testing.T) {
	list := []*entity.Receivable{
		pending("INV-013", "A", entity.CurrencyUSD, testDue),
		pending("INV-014", "B", entity.CurrencyVES, testNow.AddDate(0, 0, 5)),
	}
	first := receivable.RefreshStatuses(list, testNow)
	require.Len(t, first, 1)

	second := receivable.RefreshStatuses(list, testNow)
	assert.Empty(t, second, "una segunda pasada con el mismo asOf no cambia nada")
	assert.Equal(t, entity.ReceivableStatusOverdue, list[0].Status)
	assert.Equal(t, entity.ReceivableStatusPending, list[1].Status)
}

// ── MarkPaid ──────────────────────────────────────────────────────────────────

func TestMarkPaid_DesdePendingYOverdue(t *testing.T) {
	r := pending("INV-020", "A", entity.CurrencyUSD, testDue)
	require.NoError(t, receivable.MarkPaid(r, testNow))
	assert.Equal(t, entity.ReceivableStatusPaid, r.Status)

	o := pending("INV-021", "A", entity.CurrencyUSD, testDue)
	receivable.RefreshStatuses([]*entity.Receivable{o}, testNow)
	require.Equal(t, entity.ReceivableStatusOverdue, o.Status)
	require.NoError(t, receivable.MarkPaid(o, testNow))
	assert.Equal(t, entity.ReceivableStatusPaid, o.Status)
}

func TestMarkPaid_DoblePagoSiempreFalla(t *testing.T) {
	r := pending("INV-022", "A", entity.CurrencyUSD, testDue)
	require.NoError(t, receivable.MarkPaid(r, testNow))

	before := *r
	err := receivable.MarkPaid(r, testNow.Add(time.Hour))
	assert.ErrorIs(t, err, domain.ErrAlreadyPaid)
	assert.Equal(t, before, *r, "el doble pago no debe mutar la cuenta")
}

// ── AggregateOutstanding ──────────────────────────────────────────────────────

func TestAggregateOutstanding_NuncaMezclaMonedas(t *testing.T) {
	list := []*entity.Receivable{
		pending("INV-030", "A", entity.CurrencyUSD, testDue),
		pending("INV-031", "B", entity.CurrencyVES, testDue),
	}
	totals := receivable.AggregateOutstanding(list, "", "")

	require.Len(t, totals, 2, "sin filtro de moneda el resultado es un desglose por moneda")
	assert.True(t, totals[entity.CurrencyUSD].Equal(hundred))
	assert.True(t, totals[entity.CurrencyVES].Equal(hundred))
}

func TestAggregateOutstanding_IncluyePendingYOverdue_ExcluyePaid(t *testing.T) {
	a := pending("INV-032", "A", entity.CurrencyUSD, testDue)
	b := pending("INV-033", "A", entity.CurrencyUSD, testDue)
	c := pending("INV-034", "A", entity.CurrencyUSD, testDue)
	receivable.RefreshStatuses([]*entity.Receivable{b}, testNow)
	require.NoError(t, receivable.MarkPaid(c, testNow))

	totals := receivable.AggregateOutstanding([]*entity.Receivable{a, b, c}, "", "")
	assert.Equal(t, "200.00", totals[entity.CurrencyUSD].StringFixed(2),
		"pending + overdue suman, paid no")
}

func TestAggregateOutstanding_FiltraPorEntidadYMoneda(t *testing.T) {
	list := []*entity.Receivable{
		pending("INV-035", "Bodega El Sol", entity.CurrencyUSD, testDue),
		pending("INV-036", "Bodega El Sol", entity.CurrencyVES, testDue),
		pending("INV-037", "Otro Cliente", entity.CurrencyUSD, testDue),
	}

	byEntity := receivable.AggregateOutstanding(list, "Bodega El Sol", "")
	require.Len(t, byEntity, 2)
	assert.Equal(t, "100.00", byEntity[entity.CurrencyUSD].StringFixed(2))

	byBoth := receivable.AggregateOutstanding(list, "Bodega El Sol", entity.CurrencyUSD)
	require.Len(t, byBoth, 1)
	assert.Equal(t, "100.00", byBoth[entity.CurrencyUSD].StringFixed(2))
}
