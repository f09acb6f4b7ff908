package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
)

// MonthlyPrice precio representativo de un mes calendario.
type MonthlyPrice struct {
	Year  int
	Month time.Month
	Label string
	Price decimal.Decimal
	Date  time.Time // fecha de la entrada representativa
}

// MonthlyHistory serie cronológica de precios mensuales más las entradas omitidas.
type MonthlyHistory struct {
	Points  []MonthlyPrice
	Skipped []*domain.DataFormatError
}

type monthKey struct {
	year  int
	month time.Month
}

func (k monthKey) before(o monthKey) bool {
	if k.year != o.year {
		return k.year < o.year
	}
	return k.month < o.month
}

// AggregateMonthly reduce el historial a un precio por mes: gana la entrada con
// la fecha más reciente del mes (empate → la última en orden de inserción).
// El resultado se ordena por (año, mes) ascendente.
//
// Las entradas que no se pueden interpretar se omiten y se reportan en Skipped;
// el resto se sigue agregando. Un historial vacío devuelve domain.ErrEmptyHistory.
func AggregateMonthly(log entity.PriceLog, label MonthLabeler) (MonthlyHistory, error) {
	if log.IsEmpty() {
		return MonthlyHistory{}, domain.ErrEmptyHistory
	}
	if label == nil {
		label = SpanishMonths
	}

	var out MonthlyHistory
	best := make(map[monthKey]entity.PriceLogEntry)
	for i := 0; i < log.Len(); i++ {
		e := log.At(i)
		if ferr := checkEntry(i, e); ferr != nil {
			out.Skipped = append(out.Skipped, ferr)
			continue
		}
		k := monthKey{year: e.Date.Year(), month: e.Date.Month()}
		cur, ok := best[k]
		if !ok || !e.Date.Before(cur.Date) {
			best[k] = e
		}
	}

	keys := make([]monthKey, 0, len(best))
	for k := range best {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].before(keys[j]) })

	out.Points = make([]MonthlyPrice, 0, len(keys))
	for _, k := range keys {
		e := best[k]
		out.Points = append(out.Points, MonthlyPrice{
			Year:  k.year,
			Month: k.month,
			Label: label(k.year, k.month),
			Price: e.Price,
			Date:  e.Date,
		})
	}
	return out, nil
}

func checkEntry(i int, e entity.PriceLogEntry) *domain.DataFormatError {
	switch {
	case e.Problem != nil:
		return &domain.DataFormatError{Index: i, Field: e.Problem.Field, Reason: e.Problem.Reason}
	case e.Date.IsZero():
		return &domain.DataFormatError{Index: i, Field: "date", Reason: "fecha vacía"}
	case e.Price.IsNegative():
		return &domain.DataFormatError{Index: i, Field: "price", Reason: "precio negativo"}
	}
	return nil
}
