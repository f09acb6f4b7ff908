package docstore

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/precios-api/internal/domain"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/domain/repository"
)

// Campos de los documentos (mismos nombres que la colección original de Firestore).
const (
	fieldName         = "name"
	fieldBrand        = "brand"
	fieldUnit         = "unit"
	fieldStore        = "store"
	fieldCategory     = "category"
	fieldPrice        = "price"
	fieldActive       = "active"
	fieldPriceHistory = "priceHistory"
	fieldCreated      = "created"
	fieldLastUpdated  = "lastUpdated"

	fieldDate          = "date"
	fieldPreviousPrice = "previousPrice"
	fieldIsInitial     = "isInitial"
	fieldTimestamp     = "timestamp"

	fieldType      = "type"
	fieldGroup     = "group"
	fieldIcon      = "icon"
	fieldCreatedAt = "createdAt"
)

func productFields(p *entity.Product) map[string]any {
	return map[string]any{
		fieldName:         p.Name,
		fieldBrand:        p.Brand,
		fieldUnit:         p.Unit,
		fieldStore:        p.Store,
		fieldCategory:     p.Category,
		fieldPrice:        p.Price.InexactFloat64(),
		fieldActive:       p.Active,
		fieldPriceHistory: historyFields(p.PriceHistory),
		fieldCreated:      p.CreatedAt,
		fieldLastUpdated:  p.UpdatedAt,
	}
}

// editableFields campos que reescribe una edición (created y active no se tocan).
func editableFields(p *entity.Product) map[string]any {
	f := productFields(p)
	delete(f, fieldCreated)
	delete(f, fieldActive)
	return f
}

func historyFields(log entity.PriceLog) []any {
	out := make([]any, 0, log.Len())
	for _, e := range log.Entries() {
		if e.Problem != nil {
			out = append(out, e.Raw)
			continue
		}
		m := map[string]any{
			fieldDate:      e.Date,
			fieldPrice:     e.Price.InexactFloat64(),
			fieldTimestamp: e.Date.UnixMilli(),
		}
		if e.IsInitial {
			m[fieldIsInitial] = true
		}
		if e.PreviousPrice != nil {
			m[fieldPreviousPrice] = e.PreviousPrice.InexactFloat64()
		}
		out = append(out, m)
	}
	return out
}

// decodeProduct reconstruye un Product. Solo falla si el precio actual no es
// interpretable; las entradas del historial con problemas se marcan con
// Problem y se conservan en su posición.
func decodeProduct(doc repository.Document) (*entity.Product, error) {
	f := doc.Fields
	price, err := decodeDecimal(f[fieldPrice])
	if err != nil {
		return nil, &domain.DocumentError{ID: doc.ID, Field: fieldPrice, Reason: err.Error()}
	}
	p := &entity.Product{
		ID:       doc.ID,
		Name:     asString(f[fieldName]),
		Brand:    asString(f[fieldBrand]),
		Unit:     asString(f[fieldUnit]),
		Store:    asString(f[fieldStore]),
		Category: asString(f[fieldCategory]),
		Price:    price,
		Active:   asBool(f[fieldActive], true),
	}
	p.CreatedAt, _ = decodeTime(f[fieldCreated])
	p.UpdatedAt, _ = decodeTime(f[fieldLastUpdated])
	p.PriceHistory = decodeHistory(f[fieldPriceHistory])
	return p, nil
}

func decodeHistory(v any) entity.PriceLog {
	raw, ok := v.([]any)
	if !ok {
		if maps, ok := v.([]map[string]any); ok {
			raw = make([]any, len(maps))
			for i := range maps {
				raw[i] = maps[i]
			}
		}
	}
	entries := make([]entity.PriceLogEntry, 0, len(raw))
	for _, item := range raw {
		entries = append(entries, decodeEntry(item))
	}
	return entity.NewPriceLog(entries...)
}

func decodeEntry(v any) entity.PriceLogEntry {
	m, ok := v.(map[string]any)
	if !ok {
		return malformedEntry(v, "entry", fmt.Sprintf("tipo %T", v))
	}

	date, err := decodeTime(m[fieldDate])
	if err != nil {
		if ts, tsErr := decodeTime(m[fieldTimestamp]); tsErr == nil {
			date, err = ts, nil
		}
	}
	if err != nil {
		return malformedEntry(v, "date", err.Error())
	}
	price, err := decodeDecimal(m[fieldPrice])
	if err != nil {
		return malformedEntry(v, "price", err.Error())
	}

	e := entity.PriceLogEntry{
		Date:      date,
		Price:     price,
		IsInitial: asBool(m[fieldIsInitial], false),
	}
	if prev, ok := m[fieldPreviousPrice]; ok && prev != nil {
		if d, err := decodeDecimal(prev); err == nil {
			e.PreviousPrice = &d
		}
	}
	return e
}

// malformedEntry conserva el valor almacenado para que historyFields lo
// reescriba tal cual.
func malformedEntry(raw any, field, reason string) entity.PriceLogEntry {
	return entity.PriceLogEntry{
		Problem: &entity.EntryProblem{Field: field, Reason: reason},
		Raw:     raw,
	}
}

func categoryFields(c *entity.Category) map[string]any {
	f := map[string]any{
		fieldName:      c.Name,
		fieldType:      c.Type,
		fieldCreatedAt: c.CreatedAt,
	}
	if c.Group != "" {
		f[fieldGroup] = c.Group
	}
	if c.Icon != "" {
		f[fieldIcon] = c.Icon
	}
	return f
}

func decodeCategory(doc repository.Document) entity.Category {
	f := doc.Fields
	c := entity.Category{
		ID:    doc.ID,
		Name:  asString(f[fieldName]),
		Type:  asString(f[fieldType]),
		Group: asString(f[fieldGroup]),
		Icon:  asString(f[fieldIcon]),
	}
	c.CreatedAt, _ = decodeTime(f[fieldCreatedAt])
	return c
}

// decodeDecimal acepta los tipos numéricos que devuelven Firestore (int64,
// float64), JSONB (float64, json.Number) y cadenas ("3200.50").
func decodeDecimal(v any) (decimal.Decimal, error) {
	switch x := v.(type) {
	case nil:
		return decimal.Zero, fmt.Errorf("vacío")
	case decimal.Decimal:
		return x, nil
	case float64:
		return decimal.NewFromFloat(x), nil
	case float32:
		return decimal.NewFromFloat32(x), nil
	case int:
		return decimal.NewFromInt(int64(x)), nil
	case int64:
		return decimal.NewFromInt(x), nil
	case int32:
		return decimal.NewFromInt32(x), nil
	case json.Number:
		return decimal.NewFromString(x.String())
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(x))
		if err != nil {
			return decimal.Zero, fmt.Errorf("no numérico: %q", x)
		}
		return d, nil
	default:
		return decimal.Zero, fmt.Errorf("tipo %T", v)
	}
}

// decodeTime acepta time.Time (Firestore, memoria), RFC3339 (JSONB), epoch en
// milisegundos y timestamps serializados {seconds|_seconds, nanoseconds}.
func decodeTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, fmt.Errorf("vacío")
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, fmt.Errorf("vacío")
		}
		return *x, nil
	case string:
		t, err := time.Parse(time.RFC3339Nano, x)
		if err != nil {
			return time.Time{}, fmt.Errorf("fecha inválida: %q", x)
		}
		return t, nil
	case float64:
		return time.UnixMilli(int64(x)).UTC(), nil
	case int64:
		return time.UnixMilli(x).UTC(), nil
	case int:
		return time.UnixMilli(int64(x)).UTC(), nil
	case json.Number:
		n, err := x.Int64()
		if err != nil {
			return time.Time{}, fmt.Errorf("fecha inválida: %q", x.String())
		}
		return time.UnixMilli(n).UTC(), nil
	case map[string]any:
		secs, ok := x["seconds"]
		if !ok {
			secs, ok = x["_seconds"]
		}
		if !ok {
			return time.Time{}, fmt.Errorf("fecha inválida: %v", x)
		}
		s, err := decodeDecimal(secs)
		if err != nil {
			return time.Time{}, fmt.Errorf("fecha inválida: %w", err)
		}
		nanos := x["nanoseconds"]
		if nanos == nil {
			nanos = x["_nanoseconds"]
		}
		n, _ := decodeDecimal(nanos)
		return time.Unix(s.IntPart(), n.IntPart()).UTC(), nil
	default:
		return time.Time{}, fmt.Errorf("tipo %T", v)
	}
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any, def bool) bool {
	b, ok := v.(bool)
	if !ok {
		return def
	}
	return b
}
