package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceLogEntry registra una observación de precio de un producto.
// Las entradas son inmutables una vez agregadas al historial.
type PriceLogEntry struct {
	Price         decimal.Decimal
	Date          time.Time
	PreviousPrice *decimal.Decimal // nil en la entrada inicial
	IsInitial     bool

	// Problem no es nil cuando la entrada almacenada no se pudo interpretar
	// (fecha o precio no convertibles). Lo asigna el adaptador de persistencia.
	Problem *EntryProblem
	// Raw conserva el valor almacenado de una entrada con Problem para
	// reescribirlo sin cambios al persistir el historial.
	Raw any
}

// EntryProblem describe el campo de una entrada almacenada que no se pudo interpretar.
type EntryProblem struct {
	Field  string // "date" | "price"
	Reason string
}

// InitialEntry construye la primera entrada del historial de un producto.
func InitialEntry(price decimal.Decimal, at time.Time) PriceLogEntry {
	return PriceLogEntry{Price: price, Date: at, IsInitial: true}
}

// ChangeEntry construye la entrada de un cambio de precio.
func ChangeEntry(previous, price decimal.Decimal, at time.Time) PriceLogEntry {
	prev := previous
	return PriceLogEntry{Price: price, Date: at, PreviousPrice: &prev}
}

// PriceLog secuencia ordenada por inserción de PriceLogEntry. Es un valor
// inmutable: Append devuelve un historial nuevo y nunca modifica el receptor.
type PriceLog struct {
	entries []PriceLogEntry
}

// NewPriceLog construye un historial copiando las entradas dadas.
func NewPriceLog(entries ...PriceLogEntry) PriceLog {
	if len(entries) == 0 {
		return PriceLog{}
	}
	cp := make([]PriceLogEntry, len(entries))
	copy(cp, entries)
	return PriceLog{entries: cp}
}

// Len número de entradas.
func (l PriceLog) Len() int { return len(l.entries) }

// IsEmpty true si el historial no tiene entradas.
func (l PriceLog) IsEmpty() bool { return len(l.entries) == 0 }

// At devuelve la entrada i (orden de inserción).
func (l PriceLog) At(i int) PriceLogEntry { return l.entries[i] }

// Entries devuelve una copia de las entradas.
func (l PriceLog) Entries() []PriceLogEntry {
	cp := make([]PriceLogEntry, len(l.entries))
	copy(cp, l.entries)
	return cp
}

// Last devuelve la última entrada agregada.
func (l PriceLog) Last() (PriceLogEntry, bool) {
	if len(l.entries) == 0 {
		return PriceLogEntry{}, false
	}
	return l.entries[len(l.entries)-1], true
}

// Append devuelve un historial nuevo con e al final.
func (l PriceLog) Append(e PriceLogEntry) PriceLog {
	next := make([]PriceLogEntry, len(l.entries), len(l.entries)+1)
	copy(next, l.entries)
	return PriceLog{entries: append(next, e)}
}
