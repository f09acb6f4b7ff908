package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrDuplicate       = errors.New("recurso duplicado")
	ErrUnauthorized    = errors.New("no autorizado")
	ErrDataUnavailable = errors.New("datos no disponibles")
	ErrEmptyHistory    = errors.New("el producto no tiene historial de precios")
	ErrDataFormat      = errors.New("formato de datos inválido")
	ErrSuperseded      = errors.New("consulta reemplazada por una más reciente")
)

// DataFormatError identifica una entrada del historial que no se pudo interpretar.
// Index es la posición de la entrada en el historial original.
type DataFormatError struct {
	Index  int
	Field  string // "date" | "price"
	Reason string
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("entrada %d: campo %s: %s", e.Index, e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, ErrDataFormat).
func (e *DataFormatError) Unwrap() error { return ErrDataFormat }

// Unavailable envuelve un error de lectura/escritura del almacén como
// ErrDataUnavailable. ErrNotFound y ErrDuplicate se devuelven tal cual.
func Unavailable(scope string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrDuplicate) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", scope, ErrDataUnavailable, err)
}

// DocumentError identifica un documento almacenado que no se pudo interpretar
// y quedó fuera de un listado (y de los totales que se calculan con él).
type DocumentError struct {
	ID     string
	Field  string
	Reason string
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("documento %s: campo %s: %s", e.ID, e.Field, e.Reason)
}

// Unwrap permite errors.Is(err, ErrDataFormat).
func (e *DocumentError) Unwrap() error { return ErrDataFormat }
