package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/precios-api/internal/domain"
)

func TestUnavailable(t *testing.T) {
	io := errors.New("connection reset")

	err := domain.Unavailable("productos", io)
	assert.ErrorIs(t, err, domain.ErrDataUnavailable)
	assert.ErrorIs(t, err, io)
	assert.Contains(t, err.Error(), "productos")

	nf := fmt.Errorf("update product: %w", domain.ErrNotFound)
	assert.Same(t, nf, domain.Unavailable("productos", nf))
	assert.NoError(t, domain.Unavailable("productos", nil))
}

func TestDataFormatError(t *testing.T) {
	err := &domain.DataFormatError{Index: 3, Field: "date", Reason: "fecha vacía"}
	assert.ErrorIs(t, err, domain.ErrDataFormat)
	assert.Equal(t, "entrada 3: campo date: fecha vacía", err.Error())
}

func TestDocumentError(t *testing.T) {
	err := &domain.DocumentError{ID: "p1", Field: "price", Reason: "vacío"}
	assert.ErrorIs(t, err, domain.ErrDataFormat)
	assert.Equal(t, "documento p1: campo price: vacío", err.Error())
}
