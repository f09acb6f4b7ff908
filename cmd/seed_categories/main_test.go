package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
)

func TestParseCategories_UTF8(t *testing.T) {
	in := "nombre;tipo;grupo\nLácteos;alimento;Frescos y Perecederos\nJabones;limpieza;Cuidado Personal;fa-soap\n;alimento;\nMascotas\n"
	got, err := parseCategories(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Lácteos", got[0].Name)
	assert.Equal(t, "alimento", got[0].Type)
	assert.Equal(t, "Frescos y Perecederos", got[0].Group)
	assert.Equal(t, "fa-soap", got[1].Icon)
	assert.Equal(t, "Mascotas", got[2].Name)
	assert.Empty(t, got[2].Type)
}

func TestParseCategories_Latin1(t *testing.T) {
	enc, err := charmap.ISO8859_1.NewEncoder().Bytes([]byte("Panadería;alimento;Panadería y Repostería\n"))
	require.NoError(t, err)

	got, err := parseCategories(bytes.NewReader(enc))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Panadería", got[0].Name)
	assert.Equal(t, "Panadería y Repostería", got[0].Group)
}
