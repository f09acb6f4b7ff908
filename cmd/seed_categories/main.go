// seed_categories carga el catálogo de categorías en el almacén configurado
// (STORE_BACKEND). Las categorías que ya existen por nombre se omiten.
//
// Uso: go run ./cmd/seed_categories [ruta/categorias.csv]
// Sin argumentos carga el catálogo predefinido. El CSV usa ";" como separador
// con columnas nombre;tipo;grupo[;icono] y puede venir en UTF-8 o ISO-8859-1.
package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/precios-api/internal/application/usecase"
	"github.com/jhoicas/precios-api/internal/domain/entity"
	"github.com/jhoicas/precios-api/internal/infrastructure/backend"
	"github.com/jhoicas/precios-api/internal/infrastructure/docstore"
	"github.com/jhoicas/precios-api/pkg/config"
	"github.com/jhoicas/precios-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Configuración inválida: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	defs := entity.PredefinedCategories()
	if len(os.Args) > 1 {
		f, err := os.Open(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Abrir CSV: %v\n", err)
			os.Exit(1)
		}
		defs, err = parseCategories(f)
		f.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Leer CSV: %v\n", err)
			os.Exit(1)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	store, closeStore, err := backend.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar almacén: %v\n", err)
		os.Exit(1)
	}
	defer closeStore()

	uc := usecase.NewCategoryUseCase(docstore.NewCategoryRepository(store))
	res, err := uc.Seed(ctx, defs)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar categorías: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Categorías: %d creadas, %d ya existían (%s)\n", res.Created, res.Skipped, cfg.Store.Backend)
}

// parseCategories lee filas nombre;tipo;grupo[;icono]. Una primera fila con
// "nombre" en la primera columna se toma como cabecera. Si el contenido no es
// UTF-8 válido se decodifica como ISO-8859-1.
func parseCategories(r io.Reader) ([]entity.Category, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var src io.Reader = bytes.NewReader(raw)
	if !utf8.Valid(raw) {
		src = transform.NewReader(src, charmap.ISO8859_1.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = ';'
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var out []entity.Category
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("línea %d: %w", line, err)
		}
		if line == 1 && strings.EqualFold(strings.TrimSpace(rec[0]), "nombre") {
			continue
		}
		name := strings.TrimSpace(rec[0])
		if name == "" {
			continue
		}
		c := entity.Category{Name: name}
		if len(rec) > 1 {
			c.Type = strings.TrimSpace(rec[1])
		}
		if len(rec) > 2 {
			c.Group = strings.TrimSpace(rec[2])
		}
		if len(rec) > 3 {
			c.Icon = strings.TrimSpace(rec[3])
		}
		out = append(out, c)
	}
	return out, nil
}
