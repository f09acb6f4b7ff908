package firestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToUpdates_OrdenadoPorRuta(t *testing.T) {
	updates := toUpdates(map[string]any{"price": 10.5, "active": false, "name": "Leche"})

	paths := make([]string, 0, len(updates))
	for _, u := range updates {
		paths = append(paths, u.Path)
	}
	assert.Equal(t, []string{"active", "name", "price"}, paths)
	assert.Equal(t, false, updates[0].Value)
	assert.Equal(t, 10.5, updates[2].Value)
}

func TestToDocuments_Vacio(t *testing.T) {
	assert.Empty(t, toDocuments(nil))
}
