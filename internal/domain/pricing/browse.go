package pricing

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/precios-api/internal/domain/entity"
)

// GroupCatalog categorías de un grupo. Name vacío agrupa las categorías sin grupo.
type GroupCatalog struct {
	Name       string
	Categories []entity.Category
}

// TypeCatalog grupos de un tipo.
type TypeCatalog struct {
	Type   entity.CategoryType
	Groups []GroupCatalog
}

// GroupCategories arma la vista de navegación tipo → grupo → categorías.
// Grupos y categorías se ordenan con collation española ("Lácteos" junto a
// "Legumbres"); el grupo vacío va al final. Siempre devuelve los tres tipos.
func GroupCategories(categories []entity.Category) []TypeCatalog {
	col := collate.New(language.Spanish, collate.IgnoreCase)

	byType := make(map[entity.CategoryType]map[string][]entity.Category, len(entity.CategoryTypes))
	for _, c := range categories {
		t := c.ResolvedType()
		if byType[t] == nil {
			byType[t] = make(map[string][]entity.Category)
		}
		byType[t][c.Group] = append(byType[t][c.Group], c)
	}

	out := make([]TypeCatalog, 0, len(entity.CategoryTypes))
	for _, t := range entity.CategoryTypes {
		groups := byType[t]
		names := make([]string, 0, len(groups))
		for g := range groups {
			names = append(names, g)
		}
		sort.Slice(names, func(i, j int) bool {
			if names[i] == "" || names[j] == "" {
				return names[j] == "" && names[i] != ""
			}
			return col.CompareString(names[i], names[j]) < 0
		})

		tc := TypeCatalog{Type: t, Groups: make([]GroupCatalog, 0, len(names))}
		for _, g := range names {
			cats := groups[g]
			sort.SliceStable(cats, func(i, j int) bool {
				return col.CompareString(cats[i].Name, cats[j].Name) < 0
			})
			tc.Groups = append(tc.Groups, GroupCatalog{Name: g, Categories: cats})
		}
		out = append(out, tc)
	}
	return out
}
