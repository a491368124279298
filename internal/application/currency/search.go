package currency

import (
	"maps"
	"slices"
	"strings"

	domaincurrency "github.com/jhoicas/invoice-studio/internal/domain/currency"
	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

// Groups resultado de búsqueda agrupado como en el selector de monedas.
// Una personalizada que reemplaza un código común aparece en Common y en Custom.
type Groups struct {
	Common []entity.Currency
	Custom []entity.Currency
	Others []entity.Currency
}

// Search filtra la tabla combinada (personalizadas sobre incorporadas) por código,
// nombre o plural, sin distinguir mayúsculas. Query vacío devuelve todo.
func (r *Registry) Search(query string) Groups {
	q := strings.ToLower(strings.TrimSpace(query))

	r.mu.RLock()
	merged := maps.Clone(r.builtins)
	maps.Copy(merged, r.customs)
	r.mu.RUnlock()

	var g Groups
	for _, c := range merged {
		if !matches(c, q) {
			continue
		}
		common := domaincurrency.IsCommon(c.Code)
		if common {
			g.Common = append(g.Common, c)
		}
		if c.IsCustom {
			g.Custom = append(g.Custom, c)
		}
		if !common && !c.IsCustom {
			g.Others = append(g.Others, c)
		}
	}

	slices.SortFunc(g.Common, func(a, b entity.Currency) int {
		return slices.Index(domaincurrency.CommonCodes, a.Code) - slices.Index(domaincurrency.CommonCodes, b.Code)
	})
	sortByCode(g.Custom)
	sortByCode(g.Others)
	return g
}

func matches(c entity.Currency, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Code), q) ||
		strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.NamePlural), q)
}
