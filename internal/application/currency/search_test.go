package currency_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoice-studio/internal/domain/entity"
)

func codes(list []entity.Currency) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.Code)
	}
	return out
}

func TestSearch_SinFiltroAgrupa(t *testing.T) {
	reg := newRegistry(t, newStore(t))
	_, err := reg.Add(context.Background(), "XTS", "X$", "X$", "TestCoin")
	require.NoError(t, err)

	g := reg.Search("")

	assert.Equal(t, []string{"USD", "EUR", "GBP", "JPY", "CNY", "NGN", "ZAR", "GHS", "EGP", "XOF"}, codes(g.Common))
	assert.Equal(t, []string{"XTS"}, codes(g.Custom))
	assert.Equal(t, []string{"AUD", "CAD", "CHF", "DZD", "HKD", "KES", "MAD", "SGD", "TND", "XAF"}, codes(g.Others))
}

func TestSearch_PorNombreYPlural(t *testing.T) {
	reg := newRegistry(t, newStore(t))

	assert.Equal(t, []string{"XOF"}, codes(reg.Search("west african").Common))
	assert.Equal(t, []string{"XAF"}, codes(reg.Search("central").Others))

	g := reg.Search("DINAR")
	assert.Empty(t, g.Common)
	assert.Equal(t, []string{"DZD", "TND"}, codes(g.Others))
}

func TestSearch_PersonalizadaComunApareceEnAmbosGrupos(t *testing.T) {
	reg := newRegistry(t, newStore(t))
	_, err := reg.Add(context.Background(), "EUR", "E", "E", "Local Euro")
	require.NoError(t, err)

	g := reg.Search("eur")

	assert.Equal(t, []string{"EUR"}, codes(g.Common))
	assert.Equal(t, []string{"EUR"}, codes(g.Custom))
	assert.Equal(t, "Local Euro", g.Common[0].Name)
}
