package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceTracker/internal/calculator"
	"PriceTracker/internal/history"
	"PriceTracker/internal/model"
)

var (
	may2020  = model.Period{Year: 2020, Month: time.May}
	june2020 = model.Period{Year: 2020, Month: time.June}
)

func record(s *history.Store, name string, p model.Period, price string, latest bool) {
	d := decimal.RequireFromString(price)
	s.Record(name, p, &d, latest)
}

func newStore() *history.Store {
	return history.NewStore(calculator.NewDateCutoffDenomination(calculator.DefaultDenominationYear, calculator.DefaultDenominationRate))
}

func names(sp []model.SimilarProduct) []string {
	out := make([]string, 0, len(sp))
	for _, p := range sp {
		out = append(out, p.Name)
	}
	return out
}

func TestSimilar_ToleranceBand(t *testing.T) {
	s := newStore()
	record(s, "A", june2020, "10.0", true)
	record(s, "B", june2020, "10.15", true)
	record(s, "C", june2020, "10.3", true)
	record(s, "D", june2020, "9.7", true)
	e := NewEngine(s, decimal.Zero)

	got := e.Similar("A", decimal.RequireFromString("10.0"))
	assert.ElementsMatch(t, []string{"B"}, names(got))
}

func TestSimilar_BandEdgesAreInclusive(t *testing.T) {
	s := newStore()
	record(s, "A", june2020, "10.0", true)
	record(s, "B", june2020, "10.2", true)
	record(s, "C", june2020, "9.8", true)
	record(s, "D", june2020, "10.21", true)
	e := NewEngine(s, DefaultDelta)

	got := e.Similar("A", decimal.RequireFromString("10.0"))
	assert.Equal(t, []string{"B", "C"}, names(got))
}

func TestQuery_BuildsBlock(t *testing.T) {
	s := newStore()
	record(s, "Молоко пастеризованное, 1 л", model.Period{Year: 2016, Month: time.March}, "15000", false)
	record(s, "Молоко пастеризованное, 1 л", may2020, "1.45", false)
	s.ResetLatest()
	record(s, "Молоко пастеризованное, 1 л", june2020, "1.52", true)
	record(s, "Кефир, 1 л", june2020, "1.60", true)
	record(s, "Хлеб", june2020, "2.10", true)

	blocks, err := NewEngine(s, DefaultDelta).Query("МОЛОКО")
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.Equal(t, "Молоко пастеризованное, л", b.Name)
	assert.True(t, b.Latest.Price.Equal(decimal.RequireFromString("1.52")))
	assert.True(t, b.Min.Price.Equal(decimal.RequireFromString("1.45")))
	assert.Equal(t, may2020, b.Min.Period)
	assert.True(t, b.Max.Price.Equal(decimal.RequireFromString("1.52")))
	assert.Equal(t, june2020, b.Max.Period)
	assert.Equal(t, []string{"Кефир, л"}, names(b.Similar))
}

func TestQuery_WholeTokenOnly(t *testing.T) {
	s := newStore()
	record(s, "Молоко сгущенное", june2020, "2.00", true)

	blocks, err := NewEngine(s, DefaultDelta).Query("молок")
	require.NoError(t, err)
	assert.Nil(t, blocks)
}

func TestQuery_MultipleMatchesInLatestOrder(t *testing.T) {
	s := newStore()
	record(s, "Сыр твердый", june2020, "12.00", true)
	record(s, "Масло", june2020, "3.00", true)
	record(s, "Сыр плавленый", june2020, "1.80", true)

	blocks, err := NewEngine(s, DefaultDelta).Query("сыр")
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Сыр твердый", blocks[0].Name)
	assert.Equal(t, "Сыр плавленый", blocks[1].Name)
	assert.NotNil(t, blocks[0].Similar)
	assert.Empty(t, blocks[0].Similar)
}

func TestQuery_NothingFound(t *testing.T) {
	s := newStore()
	record(s, "Хлеб", june2020, "2.10", true)
	e := NewEngine(s, DefaultDelta)

	for _, term := range []string{"икра", "", "   "} {
		blocks, err := e.Query(term)
		require.NoError(t, err)
		assert.Nil(t, blocks, term)
	}
}

func TestQuery_IgnoresProductsOutsideLatestSet(t *testing.T) {
	s := newStore()
	record(s, "Хлеб", may2020, "2.00", true)
	s.ResetLatest()
	record(s, "Батон", june2020, "1.00", true)

	blocks, err := NewEngine(s, DefaultDelta).Query("хлеб")
	require.NoError(t, err)
	assert.Nil(t, blocks)
}
