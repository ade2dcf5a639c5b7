package finder

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PriceTracker/internal/calculator"
	"PriceTracker/internal/model"
)

func writeCSV(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func clock(year int, month time.Month) Option {
	return WithClock(func() time.Time { return time.Date(year, month, 15, 12, 0, 0, 0, time.UTC) })
}

func magnitude() calculator.Denomination {
	return calculator.NewMagnitudeHeuristicDenomination(calculator.DefaultDenominationThreshold, calculator.DefaultDenominationRate)
}

func twoMonthFolder(t *testing.T) string {
	dir := t.TempDir()
	writeCSV(t, dir, "1.2023.csv", "Товар,Минск,Гродно\nМолоко 1 л,12.0,11.5\nХлеб,2.0,1.9\n")
	writeCSV(t, dir, "2.2023.csv", "Товар,Минск,Гродно\nХлеб,2.1,2.0\nмолоко 1 л,15.0,14.0\nКефир,14.9,14.0\nСыр,,20.0\n")
	return dir
}

func TestFindStat_Scenario(t *testing.T) {
	f, err := NewFinder(twoMonthFolder(t), "Минск", magnitude(), clock(2023, time.February))
	require.NoError(t, err)

	stat, err := f.FindStat("молоко")
	require.NoError(t, err)
	require.NotNil(t, stat)

	assert.True(t, stat.Min.Equal(decimal.NewFromInt(12)))
	assert.True(t, stat.Max.Equal(decimal.NewFromInt(15)))
	require.NotNil(t, stat.Curr)
	assert.True(t, stat.Curr.Equal(decimal.NewFromInt(15)))
	assert.Equal(t, "1.2023", stat.MinDate)
	assert.Equal(t, "2.2023", stat.MaxDate)
}

func TestFindStat_NoMatch(t *testing.T) {
	f, err := NewFinder(twoMonthFolder(t), "Минск", magnitude(), clock(2023, time.February))
	require.NoError(t, err)

	stat, err := f.FindStat("икра")
	require.NoError(t, err)
	assert.Nil(t, stat)
}

func TestFindStat_ZeroPriceAndRedenomination(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "12.2016.csv", "Товар,Минск\nСыр,98000\n")
	writeCSV(t, dir, "1.2017.csv", "Товар,Минск\nСыр,0\n")
	writeCSV(t, dir, "2.2017.csv", "Товар,Минск\nСыр,10.5\n")
	f, err := NewFinder(dir, "Минск", magnitude(), clock(2017, time.March))
	require.NoError(t, err)

	stat, err := f.FindStat("сыр")
	require.NoError(t, err)
	require.NotNil(t, stat)
	assert.True(t, stat.Min.Equal(decimal.RequireFromString("9.8")), "got %s", stat.Min)
	assert.Equal(t, "12.2016", stat.MinDate)
	assert.True(t, stat.Max.Equal(decimal.RequireFromString("10.5")))
	assert.Equal(t, "2.2017", stat.MaxDate)
	require.NotNil(t, stat.Curr)
}

func TestFindStat_CurrentFileWithoutPrice(t *testing.T) {
	f, err := NewFinder(twoMonthFolder(t), "Минск", magnitude(), clock(2023, time.February))
	require.NoError(t, err)

	stat, err := f.FindStat("хлеб")
	require.NoError(t, err)
	require.NotNil(t, stat)
	require.NotNil(t, stat.Curr)

	stat, err = f.FindStat("сыр")
	require.NoError(t, err)
	assert.Nil(t, stat, "blank price in the only matching file")
}

func TestFindStat_EqualPricesKeepFirstDate(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "3.2023.csv", "Товар,Минск\nЧай,4.0\n")
	writeCSV(t, dir, "4.2023.csv", "Товар,Минск\nЧай,4.0\n")
	f, err := NewFinder(dir, "Минск", magnitude(), clock(2023, time.April))
	require.NoError(t, err)

	stat, err := f.FindStat("чай")
	require.NoError(t, err)
	assert.Equal(t, "3.2023", stat.MinDate)
	assert.Equal(t, "3.2023", stat.MaxDate)
}

func TestFindPrice(t *testing.T) {
	dir := twoMonthFolder(t)
	f, err := NewFinder(dir, "Гродно", magnitude(), clock(2023, time.February))
	require.NoError(t, err)

	price, ok, err := f.FindPrice(filepath.Join(dir, "1.2023.csv"), "МОЛОКО")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("11.5")))

	_, ok, err = f.FindPrice(filepath.Join(dir, "1.2023.csv"), "молок")
	require.NoError(t, err)
	assert.False(t, ok, "query must end on a word boundary")

	_, ok, err = f.FindPrice(filepath.Join(dir, "1.2023.csv"), "кефир")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindStat_BlankQuery(t *testing.T) {
	f, err := NewFinder(twoMonthFolder(t), "Минск", magnitude(), clock(2023, time.February))
	require.NoError(t, err)

	for _, q := range []string{"", "   "} {
		stat, err := f.FindStat(q)
		require.NoError(t, err)
		assert.Nil(t, stat, "%q", q)
	}
}

func TestFindPrice_MatchesWordEnding(t *testing.T) {
	dir := t.TempDir()
	path := writeCSV(t, dir, "1.2023.csv", "Товар,Минск\nПахта-молоко,3.1\nМолоко,2.0\n")
	f, err := NewFinder(dir, "Минск", magnitude(), clock(2023, time.January))
	require.NoError(t, err)

	price, ok, err := f.FindPrice(path, "молоко")
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, price.Equal(decimal.RequireFromString("3.1")), "first row whose name ends a word with the query")
}

func TestFindPrice_MissingRegion(t *testing.T) {
	dir := twoMonthFolder(t)
	f, err := NewFinder(dir, "Брест", magnitude(), clock(2023, time.February))
	require.NoError(t, err)

	_, _, err = f.FindPrice(filepath.Join(dir, "1.2023.csv"), "хлеб")
	assert.Error(t, err)
}

func TestFindSimilar(t *testing.T) {
	f, err := NewFinder(twoMonthFolder(t), "Минск", magnitude(), clock(2023, time.February))
	require.NoError(t, err)

	got, err := f.FindSimilar(decimal.RequireFromString("14.8"), decimal.RequireFromString("15.2"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"молоко 1 л", "Кефир"}, got)

	got, err = f.FindSimilar(decimal.RequireFromString("1.0"), decimal.RequireFromString("2.0"), filepath.Join(f.Dir, "1.2023.csv"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Хлеб"}, got)
}

func TestLocate_WalksBackAcrossYear(t *testing.T) {
	dir := t.TempDir()
	writeCSV(t, dir, "11.2022.csv", "Товар,Минск\n")
	writeCSV(t, dir, "12.2022.csv", "Товар,Минск\n")
	writeCSV(t, dir, "notes.txt", "")

	f, err := NewFinder(dir, "Минск", magnitude(), clock(2023, time.February))
	require.NoError(t, err)

	p, path := f.Current()
	assert.Equal(t, model.Period{Year: 2022, Month: time.December}, p)
	assert.Equal(t, "12.2022.csv", filepath.Base(path))
}

func TestLocate_NoCurrentFile(t *testing.T) {
	_, err := NewFinder(twoMonthFolder(t), "Минск", magnitude(), clock(2026, time.October))
	assert.ErrorIs(t, err, model.ErrNoCurrentFile)

	_, err = NewFinder(t.TempDir(), "Минск", magnitude(), clock(2023, time.February))
	assert.ErrorIs(t, err, model.ErrNoCurrentFile)
}

func TestLocate_ProbeBudget(t *testing.T) {
	dir := twoMonthFolder(t)

	_, err := NewFinder(dir, "Минск", magnitude(), clock(2023, time.April))
	assert.NoError(t, err, "three probes reach 2.2023 from April")

	_, err = NewFinder(dir, "Минск", magnitude(), clock(2023, time.May))
	assert.ErrorIs(t, err, model.ErrNoCurrentFile)
}
