package accounting_test

import (
	"testing"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/SscSPs/offering_tracker/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeMonthlySummary_EmptyPeriod(t *testing.T) {
	summary, err := accounting.ComputeMonthlySummary(nil, 6, 2024, testCategories, accounting.Options{})
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, apperrors.ErrEmptyPeriod)

	other := []domain.WeeklyRecord{
		record("wr-1", 2, 5, 2024, formulas("10", "0"), donation("Ana", "Diezmo", "10")),
		record("wr-2", 2, 6, 2023, formulas("10", "0"), donation("Ana", "Diezmo", "10")),
	}
	summary, err = accounting.ComputeMonthlySummary(other, 6, 2024, testCategories, accounting.Options{})
	assert.Nil(t, summary)
	assert.ErrorIs(t, err, apperrors.ErrEmptyPeriod)
}

func TestComputeMonthlySummary_RoundNumbers(t *testing.T) {
	records := []domain.WeeklyRecord{
		record("wr-1", 2, 6, 2024, formulas("10", "0"), donation("Ana", "Diezmo", "100")),
		record("wr-2", 9, 6, 2024, formulas("10", "0"), donation("Ana", "Diezmo", "200")),
		record("wr-3", 16, 6, 2024, formulas("10", "0"), donation("Ana", "Diezmo", "300")),
	}

	summary, err := accounting.ComputeMonthlySummary(records, 6, 2024, testCategories, accounting.Options{})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.WeekCount)
	assertDecimal(t, "600", summary.DiezmoTotal)
	assertDecimal(t, "60", summary.DiezmoDeDiezmo)
	assertDecimal(t, "540", summary.GomerMinistro)
}

func TestComputeMonthlySummary_SumsPerWeekRoundedValues(t *testing.T) {
	records := []domain.WeeklyRecord{
		record("wr-1", 2, 6, 2024, formulas("10", "0"), donation("Ana", "Diezmo", "15")),
		record("wr-2", 9, 6, 2024, formulas("10", "0"), donation("Ana", "Diezmo", "15")),
		record("wr-3", 16, 6, 2024, formulas("10", "0"), donation("Ana", "Diezmo", "15")),
	}

	summary, err := accounting.ComputeMonthlySummary(records, 6, 2024, testCategories, accounting.Options{})
	require.NoError(t, err)

	// round(1.5) * 3 = 6, whereas round(45 * 10%) = round(4.5) = 5.
	assertDecimal(t, "6", summary.DiezmoDeDiezmo)
	assert.False(t, accounting.TitheOfTithe(summary.Total, dec("10")).Equal(summary.DiezmoDeDiezmo))
	// round(15 - 2) * 3
	assertDecimal(t, "39", summary.GomerMinistro)
}

func TestComputeMonthlySummary_HonorsEachWeekSnapshot(t *testing.T) {
	records := []domain.WeeklyRecord{
		record("wr-1", 2, 6, 2024, formulas("10", "100"), donation("Ana", "Diezmo", "1000")),
		record("wr-2", 9, 6, 2024, formulas("20", "500"), donation("Ana", "Ordinaria", "1000")),
	}

	summary, err := accounting.ComputeMonthlySummary(records, 6, 2024, testCategories, accounting.Options{})
	require.NoError(t, err)

	assertDecimal(t, "300", summary.DiezmoDeDiezmo)  // 100 + 200
	assertDecimal(t, "1700", summary.GomerMinistro)  // 900 + 800
	assertDecimal(t, "1400", summary.Remanente)      // 900 + 500
	assertDecimal(t, "1000", summary.DiezmoTotal)    // Diezmo only
	assertDecimal(t, "1000", summary.OrdinariaTotal) // Ordinaria only
	assertDecimal(t, "2000", summary.Total)
	require.Len(t, summary.Weeks, 2)
	assert.Equal(t, "wr-1", summary.Weeks[0].RecordID)
	assert.Equal(t, "wr-2", summary.Weeks[1].RecordID)
}

func TestComputeMonthlySummary_CategoryAndServiceTotals(t *testing.T) {
	records := []domain.WeeklyRecord{
		record("wr-1", 2, 6, 2024, formulas("10", "0"),
			donation("Ana", "Luz", "12.5"),
			donation("Ana", "Agua", "7.5"),
			donation("Ana", "Ofrenda Especial", "3"),
		),
		record("wr-2", 9, 6, 2024, formulas("10", "0"), donation("Luis", "Luz", "10")),
		record("wr-3", 9, 7, 2024, formulas("10", "0"), donation("Luis", "Luz", "99")),
	}

	summary, err := accounting.ComputeMonthlySummary(records, 6, 2024, testCategories, accounting.Options{})
	require.NoError(t, err)

	assert.Len(t, summary.CategoryTotals, len(testCategories))
	assertDecimal(t, "22.5", summary.CategoryTotals["Luz"])
	assertDecimal(t, "7.5", summary.CategoryTotals["Agua"])
	assertDecimal(t, "3", summary.CategoryTotals["Ofrenda Especial"])
	assertDecimal(t, "0", summary.CategoryTotals["Diezmo"])
	assertDecimal(t, "30", summary.PublicServicesTotal)
	assertDecimal(t, "0", summary.DiezmoDeDiezmo)

	custom, err := accounting.ComputeMonthlySummary(records, 6, 2024, testCategories, accounting.Options{PublicServiceCategories: []string{"Agua"}})
	require.NoError(t, err)
	assertDecimal(t, "7.5", custom.PublicServicesTotal)
}

func TestComputeMonthlySummary_Reproducible(t *testing.T) {
	records := []domain.WeeklyRecord{
		record("wr-1", 2, 6, 2024, formulas("12.5", "10"), donation("Ana", "Diezmo", "33.33"), donation("Eva", "Ordinaria", "0.67")),
		record("wr-2", 9, 6, 2024, formulas("10", "10"), donation("Luis", "Diezmo", "17.17")),
	}

	first, err := accounting.ComputeMonthlySummary(records, 6, 2024, testCategories, accounting.Options{})
	require.NoError(t, err)
	second, err := accounting.ComputeMonthlySummary(records, 6, 2024, testCategories, accounting.Options{})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, first.Total.String(), second.Total.String())
}

func TestComputeMonthlySummary_MinisterFromFirstRecord(t *testing.T) {
	a := record("wr-1", 2, 6, 2024, formulas("10", "0"))
	a.Minister = "Ministro A"
	b := record("wr-2", 9, 6, 2024, formulas("10", "0"))
	b.Minister = "Ministro B"

	summary, err := accounting.ComputeMonthlySummary([]domain.WeeklyRecord{a, b}, 6, 2024, testCategories, accounting.Options{})
	require.NoError(t, err)
	assert.Equal(t, "Ministro A", summary.Minister)
	assertDecimal(t, "0", summary.Total)
}
