package domain_test

import (
	"testing"

	"github.com/SscSPs/offering_tracker/internal/apperrors"
	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormulas_Validate(t *testing.T) {
	tests := []struct {
		name      string
		pct       string
		threshold string
		wantErr   bool
	}{
		{name: "defaults", pct: "10", threshold: "4500"},
		{name: "lower bounds", pct: "0", threshold: "0"},
		{name: "upper percentage", pct: "100", threshold: "0"},
		{name: "fractional percentage", pct: "12.5", threshold: "0.01"},
		{name: "percentage above 100", pct: "100.01", threshold: "0", wantErr: true},
		{name: "negative percentage", pct: "-1", threshold: "0", wantErr: true},
		{name: "negative threshold", pct: "10", threshold: "-0.01", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := domain.Formulas{
				DiezmoPercentage:   decimal.RequireFromString(tt.pct),
				RemanenteThreshold: decimal.RequireFromString(tt.threshold),
			}
			err := f.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReportForm(t *testing.T) {
	form := domain.NewReportForm()
	assert.Len(t, form, len(domain.ReportFields()))
	for _, f := range domain.DerivedReportFields {
		assert.True(t, domain.IsReportField(f), f)
	}
	assert.False(t, domain.IsReportField("unknown"))

	fields := domain.ReportFields()
	fields[0] = "unknown"
	assert.True(t, domain.IsReportField(domain.FieldChurchCode))
	assert.False(t, domain.IsReportField("unknown"))

	form["saldo-anterior"] = "5"
	clone := form.Clone()
	clone["saldo-anterior"] = "6"
	assert.Equal(t, "5", form["saldo-anterior"])

	assert.Equal(t, "report-2024-6", domain.MonthlyReportID(2024, 6))
	assert.Equal(t, "Junio", domain.MonthName(6))
	assert.Equal(t, "", domain.MonthName(13))
	assert.True(t, domain.SameName(" Ana ", "ana"))
}
