package accounting

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/SscSPs/offering_tracker/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PrefillReportForm merges the derived monthly figures into a copy of form.
// Only domain.DerivedReportFields are written; manual entries are left as they are.
// The allowance line takes the threshold of the formulas currently in effect.
func PrefillReportForm(form domain.ReportForm, summary *domain.MonthlySummary, current domain.Formulas, org domain.OrgInfo) domain.ReportForm {
	out := form.Clone()
	if summary == nil {
		return out
	}
	out[domain.FieldChurchCode] = org.ChurchCode
	out[domain.FieldChurchName] = org.ChurchName
	out[domain.FieldMinisterName] = summary.Minister
	out[domain.FieldReportMonth] = domain.MonthName(summary.Month)
	out[domain.FieldReportYear] = strconv.Itoa(summary.Year)
	out[domain.FieldIncomeDiezmos] = formatAmount(summary.DiezmoTotal)
	out[domain.FieldIncomeOrdinary] = formatAmount(summary.OrdinariaTotal)
	out[domain.FieldIncomeServices] = formatAmount(summary.PublicServicesTotal)
	out[domain.FieldExpenseService] = formatAmount(summary.PublicServicesTotal)
	out[domain.FieldGomer] = formatAmount(summary.GomerMinistro)
	out[domain.FieldDistDireccion] = formatAmount(summary.DiezmoDeDiezmo)
	out[domain.FieldAllowance] = current.RemanenteThreshold.String()
	return out
}

// formatAmount renders a positive amount with two decimals; zero renders blank.
func formatAmount(d decimal.Decimal) string {
	if !d.IsPositive() {
		return ""
	}
	return d.StringFixed(2)
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// FormValue reads a numeric field of the form from its leading number, so "12abc" is 12
// and "1,200" is 1. Blank values and values with no leading number count as zero.
func FormValue(form domain.ReportForm, key string) decimal.Decimal {
	raw := leadingNumber.FindString(strings.TrimSpace(form[key]))
	if raw == "" {
		return decimal.Zero
	}
	v, err := decimal.NewFromString(strings.TrimSuffix(raw, "."))
	if err != nil {
		return decimal.Zero
	}
	return v
}

func sumFields(form domain.ReportForm, keys []string) decimal.Decimal {
	sum := decimal.Zero
	for _, k := range keys {
		sum = sum.Add(FormValue(form, k))
	}
	return sum
}

// SummarizeReportForm recomputes the whole-form figures from the current form data.
func SummarizeReportForm(form domain.ReportForm) domain.FormSummary {
	var s domain.FormSummary
	s.IngOfrendas = sumFields(form, domain.IncomeOfferingFields)
	s.IngEspeciales = sumFields(form, domain.IncomeSpecialFields)
	s.IngLocales = sumFields(form, domain.IncomeLocalFields)
	s.TotalIngresos = s.IngOfrendas.Add(s.IngEspeciales).Add(s.IngLocales)
	s.SaldoAnterior = FormValue(form, domain.FieldPriorBalance)
	s.TotalDisponible = s.SaldoAnterior.Add(s.TotalIngresos)

	gomer := FormValue(form, domain.FieldGomer)
	s.TotalManutencion = FormValue(form, domain.FieldAllowance).Sub(gomer)
	s.EgrEspeciales = sumFields(form, domain.ExpenseSpecialFields)
	s.EgrLocales = sumFields(form, domain.ExpenseLocalFields)
	s.TotalSalidas = gomer.Add(s.EgrEspeciales).Add(s.EgrLocales)
	s.Remanente = s.TotalDisponible.Sub(s.TotalSalidas)
	return s
}
