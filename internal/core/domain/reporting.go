package domain

import (
	"github.com/shopspring/decimal"
)

// WeeklySummary holds the figures derived from one WeeklyRecord.
type WeeklySummary struct {
	RecordID       string                                `json:"recordId,omitempty"`
	Empty          bool                                  `json:"empty"` // No active week
	Categories     []string                              `json:"categories"`
	Subtotals      map[string]decimal.Decimal            `json:"subtotals"`
	Total          decimal.Decimal                       `json:"total"` // Diezmo + Ordinaria
	DiezmoDeDiezmo decimal.Decimal                       `json:"diezmoDeDiezmo"`
	Remanente      decimal.Decimal                       `json:"remanente"`
	GomerMinistro  decimal.Decimal                       `json:"gomerMinistro"`
	RoundingDrift  decimal.Decimal                       `json:"roundingDrift"` // diezmoDeDiezmo + gomer - round(total)
	MemberNames    []string                              `json:"memberNames"`
	ByMember       map[string]map[string]decimal.Decimal `json:"byMember"`
	Formulas       Formulas                              `json:"formulas"`
}

// MonthlySummary folds every weekly summary of a calendar month.
type MonthlySummary struct {
	Month               int                        `json:"month"`
	Year                int                        `json:"year"`
	WeekCount           int                        `json:"weekCount"`
	Minister            string                     `json:"minister"`
	CategoryTotals      map[string]decimal.Decimal `json:"categoryTotals"`
	DiezmoTotal         decimal.Decimal            `json:"diezmoTotal"`
	OrdinariaTotal      decimal.Decimal            `json:"ordinariaTotal"`
	PublicServicesTotal decimal.Decimal            `json:"publicServicesTotal"`
	Total               decimal.Decimal            `json:"total"`
	DiezmoDeDiezmo      decimal.Decimal            `json:"diezmoDeDiezmo"`
	GomerMinistro       decimal.Decimal            `json:"gomerMinistro"`
	Remanente           decimal.Decimal            `json:"remanente"`
	Weeks               []WeeklySummary            `json:"weeks"`
}

// FormSummary holds the whole-form figures of a monthly report. It is always computed from
// the current form data and never stored.
type FormSummary struct {
	IngOfrendas      decimal.Decimal `json:"ingOfrendas"`
	IngEspeciales    decimal.Decimal `json:"ingEspeciales"`
	IngLocales       decimal.Decimal `json:"ingLocales"`
	TotalIngresos    decimal.Decimal `json:"totalIngresos"`
	SaldoAnterior    decimal.Decimal `json:"saldoAnterior"`
	TotalDisponible  decimal.Decimal `json:"totalDisponible"`
	TotalManutencion decimal.Decimal `json:"totalManutencion"`
	EgrEspeciales    decimal.Decimal `json:"egrEspeciales"`
	EgrLocales       decimal.Decimal `json:"egrLocales"`
	TotalSalidas     decimal.Decimal `json:"totalSalidas"`
	Remanente        decimal.Decimal `json:"remanente"`
}

// OrgInfo is the organization identity written into prefilled reports.
type OrgInfo struct {
	ChurchCode string
	ChurchName string
}
