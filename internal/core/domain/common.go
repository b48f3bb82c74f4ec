package domain

// Tithe-bearing categories. Only these two feed the tithe-of-tithe computation.
const (
	CategoryDiezmo    = "Diezmo"
	CategoryOrdinaria = "Ordinaria"
)

// DefaultCategories is the category set used when nothing has been persisted yet.
var DefaultCategories = []string{CategoryDiezmo, CategoryOrdinaria, "Luz", "Agua", "Ofrenda Especial"}

// DefaultPublicServiceCategories are folded into the public-services line of the monthly report.
var DefaultPublicServiceCategories = []string{"Luz", "Agua"}

// MonthNames holds the Spanish month names used on the monthly report, indexed from 0.
var MonthNames = [12]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the Spanish name of month (1-12), or "" when out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return MonthNames[month-1]
}
