package domain

import "maps"

// ReportForm is the flat field-name → value map behind a monthly report.
// Derived and manually entered values live side by side; which keys are derived is fixed
// by DerivedReportFields.
type ReportForm map[string]string

// General information.
const (
	FieldChurchCode     = "clave-iglesia"
	FieldChurchName     = "nombre-iglesia"
	FieldDistrict       = "distrito"
	FieldDepartment     = "departamento"
	FieldActiveMembers  = "miembros-activos"
	FieldReportMonth    = "mes-reporte"
	FieldReportYear     = "ano-reporte"
	FieldMinisterName   = "nombre-ministro"
	FieldMinisterGrade  = "grado-ministro"
	FieldMinisterPhone  = "tel-ministro"
	FieldPriorBalance   = "saldo-anterior"
	FieldIncomeDiezmos  = "ing-diezmos"
	FieldIncomeOrdinary = "ing-ofrendas-ordinarias"
	FieldIncomeServices = "ing-servicios-publicos"
	FieldAllowance      = "egr-asignacion"
	FieldGomer          = "egr-gomer"
	FieldExpenseService = "egr-servicios-publicos"
	FieldDistDireccion  = "dist-direccion"
)

// Income groups.
var (
	IncomeOfferingFields = []string{"ing-diezmos", "ing-ofrendas-ordinarias", "ing-primicias", "ing-ayuda-encargado"}
	IncomeSpecialFields  = []string{"ing-ceremonial", "ing-ofrenda-especial-sdd", "ing-evangelizacion", "ing-santa-cena"}
	IncomeLocalFields    = []string{
		"ing-servicios-publicos", "ing-arreglos-locales", "ing-mantenimiento", "ing-construccion-local",
		"ing-muebles", "ing-viajes-ministro", "ing-reuniones-ministeriales", "ing-atencion-ministros",
		"ing-viajes-extranjero", "ing-actividades-locales", "ing-ciudad-lldm", "ing-adquisicion-terreno",
	}
)

// Expense groups. egr-asignacion and egr-gomer form the minister upkeep block.
var (
	ExpenseSpecialFields = []string{"egr-ceremonial", "egr-ofrenda-especial-sdd", "egr-evangelizacion", "egr-santa-cena"}
	ExpenseLocalFields   = []string{
		"egr-servicios-publicos", "egr-arreglos-locales", "egr-mantenimiento", "egr-traspaso-construccion",
		"egr-muebles", "egr-viajes-ministro", "egr-reuniones-ministeriales", "egr-atencion-ministros",
		"egr-viajes-extranjero", "egr-actividades-locales", "egr-ciudad-lldm", "egr-adquisicion-terreno",
	}
)

var (
	generalInfoFields = []string{
		FieldChurchCode, FieldChurchName, FieldDistrict, FieldDepartment,
		FieldActiveMembers, FieldReportMonth, FieldReportYear, FieldMinisterName,
		FieldMinisterGrade, FieldMinisterPhone,
	}
	distributionFields = []string{"dist-direccion", "dist-tesoreria", "dist-pro-construccion", "dist-otros"}
	signatureFields    = []string{"comision-nombre-1", "comision-nombre-2", "comision-nombre-3"}
)

// DerivedReportFields are the keys written by a prefill. Everything else is manual.
var DerivedReportFields = []string{
	FieldChurchCode, FieldChurchName, FieldMinisterName, FieldReportMonth, FieldReportYear,
	FieldIncomeDiezmos, FieldIncomeOrdinary, FieldIncomeServices, FieldExpenseService,
	FieldGomer, FieldDistDireccion, FieldAllowance,
}

// ReportFields lists every key of the report form in display order.
func ReportFields() []string {
	fields := make([]string, 0, 64)
	fields = append(fields, generalInfoFields...)
	fields = append(fields, FieldPriorBalance)
	fields = append(fields, IncomeOfferingFields...)
	fields = append(fields, IncomeSpecialFields...)
	fields = append(fields, IncomeLocalFields...)
	fields = append(fields, FieldAllowance, FieldGomer)
	fields = append(fields, ExpenseSpecialFields...)
	fields = append(fields, ExpenseLocalFields...)
	fields = append(fields, distributionFields...)
	fields = append(fields, signatureFields...)
	return fields
}

// NewReportForm returns a form with every known key present and blank.
func NewReportForm() ReportForm {
	form := make(ReportForm, 64)
	for _, f := range ReportFields() {
		form[f] = ""
	}
	return form
}

var reportFieldSet = func() map[string]struct{} {
	set := make(map[string]struct{}, 64)
	for _, f := range ReportFields() {
		set[f] = struct{}{}
	}
	return set
}()

// IsReportField reports whether key belongs to the fixed schema.
func IsReportField(key string) bool {
	_, ok := reportFieldSet[key]
	return ok
}

// Clone returns an independent copy, with every schema key present.
func (f ReportForm) Clone() ReportForm {
	out := NewReportForm()
	maps.Copy(out, f)
	return out
}
