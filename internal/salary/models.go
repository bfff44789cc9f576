// internal/salary/models.go
package salary

// TaxDetails is the tax portion of a salary breakdown.
type TaxDetails struct {
	GrossIncome      float64 `json:"gross_income"`
	TaxableIncome    float64 `json:"taxable_income"`
	TaxAmount        float64 `json:"tax_amount"`
	EffectiveTaxRate float64 `json:"effective_tax_rate"`
}

// Breakdown is a complete net-salary computation. Invariant:
// NetSalary = GrossIncome - TotalDeductions, where TotalDeductions is the
// sum of itemized deductions plus the computed tax.
type Breakdown struct {
	BaseSalary      float64            `json:"base_salary"`
	TotalBonus      float64            `json:"total_bonus"`
	GrossIncome     float64            `json:"gross_income"`
	TaxDetails      TaxDetails         `json:"tax_details"`
	Deductions      map[string]float64 `json:"deductions"`
	TotalDeductions float64            `json:"total_deductions"`
	NetSalary       float64            `json:"net_salary"`
	MonthlyNet      float64            `json:"monthly_net"`
	Currency        string             `json:"currency"`
}

// CTCBreakdown is the employer-side cost-to-company view.
type CTCBreakdown struct {
	BaseSalary    float64            `json:"base_salary"`
	Benefits      map[string]float64 `json:"benefits"`
	TotalBenefits float64            `json:"total_benefits"`
	CTC           float64            `json:"ctc"`
	Currency      string             `json:"currency"`
}

// bracket is one tier of a progressive tax table. Tables are ordered,
// contiguous and cover [0, inf); the last tier's upper bound is unbounded.
type bracket struct {
	Lower float64
	Upper float64
	Rate  float64
}
