// internal/salary/calculator.go
package salary

import (
	"math"

	stderrors "interview-backend/internal/common/errors"
)

// Calculator computes progressive income tax, net salary and cost-to-company
// figures per jurisdiction. Construct once and share; all methods are pure.
type Calculator struct {
	brackets           map[string][]bracket
	standardDeductions map[string]float64
	currencies         map[string]string
}

// Statutory deduction rates applied to every net-salary computation.
const (
	providentFundRate      = 0.12
	healthInsuranceRate    = 0.05
	monthlyProfessionalTax = 200.0
)

// Employer-side contribution rates for cost-to-company.
const (
	employerPFRate       = 0.12
	gratuityRate         = 0.0481
	variablePayRate      = 0.10
	medicalInsuranceFlat = 15000.0
)

// India-specific adjustments.
const (
	surchargeThreshold = 5000000.0
	surchargeRate      = 0.10
	cessMultiplier     = 1.04
)

func NewCalculator() *Calculator {
	return &Calculator{
		brackets: map[string][]bracket{
			"IN": {
				{0, 250000, 0.0},
				{250001, 500000, 0.05},
				{500001, 750000, 0.10},
				{750001, 1000000, 0.15},
				{1000001, 1250000, 0.20},
				{1250001, 1500000, 0.25},
				{1500001, math.Inf(1), 0.30},
			},
			"US": {
				{0, 10275, 0.10},
				{10276, 41775, 0.12},
				{41776, 89075, 0.22},
				{89076, 170050, 0.24},
				{170051, 215950, 0.32},
				{215951, 539900, 0.35},
				{539901, math.Inf(1), 0.37},
			},
			"UK": {
				{0, 12570, 0.0},
				{12571, 50270, 0.20},
				{50271, 150000, 0.40},
				{150001, math.Inf(1), 0.45},
			},
		},
		standardDeductions: map[string]float64{
			"IN": 50000,
			"US": 12950,
			"UK": 12570,
		},
		currencies: map[string]string{
			"IN": "₹",
			"US": "$",
			"UK": "£",
		},
	}
}

// CalculateTax computes the progressive tax on annualIncome for the given
// jurisdiction, after the jurisdiction's standard deduction and any supplied
// itemized deductions.
func (c *Calculator) CalculateTax(annualIncome float64, country string, deductions map[string]float64) (*TaxDetails, error) {
	table, ok := c.brackets[country]
	if !ok {
		return nil, stderrors.NewInvalidJurisdictionError(country)
	}

	taxable := math.Max(0, annualIncome-c.standardDeductions[country])
	for _, d := range deductions {
		taxable -= d
	}
	taxable = math.Max(0, taxable)

	var tax float64
	remaining := taxable
	for _, b := range table {
		if remaining <= 0 {
			break
		}
		amount := math.Min(remaining, b.Upper-b.Lower+1)
		tax += amount * b.Rate
		remaining -= amount
	}

	if country == "IN" && annualIncome > surchargeThreshold {
		tax += tax * surchargeRate
	}
	if country == "IN" {
		tax *= cessMultiplier
	}

	effective := 0.0
	if annualIncome > 0 {
		effective = round2(tax / annualIncome * 100)
	}

	return &TaxDetails{
		GrossIncome:      annualIncome,
		TaxableIncome:    taxable,
		TaxAmount:        round2(tax),
		EffectiveTaxRate: effective,
	}, nil
}

// CalculateNetSalary computes take-home pay. Statutory deductions (provident
// fund, professional tax, health insurance) are added to any caller-supplied
// deductions; the combined set both reduces taxable income and is subtracted
// from gross alongside the tax amount.
func (c *Calculator) CalculateNetSalary(baseSalary float64, country string, bonuses, deductions map[string]float64) (*Breakdown, error) {
	totalBonus := 0.0
	for _, b := range bonuses {
		totalBonus += b
	}

	allDeductions := map[string]float64{
		"provident_fund":   providentFundRate * baseSalary,
		"professional_tax": monthlyProfessionalTax * 12,
		"health_insurance": healthInsuranceRate * baseSalary,
	}
	for name, d := range deductions {
		allDeductions[name] = d
	}

	gross := baseSalary + totalBonus

	taxDetails, err := c.CalculateTax(gross, country, allDeductions)
	if err != nil {
		return nil, err
	}

	totalDeductions := taxDetails.TaxAmount
	for _, d := range allDeductions {
		totalDeductions += d
	}
	net := gross - totalDeductions

	return &Breakdown{
		BaseSalary:      baseSalary,
		TotalBonus:      totalBonus,
		GrossIncome:     gross,
		TaxDetails:      *taxDetails,
		Deductions:      allDeductions,
		TotalDeductions: totalDeductions,
		NetSalary:       round2(net),
		MonthlyNet:      round2(net / 12),
		Currency:        c.Currency(country),
	}, nil
}

// CalculateCTC computes the employer's total cost, combining standard
// contributions with any caller-supplied benefits.
func (c *Calculator) CalculateCTC(baseSalary float64, country string, benefits map[string]float64) (*CTCBreakdown, error) {
	if _, ok := c.brackets[country]; !ok {
		return nil, stderrors.NewInvalidJurisdictionError(country)
	}

	allBenefits := map[string]float64{
		"employer_pf":       employerPFRate * baseSalary,
		"gratuity":          gratuityRate * baseSalary,
		"medical_insurance": medicalInsuranceFlat,
		"variable_pay":      variablePayRate * baseSalary,
	}
	for name, b := range benefits {
		allBenefits[name] = b
	}

	total := 0.0
	for _, b := range allBenefits {
		total += b
	}

	return &CTCBreakdown{
		BaseSalary:    baseSalary,
		Benefits:      allBenefits,
		TotalBenefits: total,
		CTC:           baseSalary + total,
		Currency:      c.Currency(country),
	}, nil
}

// Currency returns the jurisdiction's currency symbol, defaulting to "$".
func (c *Calculator) Currency(country string) string {
	if symbol, ok := c.currencies[country]; ok {
		return symbol
	}
	return "$"
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
