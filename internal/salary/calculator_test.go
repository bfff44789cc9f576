// internal/salary/calculator_test.go
package salary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "interview-backend/internal/common/errors"
)

// ==========================
// Tax Calculation Tests
// ==========================

func TestCalculateTax_Jurisdictions(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name    string
		income  float64
		country string
		check   func(t *testing.T, d *TaxDetails)
	}{
		{
			name:    "india below taxable threshold",
			income:  250000,
			country: "IN",
			check: func(t *testing.T, d *TaxDetails) {
				assert.Equal(t, 0.0, d.TaxAmount)
				assert.Equal(t, 200000.0, d.TaxableIncome)
			},
		},
		{
			name:    "india mid bracket includes cess",
			income:  1000000,
			country: "IN",
			check: func(t *testing.T, d *TaxDetails) {
				assert.Greater(t, d.TaxAmount, 0.0)
				// 950000 taxable: 12500 + 25000 + 29999.85, times 1.04 cess
				assert.InDelta(t, 70199.84, d.TaxAmount, 0.01)
			},
		},
		{
			name:    "uk personal allowance",
			income:  12570,
			country: "UK",
			check: func(t *testing.T, d *TaxDetails) {
				assert.Equal(t, 0.0, d.TaxAmount)
			},
		},
		{
			name:    "us lowest bracket",
			income:  20000,
			country: "US",
			check: func(t *testing.T, d *TaxDetails) {
				// 7050 taxable, all within the 10% bracket
				assert.InDelta(t, 705.0, d.TaxAmount, 0.01)
			},
		},
		{
			name:    "zero income",
			income:  0,
			country: "IN",
			check: func(t *testing.T, d *TaxDetails) {
				assert.Equal(t, 0.0, d.TaxAmount)
				assert.Equal(t, 0.0, d.EffectiveTaxRate)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, err := calc.CalculateTax(tt.income, tt.country, nil)
			require.NoError(t, err)
			tt.check(t, details)
		})
	}
}

func TestCalculateTax_UnsupportedJurisdiction(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.CalculateTax(100000, "ZZ", nil)
	require.Error(t, err)

	stdErr := stderrors.AsStandardError(err)
	assert.Equal(t, stderrors.ErrCodeInvalidJurisdiction, stdErr.Code)
}

func TestCalculateTax_Monotonicity(t *testing.T) {
	calc := NewCalculator()

	for _, country := range []string{"IN", "US", "UK"} {
		prev := -1.0
		for income := 0.0; income <= 10000000; income += 100000 {
			details, err := calc.CalculateTax(income, country, nil)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, details.TaxAmount, prev,
				"tax decreased at income %.0f in %s", income, country)
			prev = details.TaxAmount
		}
	}
}

func TestCalculateTax_IndiaSurcharge(t *testing.T) {
	calc := NewCalculator()

	below, err := calc.CalculateTax(5000000, "IN", nil)
	require.NoError(t, err)
	above, err := calc.CalculateTax(5000001, "IN", nil)
	require.NoError(t, err)

	// Crossing the surcharge threshold adds 10% on the whole tax amount.
	assert.Greater(t, above.TaxAmount, below.TaxAmount*1.09)
}

func TestCalculateTax_DeductionsReduceTax(t *testing.T) {
	calc := NewCalculator()

	base, err := calc.CalculateTax(1500000, "IN", nil)
	require.NoError(t, err)
	reduced, err := calc.CalculateTax(1500000, "IN", map[string]float64{"80c": 150000})
	require.NoError(t, err)

	assert.Less(t, reduced.TaxAmount, base.TaxAmount)
	assert.Equal(t, base.TaxableIncome-150000, reduced.TaxableIncome)
}

// ==========================
// Net Salary Tests
// ==========================

func TestCalculateNetSalary_IndiaExample(t *testing.T) {
	calc := NewCalculator()

	breakdown, err := calc.CalculateNetSalary(1200000, "IN", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 1200000.0, breakdown.GrossIncome)
	assert.Equal(t, 0.0, breakdown.TotalBonus)
	assert.Equal(t, "₹", breakdown.Currency)

	// Statutory deductions: PF 12%, professional tax 200x12, health 5%.
	assert.InDelta(t, 144000.0, breakdown.Deductions["provident_fund"], 0.01)
	assert.InDelta(t, 2400.0, breakdown.Deductions["professional_tax"], 0.01)
	assert.InDelta(t, 60000.0, breakdown.Deductions["health_insurance"], 0.01)

	// Taxable: 1200000 - 50000 standard - 206400 itemized = 943600.
	assert.InDelta(t, 943600.0, breakdown.TaxDetails.TaxableIncome, 0.01)
	assert.InDelta(t, 69201.44, breakdown.TaxDetails.TaxAmount, 0.01)

	assert.InDelta(t, breakdown.GrossIncome,
		breakdown.NetSalary+breakdown.TotalDeductions, 0.01)
	assert.InDelta(t, breakdown.NetSalary/12, breakdown.MonthlyNet, 0.01)
}

func TestCalculateNetSalary_Identity(t *testing.T) {
	calc := NewCalculator()

	tests := []struct {
		name       string
		base       float64
		country    string
		bonuses    map[string]float64
		deductions map[string]float64
	}{
		{"india no extras", 1200000, "IN", nil, nil},
		{"india with bonus", 1800000, "IN", map[string]float64{"performance": 200000}, nil},
		{"us with deduction", 120000, "US", nil, map[string]float64{"401k": 10000}},
		{"uk mid income", 60000, "UK", nil, nil},
		{"india surcharge range", 6000000, "IN", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := calc.CalculateNetSalary(tt.base, tt.country, tt.bonuses, tt.deductions)
			require.NoError(t, err)
			assert.InDelta(t, b.GrossIncome, b.NetSalary+b.TotalDeductions, 0.01)
		})
	}
}

func TestCalculateNetSalary_UnsupportedJurisdiction(t *testing.T) {
	calc := NewCalculator()

	_, err := calc.CalculateNetSalary(100000, "ZZ", nil, nil)
	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeInvalidJurisdiction, stderrors.AsStandardError(err).Code)
}

// ==========================
// CTC Tests
// ==========================

func TestCalculateCTC(t *testing.T) {
	calc := NewCalculator()

	ctc, err := calc.CalculateCTC(1000000, "IN", nil)
	require.NoError(t, err)

	assert.InDelta(t, 120000.0, ctc.Benefits["employer_pf"], 0.01)
	assert.InDelta(t, 48100.0, ctc.Benefits["gratuity"], 0.01)
	assert.InDelta(t, 15000.0, ctc.Benefits["medical_insurance"], 0.01)
	assert.InDelta(t, 100000.0, ctc.Benefits["variable_pay"], 0.01)
	assert.InDelta(t, ctc.BaseSalary+ctc.TotalBenefits, ctc.CTC, 0.01)
	assert.Equal(t, "₹", ctc.Currency)
}

func TestCalculateCTC_ExtraBenefits(t *testing.T) {
	calc := NewCalculator()

	ctc, err := calc.CalculateCTC(1000000, "US", map[string]float64{"stock_grant": 50000})
	require.NoError(t, err)

	assert.Equal(t, 50000.0, ctc.Benefits["stock_grant"])
	assert.Equal(t, "$", ctc.Currency)
	assert.InDelta(t, ctc.BaseSalary+ctc.TotalBenefits, ctc.CTC, 0.01)
}

func TestCurrency_Default(t *testing.T) {
	calc := NewCalculator()

	assert.Equal(t, "₹", calc.Currency("IN"))
	assert.Equal(t, "£", calc.Currency("UK"))
	assert.Equal(t, "$", calc.Currency("FR"))
}
