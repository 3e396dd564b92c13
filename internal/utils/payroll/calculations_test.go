package payroll_test

import (
	"testing"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/ovenpos/bakery_backoffice_app/internal/utils/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func testProfile() domain.CompensationProfile {
	return domain.CompensationProfile{
		ProfileID:       "profile-1",
		Staff:           domain.StaffRef{Kind: domain.StaffKindStaffMember, ID: "staff-1"},
		BaseSalary:      dec("150000"),
		Allowances:      dec("20000"),
		OtherDeductions: dec("3000"),
		TaxRate:         dec("5"),
		PensionRate:     dec("8"),
		SalaryType:      domain.SalaryMonthly,
	}
}

func TestComputeSettlement_WorkedExample(t *testing.T) {
	profile := testProfile()
	loans := []domain.LoanRecord{{LoanID: "loan-1", Amount: dec("10000")}}

	result := payroll.ComputeSettlement(profile, loans, nil)

	assert.True(t, result.GrossAmount.Equal(dec("170000")), "gross = %s", result.GrossAmount)
	assert.True(t, result.TaxAmount.Equal(dec("8500")), "tax = %s", result.TaxAmount)
	assert.True(t, result.PensionAmount.Equal(dec("13600")), "pension = %s", result.PensionAmount)
	assert.True(t, result.OtherDeductions.Equal(dec("3000")), "other = %s", result.OtherDeductions)
	assert.True(t, result.LoanDeduction.Equal(dec("10000")), "loans = %s", result.LoanDeduction)
	assert.True(t, result.TotalDeductions.Equal(dec("35100")), "total = %s", result.TotalDeductions)
	assert.True(t, result.NetAmount.Equal(dec("134900")), "net = %s", result.NetAmount)
}

func TestComputeSettlement_Deterministic(t *testing.T) {
	profile := testProfile()
	loans := []domain.LoanRecord{
		{LoanID: "loan-1", Amount: dec("1234.56")},
		{LoanID: "loan-2", Amount: dec("78.90")},
	}
	overrides := &domain.SettlementOverrides{TaxRate: decPtr("7.5")}

	first := payroll.ComputeSettlement(profile, loans, overrides)
	for i := 0; i < 10; i++ {
		again := payroll.ComputeSettlement(profile, loans, overrides)
		assert.Equal(t, first, again, "repeated calls must return identical results")
	}
}

func TestComputeSettlement_AdditivityInvariant(t *testing.T) {
	tests := []struct {
		name        string
		baseSalary  string
		allowances  string
		taxRate     string
		pensionRate string
		otherDed    string
		loans       []string
	}{
		{"no deductions", "100000", "0", "0", "0", "0", nil},
		{"rates that round", "33333.33", "6666.67", "7.25", "2.5", "199.99", []string{"500.01"}},
		{"many loans", "80000", "5000", "10", "8", "1000", []string{"2000", "3000", "4000.50"}},
		{"deductions exceeding gross", "1000", "0", "50", "50", "2000", []string{"5000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := testProfile()
			profile.BaseSalary = dec(tt.baseSalary)
			profile.Allowances = dec(tt.allowances)
			profile.TaxRate = dec(tt.taxRate)
			profile.PensionRate = dec(tt.pensionRate)
			profile.OtherDeductions = dec(tt.otherDed)

			loans := make([]domain.LoanRecord, len(tt.loans))
			for i, amt := range tt.loans {
				loans[i] = domain.LoanRecord{Amount: dec(amt)}
			}

			r := payroll.ComputeSettlement(profile, loans, nil)

			sum := r.TaxAmount.Add(r.PensionAmount).Add(r.OtherDeductions).Add(r.LoanDeduction)
			assert.True(t, r.TotalDeductions.Equal(sum),
				"total %s != sum of components %s", r.TotalDeductions, sum)
			assert.True(t, r.NetAmount.Equal(r.GrossAmount.Sub(r.TotalDeductions)),
				"net %s != gross - total", r.NetAmount)
		})
	}
}

func TestComputeSettlement_RoundsEachIntermediate(t *testing.T) {
	profile := testProfile()
	// 1234.56 * 3.33% = 41.110848 -> rounds to 41.11
	profile.BaseSalary = dec("1234.56")
	profile.Allowances = dec("0")
	profile.TaxRate = dec("3.33")
	profile.PensionRate = dec("0")
	profile.OtherDeductions = dec("0")

	r := payroll.ComputeSettlement(profile, nil, nil)

	assert.True(t, r.TaxAmount.Equal(dec("41.11")), "tax = %s", r.TaxAmount)
	assert.Equal(t, int32(2), -r.TaxAmount.Exponent())
}

func TestComputeSettlement_Monotonicity(t *testing.T) {
	profile := testProfile()
	base := payroll.ComputeSettlement(profile, nil, nil)

	higherTax := payroll.ComputeSettlement(profile, nil, &domain.SettlementOverrides{TaxRate: decPtr("6")})
	assert.True(t, higherTax.NetAmount.LessThan(base.NetAmount), "raising tax rate must lower net")

	higherPension := payroll.ComputeSettlement(profile, nil, &domain.SettlementOverrides{PensionRate: decPtr("9")})
	assert.True(t, higherPension.NetAmount.LessThan(base.NetAmount), "raising pension rate must lower net")

	richer := profile
	richer.Allowances = profile.Allowances.Add(dec("1000"))
	higherAllowance := payroll.ComputeSettlement(richer, nil, nil)
	assert.True(t, higherAllowance.NetAmount.GreaterThan(base.NetAmount), "raising allowances must raise net")
}

func TestComputeSettlement_OverridesFallBackToProfile(t *testing.T) {
	profile := testProfile()

	noOverrides := payroll.ComputeSettlement(profile, nil, nil)
	emptyOverrides := payroll.ComputeSettlement(profile, nil, &domain.SettlementOverrides{})
	assert.Equal(t, noOverrides, emptyOverrides)

	partial := payroll.ComputeSettlement(profile, nil, &domain.SettlementOverrides{OtherDeductions: decPtr("0")})
	assert.True(t, partial.OtherDeductions.IsZero())
	assert.True(t, partial.TaxAmount.Equal(noOverrides.TaxAmount), "unrelated fields must still come from the profile")
}

func TestComputeSettlement_NegativeNetIsReturnedNotClamped(t *testing.T) {
	profile := testProfile()
	profile.BaseSalary = dec("10000")
	profile.Allowances = dec("0")
	loans := []domain.LoanRecord{{Amount: dec("50000")}}

	r := payroll.ComputeSettlement(profile, loans, nil)

	assert.True(t, r.NetAmount.IsNegative(), "calculator must not clamp a negative net")
}

func TestValidateForCommit(t *testing.T) {
	profile := testProfile()
	ok := payroll.ComputeSettlement(profile, nil, nil)

	tests := []struct {
		name       string
		profile    domain.CompensationProfile
		settlement domain.SettlementResult
		overrides  *domain.SettlementOverrides
		wantErr    string
	}{
		{"valid", profile, ok, nil, ""},
		{"negative net", profile, domain.SettlementResult{NetAmount: dec("-1")}, nil, "negative"},
		{"zero base salary", domain.CompensationProfile{BaseSalary: dec("0")}, ok, nil, "base salary"},
		{"tax rate above 100", profile, ok, &domain.SettlementOverrides{TaxRate: decPtr("101")}, "tax rate"},
		{"negative pension rate", profile, ok, &domain.SettlementOverrides{PensionRate: decPtr("-1")}, "pension rate"},
		{"negative other deductions", profile, ok, &domain.SettlementOverrides{OtherDeductions: decPtr("-5")}, "other deductions"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := payroll.ValidateForCommit(tt.profile, tt.settlement, tt.overrides)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestApplyDebtEntry_PaymentSequence(t *testing.T) {
	debt := domain.CompanyDebt{
		DebtID:         "debt-1",
		OriginalAmount: dec("1000"),
		Outstanding:    dec("1000"),
		DebtType:       domain.OwedToCompany,
		Status:         domain.DebtPending,
	}

	original, balance, status, err := payroll.ApplyDebtEntry(debt, domain.DebtHistoryEntry{
		Amount: dec("400"), TransactionType: domain.DebtTxnPayment,
	})
	require.NoError(t, err)
	assert.True(t, original.Equal(dec("1000")))
	assert.True(t, balance.Equal(dec("600")), "balance = %s", balance)
	assert.Equal(t, domain.DebtPartiallyPaid, status)

	debt.Outstanding = balance
	debt.Status = status

	_, balance, status, err = payroll.ApplyDebtEntry(debt, domain.DebtHistoryEntry{
		Amount: dec("600"), TransactionType: domain.DebtTxnPayment,
	})
	require.NoError(t, err)
	assert.True(t, balance.IsZero())
	assert.Equal(t, domain.DebtPaid, status)
}

func TestApplyDebtEntry_Rules(t *testing.T) {
	base := domain.CompanyDebt{
		DebtID:         "debt-1",
		OriginalAmount: dec("1000"),
		Outstanding:    dec("1000"),
		DebtType:       domain.OwedToCompany,
		Status:         domain.DebtPending,
	}

	t.Run("additional debt raises balance and original together", func(t *testing.T) {
		original, balance, status, err := payroll.ApplyDebtEntry(base, domain.DebtHistoryEntry{
			Amount: dec("250"), TransactionType: domain.DebtTxnAdditionalDebt,
		})
		require.NoError(t, err)
		assert.True(t, original.Equal(dec("1250")))
		assert.True(t, balance.Equal(dec("1250")))
		assert.Equal(t, domain.DebtPending, status)
	})

	t.Run("additional debt after a payment stays partially paid", func(t *testing.T) {
		partial := base
		partial.Outstanding = dec("600")
		partial.Status = domain.DebtPartiallyPaid
		original, balance, status, err := payroll.ApplyDebtEntry(partial, domain.DebtHistoryEntry{
			Amount: dec("500"), TransactionType: domain.DebtTxnAdditionalDebt,
		})
		require.NoError(t, err)
		assert.True(t, original.Equal(dec("1500")))
		assert.True(t, balance.Equal(dec("1100")))
		assert.Equal(t, domain.DebtPartiallyPaid, status)
	})

	t.Run("gift rejected on debt owed to company", func(t *testing.T) {
		_, _, _, err := payroll.ApplyDebtEntry(base, domain.DebtHistoryEntry{
			Amount: dec("100"), TransactionType: domain.DebtTxnGift,
		})
		assert.Error(t, err)
	})

	t.Run("gift forgives debt owed by company", func(t *testing.T) {
		owed := base
		owed.DebtType = domain.OwedByCompany
		_, balance, status, err := payroll.ApplyDebtEntry(owed, domain.DebtHistoryEntry{
			Amount: dec("1000"), TransactionType: domain.DebtTxnGift,
		})
		require.NoError(t, err)
		assert.True(t, balance.IsZero())
		assert.Equal(t, domain.DebtPaid, status)
	})

	t.Run("overpayment rejected", func(t *testing.T) {
		_, _, _, err := payroll.ApplyDebtEntry(base, domain.DebtHistoryEntry{
			Amount: dec("1001"), TransactionType: domain.DebtTxnPayment,
		})
		assert.Error(t, err)
	})

	t.Run("written off is terminal", func(t *testing.T) {
		written := base
		written.Status = domain.DebtWrittenOff
		_, _, _, err := payroll.ApplyDebtEntry(written, domain.DebtHistoryEntry{
			Amount: dec("1"), TransactionType: domain.DebtTxnPayment,
		})
		assert.Error(t, err)
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, _, _, err := payroll.ApplyDebtEntry(base, domain.DebtHistoryEntry{
			Amount: dec("0"), TransactionType: domain.DebtTxnPayment,
		})
		assert.Error(t, err)
	})
}

func TestDeriveDebtStatus(t *testing.T) {
	assert.Equal(t, domain.DebtPaid, payroll.DeriveDebtStatus(dec("1000"), dec("0")))
	assert.Equal(t, domain.DebtPending, payroll.DeriveDebtStatus(dec("1000"), dec("1000")))
	assert.Equal(t, domain.DebtPartiallyPaid, payroll.DeriveDebtStatus(dec("1000"), dec("400")))
}
