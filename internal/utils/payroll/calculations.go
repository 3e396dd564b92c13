package payroll

import (
	"fmt"

	"github.com/ovenpos/bakery_backoffice_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComputeSettlement derives a SettlementResult from a compensation profile,
// the staff member's unpaid loans, and optional per-settlement overrides.
// This is used by both the interactive preview and the commit path so the
// numbers the operator saw are the numbers that get persisted.
//
// All intermediates are rounded to 2 decimal places before summation, so
// the additivity invariant (total = tax + pension + other + loans,
// net = gross - total) holds exactly on the rounded values.
//
// Pure function: no side effects, deterministic, safe to call on every
// keystroke of the settlement form. A negative NetAmount is a valid result
// here; rejecting it is the commit step's job.
func ComputeSettlement(profile domain.CompensationProfile, unpaidLoans []domain.LoanRecord, overrides *domain.SettlementOverrides) domain.SettlementResult {
	taxRate := profile.TaxRate
	pensionRate := profile.PensionRate
	otherDeductions := profile.OtherDeductions
	if overrides != nil {
		if overrides.TaxRate != nil {
			taxRate = *overrides.TaxRate
		}
		if overrides.PensionRate != nil {
			pensionRate = *overrides.PensionRate
		}
		if overrides.OtherDeductions != nil {
			otherDeductions = *overrides.OtherDeductions
		}
	}

	gross := profile.BaseSalary.Add(profile.Allowances).Round(2)
	taxAmount := gross.Mul(taxRate).Div(hundred).Round(2)
	pensionAmount := gross.Mul(pensionRate).Div(hundred).Round(2)
	otherDeductions = otherDeductions.Round(2)

	loanDeduction := decimal.Zero
	for _, loan := range unpaidLoans {
		loanDeduction = loanDeduction.Add(loan.Amount)
	}
	loanDeduction = loanDeduction.Round(2)

	totalDeductions := taxAmount.Add(pensionAmount).Add(otherDeductions).Add(loanDeduction)

	return domain.SettlementResult{
		GrossAmount:     gross,
		TaxAmount:       taxAmount,
		PensionAmount:   pensionAmount,
		OtherDeductions: otherDeductions,
		LoanDeduction:   loanDeduction,
		TotalDeductions: totalDeductions,
		NetAmount:       gross.Sub(totalDeductions),
	}
}

// ValidateForCommit checks the constraints that block a settlement from
// being persisted. ComputeSettlement never errors; this gate runs at the
// commit step only.
func ValidateForCommit(profile domain.CompensationProfile, settlement domain.SettlementResult, overrides *domain.SettlementOverrides) error {
	if profile.BaseSalary.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("base salary must be positive, got %s", profile.BaseSalary.String())
	}
	if overrides != nil {
		if err := validateRate("tax rate", overrides.TaxRate); err != nil {
			return err
		}
		if err := validateRate("pension rate", overrides.PensionRate); err != nil {
			return err
		}
		if overrides.OtherDeductions != nil && overrides.OtherDeductions.IsNegative() {
			return fmt.Errorf("other deductions must not be negative, got %s", overrides.OtherDeductions.String())
		}
	}
	if settlement.NetAmount.IsNegative() {
		return fmt.Errorf("net amount %s is negative; deductions exceed gross pay", settlement.NetAmount.String())
	}
	return nil
}

func validateRate(name string, rate *decimal.Decimal) error {
	if rate == nil {
		return nil
	}
	if rate.IsNegative() || rate.GreaterThan(hundred) {
		return fmt.Errorf("%s must be within [0,100], got %s", name, rate.String())
	}
	return nil
}

// ApplyDebtEntry folds one ledger entry into a company debt and derives the
// new original amount, outstanding balance, and status. The debt itself is
// not mutated; the caller persists the returned values together with the
// appended entry.
//
// Direction rules: payment and adjustment entries move the balance toward
// zero; additional_debt raises the balance and the original amount with it,
// so a debt that only grew stays pending instead of reading as partially
// paid; gift forgives balance on debts owed by the company and is rejected
// on debts owed to the company (a forgiven staff debt is an adjustment, not
// a gift).
func ApplyDebtEntry(debt domain.CompanyDebt, entry domain.DebtHistoryEntry) (decimal.Decimal, decimal.Decimal, domain.DebtStatus, error) {
	if debt.Status == domain.DebtWrittenOff {
		return debt.OriginalAmount, debt.Outstanding, debt.Status, fmt.Errorf("debt %s is written off; no further entries may change its balance", debt.DebtID)
	}
	if entry.Amount.LessThanOrEqual(decimal.Zero) {
		return debt.OriginalAmount, debt.Outstanding, debt.Status, fmt.Errorf("entry amount must be positive, got %s", entry.Amount.String())
	}

	original := debt.OriginalAmount
	balance := debt.Outstanding
	switch entry.TransactionType {
	case domain.DebtTxnPayment, domain.DebtTxnAdjustment:
		balance = balance.Sub(entry.Amount)
	case domain.DebtTxnGift:
		if debt.DebtType != domain.OwedByCompany {
			return original, debt.Outstanding, debt.Status, fmt.Errorf("gift entries apply only to debts owed by the company")
		}
		balance = balance.Sub(entry.Amount)
	case domain.DebtTxnAdditionalDebt:
		original = original.Add(entry.Amount)
		balance = balance.Add(entry.Amount)
	default:
		return original, debt.Outstanding, debt.Status, fmt.Errorf("unknown debt transaction type %q", entry.TransactionType)
	}

	if balance.IsNegative() {
		return debt.OriginalAmount, debt.Outstanding, debt.Status, fmt.Errorf("entry of %s would overpay the outstanding balance %s", entry.Amount.String(), debt.Outstanding.String())
	}

	return original, balance, DeriveDebtStatus(original, balance), nil
}

// DeriveDebtStatus maps a ledger balance to the debt status. Written-off is
// never derived; it is an explicit, audited manual override.
func DeriveDebtStatus(originalAmount, outstanding decimal.Decimal) domain.DebtStatus {
	switch {
	case outstanding.IsZero():
		return domain.DebtPaid
	case outstanding.Equal(originalAmount):
		return domain.DebtPending
	default:
		return domain.DebtPartiallyPaid
	}
}
