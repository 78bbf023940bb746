package calculator

import (
	"errors"
	"testing"

	"mortgage-calc/domain"
)

func TestCompare_IntroOfferWithFees(t *testing.T) {
	result, err := Compare(domain.ComparisonInput{
		Amount:    500000,
		TermYears: 30,
		OfferA:    domain.LoanOffer{Name: "standard", IntroRate: 5, OngoingRate: 5},
		OfferB: domain.LoanOffer{
			Name:              "honeymoon",
			IntroRate:         4,
			IntroPeriodMonths: 24,
			OngoingRate:       6,
			UpfrontFees:       1000,
			MonthlyFees:       10,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !approx(result.OfferA.TotalCost, 966278.92, 0.01) {
		t.Errorf("offer A: expected total cost 966278.92, got %.2f", result.OfferA.TotalCost)
	}
	b := result.OfferB
	if !approx(b.IntroPayment, 2387.08, 0.01) {
		t.Errorf("offer B: expected intro payment 2387.08, got %.2f", b.IntroPayment)
	}
	if !approx(b.BalanceAfter, 482030.90, 0.01) {
		t.Errorf("offer B: expected balance 482030.90, got %.2f", b.BalanceAfter)
	}
	if !approx(b.OngoingPayment, 2965.09, 0.01) {
		t.Errorf("offer B: expected ongoing payment 2965.09, got %.2f", b.OngoingPayment)
	}
	if !approx(b.TotalFees, 4600, 1e-9) {
		t.Errorf("offer B: expected fees 4600, got %.2f", b.TotalFees)
	}
	if !approx(result.Difference, 91880.42, 0.01) {
		t.Errorf("expected difference 91880.42, got %.2f", result.Difference)
	}
	if result.Cheaper != "A" {
		t.Errorf("expected A to be cheaper, got %q", result.Cheaper)
	}
	if b.ComparisonRate <= 5.5 {
		t.Errorf("expected fees to lift comparison rate above 5.5, got %.4f", b.ComparisonRate)
	}
}

func TestCompare_ComparisonRateWithoutFeesIsTheRate(t *testing.T) {
	result, err := Compare(domain.ComparisonInput{
		Amount:    300000,
		TermYears: 25,
		OfferA:    domain.LoanOffer{OngoingRate: 6.2},
		OfferB:    domain.LoanOffer{OngoingRate: 6.2},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !approx(result.OfferA.ComparisonRate, 6.2, 1e-6) {
		t.Errorf("expected comparison rate 6.2, got %.8f", result.OfferA.ComparisonRate)
	}
	if result.Cheaper != "equal" || result.Difference != 0 {
		t.Errorf("identical offers should be equal, got %q (%.4f)", result.Cheaper, result.Difference)
	}
}

func TestCompare_IntroLongerThanTerm(t *testing.T) {
	result, err := Compare(domain.ComparisonInput{
		Amount:    100000,
		TermYears: 5,
		OfferA:    domain.LoanOffer{IntroRate: 3, IntroPeriodMonths: 120, OngoingRate: 9},
		OfferB:    domain.LoanOffer{OngoingRate: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	a := result.OfferA
	if a.IntroMonths != 60 || a.OngoingPayment != 0 {
		t.Errorf("intro should cover the whole term, got %+v", a)
	}
	if !approx(a.TotalCost, result.OfferB.TotalCost, 1e-6) {
		t.Errorf("expected the same cost as a flat 3%% loan")
	}
}

func TestCompare_InvalidOffer(t *testing.T) {
	_, err := Compare(domain.ComparisonInput{
		Amount:    100000,
		TermYears: 5,
		OfferA:    domain.LoanOffer{OngoingRate: 5},
		OfferB:    domain.LoanOffer{OngoingRate: 5, MonthlyFees: -1},
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExtraRepayments_SavesInterest(t *testing.T) {
	result, err := ExtraRepayments(domain.ExtraRepaymentInput{
		Amount:       500000,
		InterestRate: 6,
		TermYears:    30,
		ExtraMonthly: 500,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.NewMonths != 252 {
		t.Errorf("expected 252 months, got %d", result.NewMonths)
	}
	if result.MonthsSaved != 108 {
		t.Errorf("expected 108 months saved, got %d", result.MonthsSaved)
	}
	if !approx(result.InterestSaved, 199501.27, 0.05) {
		t.Errorf("expected interest saved 199501.27, got %.2f", result.InterestSaved)
	}
	if !approx(result.NewPayment-result.MonthlyPayment, 500, 1e-9) {
		t.Errorf("expected new payment to include the extra amount")
	}
}

func TestExtraRepayments_NoExtraChangesNothing(t *testing.T) {
	result, err := ExtraRepayments(domain.ExtraRepaymentInput{
		Amount:           400000,
		InterestRate:     5.5,
		TermYears:        25,
		StartAfterMonths: 36,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NewMonths != result.OriginalMonths {
		t.Errorf("expected %d months, got %d", result.OriginalMonths, result.NewMonths)
	}
	if !approx(result.InterestSaved, 0, 0.01) {
		t.Errorf("expected no saving, got %.4f", result.InterestSaved)
	}
}

func TestExtraRepayments_DeferralReducesSaving(t *testing.T) {
	base := domain.ExtraRepaymentInput{Amount: 500000, InterestRate: 6, TermYears: 30, ExtraMonthly: 500}
	now, err := ExtraRepayments(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	base.StartAfterMonths = 60
	later, err := ExtraRepayments(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if later.InterestSaved >= now.InterestSaved {
		t.Errorf("deferring should save less: now %.2f later %.2f", now.InterestSaved, later.InterestSaved)
	}
	if later.NewMonths <= now.NewMonths {
		t.Errorf("deferring should pay off later: now %d later %d", now.NewMonths, later.NewMonths)
	}

	base.StartAfterMonths = 1000
	never, err := ExtraRepayments(base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if never.NewMonths != 360 || never.MonthsSaved != 0 {
		t.Errorf("deferral past the term should change nothing, got %+v", never)
	}
}

func TestExtraRepayments_InvalidInput(t *testing.T) {
	cases := []domain.ExtraRepaymentInput{
		{Amount: 500000, InterestRate: 6, TermYears: 30, ExtraMonthly: -1},
		{Amount: 500000, InterestRate: 6, TermYears: 30, StartAfterMonths: -1},
		{Amount: 0, InterestRate: 6, TermYears: 30},
	}
	for _, in := range cases {
		if _, err := ExtraRepayments(in); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("%+v: expected ErrInvalidInput, got %v", in, err)
		}
	}
}

func TestInterestOnly(t *testing.T) {
	result, err := InterestOnly(domain.InterestOnlyInput{
		Amount:            500000,
		InterestRate:      6,
		TermYears:         30,
		InterestOnlyYears: 5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !approx(result.InterestOnlyPayment, 2500, 1e-9) {
		t.Errorf("expected interest-only payment 2500, got %.4f", result.InterestOnlyPayment)
	}
	if !approx(result.PrincipalAndInterest, 3221.51, 0.01) {
		t.Errorf("expected P&I payment 3221.51, got %.4f", result.PrincipalAndInterest)
	}
	if !approx(result.TotalInterest, 616452.10, 0.01) {
		t.Errorf("expected total interest 616452.10, got %.2f", result.TotalInterest)
	}
	if !approx(result.ExtraInterest, 616452.10-579190.95, 0.02) {
		t.Errorf("unexpected extra interest %.2f", result.ExtraInterest)
	}
	if result.InterestOnlyMonths != 60 || result.PrincipalAndInterestMonths != 300 {
		t.Errorf("unexpected period split %d/%d", result.InterestOnlyMonths, result.PrincipalAndInterestMonths)
	}
}

func TestInterestOnly_PeriodMustBeShorterThanTerm(t *testing.T) {
	_, err := InterestOnly(domain.InterestOnlyInput{Amount: 1000, InterestRate: 5, TermYears: 5, InterestOnlyYears: 5})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBorrowingPower(t *testing.T) {
	result, err := BorrowingPower(domain.BorrowingPowerInput{
		GrossAnnualIncome:  120000,
		MonthlyExpenses:    3000,
		MonthlyCommitments: 500,
		InterestRate:       6,
		TermYears:          30,
		Deposit:            100000,
	}, DefaultServiceability)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !approx(result.MaxMonthlyRepayment, 2500, 1e-9) {
		t.Errorf("expected capacity 2500, got %.2f", result.MaxMonthlyRepayment)
	}
	if result.AssessmentRate != 9 {
		t.Errorf("expected assessment rate 9, got %v", result.AssessmentRate)
	}
	if !approx(result.MaxLoan, 310704.66, 0.01) {
		t.Errorf("expected max loan 310704.66, got %.2f", result.MaxLoan)
	}
	if !approx(result.ActualRepayment, 1862.83, 0.01) {
		t.Errorf("expected actual repayment 1862.83, got %.2f", result.ActualRepayment)
	}
	if !approx(result.MaxPropertyPrice, 410704.66, 0.01) {
		t.Errorf("expected property price 410704.66, got %.2f", result.MaxPropertyPrice)
	}
	if result.LVR <= 75 || result.LVR >= 76 {
		t.Errorf("expected LVR around 75.65, got %.2f", result.LVR)
	}
}

func TestBorrowingPower_NoCapacity(t *testing.T) {
	result, err := BorrowingPower(domain.BorrowingPowerInput{
		GrossAnnualIncome: 36000,
		MonthlyExpenses:   3500,
		InterestRate:      6,
		TermYears:         30,
	}, DefaultServiceability)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.MaxLoan != 0 || result.MaxMonthlyRepayment != 0 {
		t.Errorf("expected no borrowing power, got %+v", result)
	}
}

func TestBorrowingPower_BadRules(t *testing.T) {
	in := domain.BorrowingPowerInput{GrossAnnualIncome: 100000, InterestRate: 6, TermYears: 30}
	if _, err := BorrowingPower(in, domain.Serviceability{MaxRepaymentRatio: 1.5}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestSwitching(t *testing.T) {
	result, err := Switching(domain.SwitchingInput{
		Balance:        400000,
		CurrentRate:    6.5,
		NewRate:        5.5,
		RemainingYears: 25,
		SwitchingCosts: 3000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !approx(result.MonthlySaving, 244.48, 0.01) {
		t.Errorf("expected monthly saving 244.48, got %.2f", result.MonthlySaving)
	}
	if !approx(result.LifetimeSaving, 70343.60, 0.01) {
		t.Errorf("expected lifetime saving 70343.60, got %.2f", result.LifetimeSaving)
	}
	if result.BreakEvenMonths != 13 {
		t.Errorf("expected break-even at 13 months, got %d", result.BreakEvenMonths)
	}
	if !result.Worthwhile {
		t.Errorf("expected the switch to be worthwhile")
	}
}

func TestSwitching_HigherRateNeverBreaksEven(t *testing.T) {
	result, err := Switching(domain.SwitchingInput{
		Balance:        400000,
		CurrentRate:    5,
		NewRate:        5.5,
		RemainingYears: 25,
		SwitchingCosts: 1000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Worthwhile || result.BreakEvenMonths != 0 {
		t.Errorf("expected no break-even, got %+v", result)
	}
}

func TestBuildSchedule(t *testing.T) {
	in := domain.LoanInput{Amount: 250000, InterestRate: 5.9, TermYears: 20}
	sched, err := BuildSchedule(in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sched.Entries) != 240 {
		t.Fatalf("expected 240 entries, got %d", len(sched.Entries))
	}
	if len(sched.Years) != 20 {
		t.Fatalf("expected 20 yearly rows, got %d", len(sched.Years))
	}

	var principal, interest float64
	for i, e := range sched.Entries {
		if e.Period != i+1 {
			t.Fatalf("entry %d has period %d", i, e.Period)
		}
		principal += e.Principal
		interest += e.Interest
	}
	if last := sched.Entries[239]; last.Balance != 0 {
		t.Errorf("expected zero closing balance, got %v", last.Balance)
	}
	if !approx(principal, 250000, 1e-6) {
		t.Errorf("principal repaid %.6f, want 250000", principal)
	}

	loan, _ := Amortize(in)
	if !approx(interest, loan.TotalInterest, 0.01) {
		t.Errorf("schedule interest %.2f differs from amortized %.2f", interest, loan.TotalInterest)
	}
	if sched.Years[0].Interest <= sched.Years[19].Interest {
		t.Errorf("interest should fall over the life of the loan")
	}
}
