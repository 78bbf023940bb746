package calculator

import "mortgage-calc/domain"

// BuildSchedule lists every monthly payment of the loan with its interest
// and principal split, plus yearly totals. The last payment absorbs any
// float residue so the closing balance is exactly zero.
func BuildSchedule(in domain.LoanInput) (domain.Schedule, error) {
	if err := validateLoan(in); err != nil {
		return domain.Schedule{}, err
	}

	n := in.TermYears * monthsPerYear
	r := monthlyRate(in.InterestRate)
	payment := MonthlyPayment(in.Amount, r, n)

	sched := domain.Schedule{
		MonthlyPayment: payment,
		Entries:        make([]domain.ScheduleEntry, 0, n),
		Years:          make([]domain.YearSummary, 0, in.TermYears),
	}

	balance := in.Amount
	year := domain.YearSummary{Year: 1}
	for p := 1; p <= n; p++ {
		interest := balance * r
		principal := payment - interest
		pay := payment
		if p == n || principal > balance {
			principal = balance
			pay = balance + interest
		}
		balance -= principal
		if p == n {
			balance = 0
		}

		sched.Entries = append(sched.Entries, domain.ScheduleEntry{
			Period:    p,
			Payment:   pay,
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})

		year.Paid += pay
		year.Interest += interest
		year.Principal += principal
		year.Balance = balance
		if p%monthsPerYear == 0 {
			sched.Years = append(sched.Years, year)
			year = domain.YearSummary{Year: year.Year + 1}
		}
	}
	return sched, nil
}
