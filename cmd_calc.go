package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"mortgage-calc/domain"
)

var repaymentCmd = &cobra.Command{
	Use:   "repayment",
	Short: "Calculate repayments for a loan amount, rate and term",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cfg.Logging)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		amount, _ := flags.GetFloat64("amount")
		rate, _ := flags.GetFloat64("rate")
		years, _ := flags.GetInt("years")
		frequency, _ := flags.GetString("frequency")

		result, err := newLocalService(log).CalculateLoan(cmd.Context(), domain.LoanInput{
			Amount:       amount,
			InterestRate: rate,
			TermYears:    years,
			Frequency:    domain.Frequency(frequency),
		})
		if err != nil {
			return err
		}
		printLoanResult(cmd.OutOrStdout(), result)
		return nil
	},
}

var repaymentTimeCmd = &cobra.Command{
	Use:   "repayment-time",
	Short: "Calculate how long a monthly payment takes to repay a loan",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cfg.Logging)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		amount, _ := flags.GetFloat64("amount")
		rate, _ := flags.GetFloat64("rate")
		payment, _ := flags.GetFloat64("payment")

		result, err := newLocalService(log).RepaymentTime(cmd.Context(), domain.RepaymentTimeInput{
			Amount:         amount,
			InterestRate:   rate,
			MonthlyPayment: payment,
		})
		out := cmd.OutOrStdout()
		if errors.Is(err, domain.ErrPaymentTooLow) {
			if result.ExceedsMaxTerm {
				fmt.Fprintln(out, "The payment is too low: the loan would take more than 100 years to repay.")
			} else {
				fmt.Fprintln(out, "The payment does not cover the monthly interest; the loan would never be repaid.")
			}
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Repaid in:      %d years %d months (%d payments)\n", result.Years, result.RemainingMonths, result.Months)
		fmt.Fprintf(out, "Final payment:  %s\n", money(result.FinalPayment))
		fmt.Fprintf(out, "Total paid:     %s\n", money(result.TotalPayment))
		fmt.Fprintf(out, "Total interest: %s\n", money(result.TotalInterest))
		return nil
	},
}

var extraCmd = &cobra.Command{
	Use:   "extra",
	Short: "Show the effect of extra monthly repayments",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cfg.Logging)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		amount, _ := flags.GetFloat64("amount")
		rate, _ := flags.GetFloat64("rate")
		years, _ := flags.GetInt("years")
		extra, _ := flags.GetFloat64("extra")
		startAfter, _ := flags.GetInt("start-after")

		result, err := newLocalService(log).ExtraRepayments(cmd.Context(), domain.ExtraRepaymentInput{
			Amount:           amount,
			InterestRate:     rate,
			TermYears:        years,
			ExtraMonthly:     extra,
			StartAfterMonths: startAfter,
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Monthly payment: %s (with extra %s)\n", money(result.MonthlyPayment), money(result.NewPayment))
		fmt.Fprintf(out, "Term:            %d -> %d months (%d saved)\n", result.OriginalMonths, result.NewMonths, result.MonthsSaved)
		fmt.Fprintf(out, "Interest:        %s -> %s (%s saved)\n",
			money(result.OriginalInterest), money(result.NewInterest), money(result.InterestSaved))
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare the total cost of two loan offers",
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger(cfg.Logging)
		if err != nil {
			return err
		}
		flags := cmd.Flags()
		amount, _ := flags.GetFloat64("amount")
		years, _ := flags.GetInt("years")

		result, err := newLocalService(log).Compare(cmd.Context(), domain.ComparisonInput{
			Amount:    amount,
			TermYears: years,
			OfferA:    offerFromFlags(cmd, "a"),
			OfferB:    offerFromFlags(cmd, "b"),
		})
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, offer := range []domain.OfferCost{result.OfferA, result.OfferB} {
			fmt.Fprintf(out, "%s: %s/month intro, %s/month after, total cost %s, comparison rate %.2f%%\n",
				offer.Name, money(offer.IntroPayment), money(offer.OngoingPayment), money(offer.TotalCost), offer.ComparisonRate)
		}
		switch result.Cheaper {
		case "equal":
			fmt.Fprintln(out, "Both offers cost the same.")
		default:
			fmt.Fprintf(out, "Offer %s is cheaper by %s.\n", result.Cheaper, money(math.Abs(result.Difference)))
		}
		return nil
	},
}

func init() {
	repaymentCmd.Flags().Float64("amount", 0, "loan amount")
	repaymentCmd.Flags().Float64("rate", 0, "annual interest rate in percent")
	repaymentCmd.Flags().Int("years", 30, "loan term in years")
	repaymentCmd.Flags().String("frequency", string(domain.FrequencyMonthly), "monthly, fortnightly or weekly")

	repaymentTimeCmd.Flags().Float64("amount", 0, "loan amount")
	repaymentTimeCmd.Flags().Float64("rate", 0, "annual interest rate in percent")
	repaymentTimeCmd.Flags().Float64("payment", 0, "monthly payment")

	extraCmd.Flags().Float64("amount", 0, "loan amount")
	extraCmd.Flags().Float64("rate", 0, "annual interest rate in percent")
	extraCmd.Flags().Int("years", 30, "loan term in years")
	extraCmd.Flags().Float64("extra", 0, "extra amount paid each month")
	extraCmd.Flags().Int("start-after", 0, "months before extra repayments start")

	compareCmd.Flags().Float64("amount", 0, "loan amount")
	compareCmd.Flags().Int("years", 30, "loan term in years")
	for _, side := range []string{"a", "b"} {
		compareCmd.Flags().Float64(side+"-rate", 0, "offer "+side+" ongoing annual rate in percent")
		compareCmd.Flags().Float64(side+"-intro-rate", 0, "offer "+side+" introductory annual rate in percent")
		compareCmd.Flags().Int(side+"-intro-months", 0, "offer "+side+" introductory period in months")
		compareCmd.Flags().Float64(side+"-fees", 0, "offer "+side+" upfront fees")
		compareCmd.Flags().Float64(side+"-monthly-fees", 0, "offer "+side+" monthly fees")
	}

	for _, c := range []*cobra.Command{repaymentCmd, repaymentTimeCmd, extraCmd, compareCmd} {
		_ = c.MarkFlagRequired("amount")
	}
}

func offerFromFlags(cmd *cobra.Command, side string) domain.LoanOffer {
	flags := cmd.Flags()
	rate, _ := flags.GetFloat64(side + "-rate")
	introRate, _ := flags.GetFloat64(side + "-intro-rate")
	introMonths, _ := flags.GetInt(side + "-intro-months")
	fees, _ := flags.GetFloat64(side + "-fees")
	monthlyFees, _ := flags.GetFloat64(side + "-monthly-fees")
	return domain.LoanOffer{
		Name:              "Offer " + strings.ToUpper(side),
		IntroRate:         introRate,
		IntroPeriodMonths: introMonths,
		OngoingRate:       rate,
		UpfrontFees:       fees,
		MonthlyFees:       monthlyFees,
	}
}

func printLoanResult(out io.Writer, result domain.LoanResult) {
	fmt.Fprintf(out, "Payment (%s): %s\n", result.Frequency, money(result.Payment))
	for _, f := range domain.Frequencies {
		fmt.Fprintf(out, "  %-12s %s\n", f, money(result.Payments[f]))
	}
	fmt.Fprintf(out, "Total paid:     %s\n", money(result.TotalPayment))
	fmt.Fprintf(out, "Total interest: %s\n", money(result.TotalInterest))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
