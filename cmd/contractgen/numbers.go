package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-contractgen/pkg/money"
)

func newWordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "words <number>",
		Short: "Spell a number in Spanish",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := a.cfg.Money()
			if err != nil {
				return err
			}
			fmt.Fprintln(a.out, formatter.Speller().ParseWords(args[0]))
			return nil
		},
	}
}

func newFeeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "fee <principal-bs>",
		Short: "Compute the service fee for a principal in Bs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			principal, err := parseAmount(args[0])
			if err != nil {
				return err
			}
			formatter, err := a.cfg.Money()
			if err != nil {
				return err
			}
			fee := formatter.Spell(money.FeeAt(principal, a.cfg.FeeRate))
			fmt.Fprintf(a.out, "%s %s (%s)\n", fee.Numeral, money.Currency, fee.Words)
			return nil
		},
	}
}

func newQuoteCmd(a *app) *cobra.Command {
	var in money.QuoteInput
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Compute a quotation: USD amount, exchange, fee and total",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formatter, err := a.cfg.Money()
			if err != nil {
				return err
			}
			if in.FeePercent <= 0 {
				in.FeePercent = a.cfg.FeeRate * 100
			}
			q := money.ComputeQuote(in)
			fee := formatter.Spell(q.Fee)
			fmt.Fprintf(a.out, "amount_usd: %s\n", formatter.Decimal(q.AmountUSD, 2))
			fmt.Fprintf(a.out, "exchange_rate: %s\n", formatter.Decimal(q.ExchangeRate, 2))
			fmt.Fprintf(a.out, "amount_bs: %s\n", formatter.Decimal(q.AmountBs, 2))
			fmt.Fprintf(a.out, "fee: %s (%v%%, %s)\n", fee.Numeral, q.FeePercent, fee.Words)
			fmt.Fprintf(a.out, "total: %s (%s)\n", formatter.Decimal(q.Total, 2), formatter.SpellCents(q.Total))
			return nil
		},
	}
	cmd.Flags().Float64Var(&in.AmountUSD, "usd", 0, "amount in USD")
	cmd.Flags().Float64Var(&in.ExchangeRate, "rate", 0, "Bs per USD (defaults to the official rate)")
	cmd.Flags().Float64Var(&in.AmountBs, "bs", 0, "amount in Bs; wins over converting --usd")
	cmd.Flags().Float64Var(&in.FeePercent, "percent", 0, "fee percent (defaults to fee_rate from the config)")
	return cmd
}

// parseAmount accepts plain or grouped numerals ("200000", "200,000.50").
func parseAmount(raw string) (float64, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q", raw)
	}
	return v, nil
}
