package money

// QuoteInput carries the raw quotation figures; zero means unknown.
type QuoteInput struct {
	AmountUSD    float64
	ExchangeRate float64
	AmountBs     float64
	FeePercent   float64
}

// Quote is the computed quotation. Each figure is rounded once and the
// later ones are derived from the rounded earlier ones.
type Quote struct {
	AmountUSD    float64
	ExchangeRate float64
	AmountBs     float64
	FeePercent   float64
	Fee          int64
	Total        float64
}

// ComputeQuote runs the conversion -> fee -> total cascade. A known Bs
// amount wins over converting the USD amount.
func ComputeQuote(in QuoteInput) Quote {
	q := Quote{
		AmountUSD:    Round2(in.AmountUSD),
		ExchangeRate: in.ExchangeRate,
		FeePercent:   in.FeePercent,
	}
	if !valid(q.ExchangeRate) || q.ExchangeRate <= 0 {
		q.ExchangeRate = DefaultExchangeRate
	}
	if !valid(q.FeePercent) || q.FeePercent <= 0 {
		q.FeePercent = DefaultFeePercent
	}

	switch {
	case valid(in.AmountBs) && in.AmountBs > 0:
		q.AmountBs = Round2(in.AmountBs)
	case q.AmountUSD > 0:
		q.AmountBs = Round2(q.AmountUSD * q.ExchangeRate)
	}

	q.Fee = FeeAt(q.AmountBs, q.FeePercent/100)
	q.Total = Round2(q.AmountBs + float64(q.Fee))
	return q
}
