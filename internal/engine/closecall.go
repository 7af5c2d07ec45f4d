package engine

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// closeCall is the classifier's verdict on the two leading figures.
type closeCall struct {
	Tie        bool
	GapUSD     float64
	GapPercent float64
	Reason     string
}

// classifyCloseCall decides whether the gap between the two leading cost
// figures is inside the tolerance band. The band widens when a currency
// conversion was involved. The classification is symmetric in a and b.
func classifyCloseCall(p Params, a, b float64, fx bool) closeCall {
	dollarBand := p.CloseCallDollarGap
	percentBand := p.CloseCallPercentGap
	if fx {
		dollarBand *= p.FXWideningFactor
		percentBand *= p.FXWideningFactor
	}

	gap := math.Abs(a - b)
	larger := math.Max(math.Abs(a), math.Abs(b))
	gapPct := 0.0
	if larger > 0 {
		gapPct = gap / larger * 100
	}

	cc := closeCall{GapUSD: gap, GapPercent: gapPct}
	if gap <= dollarBand || gapPct <= percentBand {
		cc.Tie = true
		cc.Reason = fmt.Sprintf(
			"too close to call: the $%s gap is within the $%s / %s%% tolerance band; break the tie on cancellation policy or support quality",
			humanize.CommafWithDigits(gap, 2),
			humanize.CommafWithDigits(dollarBand, 2),
			humanize.FtoaWithDigits(percentBand, 1))
	}
	return cc
}
