package finance

import "math"

// NotaryMethod selects how notary fees are split into installments.
type NotaryMethod string

const (
	NotaryMethodCard NotaryMethod = "CARD"
	NotaryMethodSlip NotaryMethod = "BANK_SLIP"
)

// notaryTier maps an appraisal-value ceiling to a flat fee. Tiers are
// ascending; the last tier has no ceiling.
type notaryTier struct {
	maxAppraisalValue float64
	fee               float64
}

var notaryTiers = []notaryTier{
	{100_000, 2_540.00},
	{200_000, 3_480.00},
	{300_000, 4_420.00},
	{500_000, 5_610.00},
	{1_000_000, 7_830.00},
	{0, 9_940.00}, // unbounded
}

// NotaryFee returns the flat notary fee for the given appraisal value: the
// fee of the first tier whose ceiling covers it, the last tier's fee above
// all ceilings, and 0 for non-positive input. The per-participant surcharge
// is added by the caller, not here.
func NotaryFee(appraisalValue float64) float64 {
	if appraisalValue <= 0 {
		return 0
	}
	for _, tier := range notaryTiers {
		if tier.maxAppraisalValue > 0 && appraisalValue <= tier.maxAppraisalValue {
			return tier.fee
		}
	}
	return notaryTiers[len(notaryTiers)-1].fee
}

// NotaryInstallment splits a notary fee total over count periods. Card
// payments split evenly; bank-slip payments carry the fixed monthly slip
// rate as a level payment. Non-positive totals or counts yield 0.
func NotaryInstallment(total float64, count int, method NotaryMethod) float64 {
	if total <= 0 || count <= 0 {
		return 0
	}
	if method == NotaryMethodCard {
		return total / float64(count)
	}

	r := NotarySlipRate
	pow := math.Pow(1+r, float64(count))
	return total * r * pow / (pow - 1)
}
