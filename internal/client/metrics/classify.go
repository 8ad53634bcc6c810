package metrics

// The category label shown next to the BMI is server-supplied text; these
// classifications only pick the display color.

type BMICategory int

const (
	BMIUnderweight BMICategory = iota
	BMINormal
	BMIOverweight
	BMIObese
)

func (c BMICategory) String() string {
	switch c {
	case BMIUnderweight:
		return "underweight"
	case BMINormal:
		return "normal"
	case BMIOverweight:
		return "overweight"
	default:
		return "obese"
	}
}

// Color returns the display color the dashboard maps the category to.
func (c BMICategory) Color() string {
	if c == BMINormal {
		return "success"
	}
	if c == BMIObese {
		return "error"
	}
	return "warning"
}

// ClassifyBMI buckets a BMI value at the 18.5 / 25 / 30 cut points.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

type CompletionTier int

const (
	TierGood CompletionTier = iota
	TierWarning
	TierPoor
)

func (t CompletionTier) String() string {
	switch t {
	case TierGood:
		return "good"
	case TierWarning:
		return "warning"
	default:
		return "poor"
	}
}

func (t CompletionTier) Color() string {
	switch t {
	case TierGood:
		return "success"
	case TierWarning:
		return "warning"
	default:
		return "error"
	}
}

// ClassifyCompletion buckets a completion rate: good at 80 and above,
// warning at 60 and above, poor below.
func ClassifyCompletion(rate float64) CompletionTier {
	switch {
	case rate >= 80:
		return TierGood
	case rate >= 60:
		return TierWarning
	default:
		return TierPoor
	}
}
