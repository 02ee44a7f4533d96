package schema

// BinFor maps a priors count onto its bin level using the right-open interval
// partition (-1,0], (0,2], (2,5], (5,10], (10,20], (20,100]. Boundary values
// (0, 2, 5, 10, 20, 100) fall into the lower-closed bin. Counts outside
// [0,100] return BinUnclassified.
func BinFor(priorsCount int) PriorsBin {
	switch {
	case priorsCount < 0:
		return BinUnclassified
	case priorsCount == 0:
		return Bin0
	case priorsCount <= 2:
		return Bin1To2
	case priorsCount <= 5:
		return Bin3To5
	case priorsCount <= 10:
		return Bin6To10
	case priorsCount <= 20:
		return Bin11To20
	case priorsCount <= 100:
		return Bin21Plus
	default:
		return BinUnclassified
	}
}

// StatusForOutcome maps the binary two-year outcome onto its categorical
// status. Callers must validate the outcome is 0 or 1 before mapping; the
// pair of functions forms a total bijection over {0,1}.
func StatusForOutcome(twoYearRecid int) RecidivismStatus {
	if twoYearRecid == 1 {
		return Recidivism
	}
	return NoRecidivism
}

// OutcomeForStatus is the inverse of StatusForOutcome.
func OutcomeForStatus(status RecidivismStatus) int {
	if status == Recidivism {
		return 1
	}
	return 0
}
