package audit

// Scoring weights. A critical finding costs three times as much as a
// warning; passed findings never change the score.
const (
	// criticalPenalty is subtracted from the score per critical finding.
	criticalPenalty = 15

	// warningPenalty is subtracted from the score per warning finding.
	warningPenalty = 5

	// maxScore is the best achievable score.
	maxScore = 100
)

// Score converts finding counts into the overall 0-100 score.
// It is a pure function of the counts, so permuting check execution
// order never changes the result. A page scores 100 exactly when it has
// no critical findings and no warnings.
func Score(criticalCount, warningCount int) int {
	score := maxScore - criticalCount*criticalPenalty - warningCount*warningPenalty
	if score < 0 {
		return 0
	}
	if score > maxScore {
		return maxScore
	}
	return score
}
