package contacts

// Lead score weights. Clicks outweigh opens because a click is deliberate;
// visits sit between. The score is always recomputed from the raw counters,
// never incremented in place.
const (
	scoreWeightOpen        = 2
	scoreWeightClick       = 5
	scoreWeightVisit       = 3
	scoreWeightInteraction = 1
	scoreMax               = 100
)

// ScoreFor derives a 0-100 lead score from raw engagement counters.
func ScoreFor(emailOpens, emailClicks, websiteVisits, totalInteractions int) int {
	score := emailOpens*scoreWeightOpen +
		emailClicks*scoreWeightClick +
		websiteVisits*scoreWeightVisit +
		totalInteractions*scoreWeightInteraction
	if score > scoreMax {
		return scoreMax
	}
	return score
}
