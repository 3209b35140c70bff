package program

// MotivationTier buckets overall progress.
type MotivationTier int

const (
	TierStart MotivationTier = iota
	TierMomentum
	TierSteady
	TierClose
	TierChampion
)

var tierMessages = map[MotivationTier]string{
	TierChampion: "🔥 Harika gidiyorsun! Şampiyon gibi!",
	TierClose:    "💪 Çok iyi! Hedeflerin yakın!",
	TierSteady:   "⚡ İyi gidiyor! Devam et!",
	TierMomentum: "🌟 Başlangıç güzel! Momentum yakala!",
	TierStart:    "🚀 Başlayalım! Her büyük yolculuk ilk adımla başlar!",
}

func (t MotivationTier) Message() string {
	return tierMessages[t]
}

// OverallProgress averages the bootcamp and sport percentages.
func OverallProgress(s Stats) float64 {
	return (s.Bootcamp.Percentage + s.Sport.Percentage) / 2
}

func Tier(s Stats) MotivationTier {
	p := OverallProgress(s)
	switch {
	case p >= 80:
		return TierChampion
	case p >= 60:
		return TierClose
	case p >= 40:
		return TierSteady
	case p >= 20:
		return TierMomentum
	default:
		return TierStart
	}
}

func MotivationalMessage(s Stats) string {
	return Tier(s).Message()
}
