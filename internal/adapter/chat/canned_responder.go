package chat

import (
	"context"
	"strings"

	"ashi-remedies/internal/domain"
)

// Disclaimer is appended to every assistant reply.
const Disclaimer = "Vedji shares traditional wisdom, not medical advice. Please see a doctor if symptoms persist."

type cannedRule struct {
	keywords []string
	reply    string
}

var cannedRules = []cannedRule{
	{
		keywords: []string{"cold", "cough", "throat", "congestion"},
		reply:    "For a cold or sore throat, try a warm Ginger Honey Tea or a Tulsi Kadha. Sip slowly and rest your voice.",
	},
	{
		keywords: []string{"sleep", "insomnia", "stress", "anxious", "anxiety"},
		reply:    "A cup of Ashwagandha Moon Milk an hour before bed calms the mind. Keep a regular bedtime to settle vata.",
	},
	{
		keywords: []string{"bloat", "gas", "digest", "acid", "stomach"},
		reply:    "Jeera Saunf Water after meals kindles agni and eases bloating. Avoid cold drinks with food.",
	},
	{
		keywords: []string{"tooth", "gum", "dental"},
		reply:    "A Clove Oil Compress numbs tooth pain for a while. Please visit a dentist if it keeps coming back.",
	},
	{
		keywords: []string{"joint", "knee", "inflammation", "swelling"},
		reply:    "Golden Milk with turmeric and a pinch of black pepper supports joint comfort.",
	},
	{
		keywords: []string{"headache", "migraine"},
		reply:    "Warm Ghee Nasya and a quiet, dark room can ease a tension headache.",
	},
	{
		keywords: []string{"dosha", "vata", "pitta", "kapha", "prakriti"},
		reply:    "Take the Nadi Pariksha quiz in Vedji's Clinic to discover your dominant dosha.",
	},
}

const cannedFallback = "Namaste! Tell me how you feel, for example \"I have a cold\" or \"I can't sleep\", and I will suggest a home remedy."

// CannedResponder answers from a fixed keyword table. It never fails and
// needs no network.
type CannedResponder struct{}

// NewCannedResponder creates a new instance of CannedResponder
func NewCannedResponder() domain.ChatResponder {
	return CannedResponder{}
}

// Reply implements domain.ChatResponder
func (CannedResponder) Reply(_ context.Context, message string) (string, error) {
	text := strings.ToLower(message)
	for _, rule := range cannedRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.reply + " " + Disclaimer, nil
			}
		}
	}
	return cannedFallback, nil
}
