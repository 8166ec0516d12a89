package reference

import "math/rand"

// Pakistani farming phrases with an Islamic touch, appended to successful
// analysis replies.
var farmingPhrases = []string{
	"Allah barkat de aap ki fasal ko! 🌱",
	"Mashallah, aap ke khet ki sehat achi hai! 💚",
	"Thora aur pani aur mehnat, phir dekho kamal! 💧",
	"Fasal ki hifazat ke liye dua karein, Allah madad karega 🤲",
	"Kheti mein barkat ka sirf Allah hi haqdar hai 🌾",
	"Nabi (S.A.W) ne farmaya: 'Kheti karo, ye amal pasandeeda hai' 🕌",
	"Apni mehnat par bharosa rakho, rizq dena Allah ka kaam hai 🌿",
}

// RandomFarmingPhrase returns a random farming phrase.
func RandomFarmingPhrase() string {
	return farmingPhrases[rand.Intn(len(farmingPhrases))]
}

// FarmingPhrases returns all phrases in declared order.
func FarmingPhrases() []string {
	out := make([]string, len(farmingPhrases))
	copy(out, farmingPhrases)
	return out
}

var islamicFarmingTips = []string{
	"🌱 Plant trees and crops: the Prophet (S.A.W) said whoever plants a tree and it bears fruit, it is charity.",
	"💧 Use water sparingly: wastefulness is discouraged even when water is plentiful.",
	"🤝 Share the harvest: set aside a portion of produce for neighbours and those in need.",
	"🌾 Treat the land gently: avoid over-exploiting soil, let fields rest when they are exhausted.",
	"🐄 Care for farm animals: kindness to animals carries reward, neglect carries sin.",
	"🕌 Begin work with Bismillah and trust in Allah for the provision of rizq.",
}

// IslamicFarmingTips returns the static tip list.
func IslamicFarmingTips() []string {
	out := make([]string, len(islamicFarmingTips))
	copy(out, islamicFarmingTips)
	return out
}
