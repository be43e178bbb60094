package facts

import "dashboard/internal/random"

// DefaultFacts returns the 10 bundled fun facts.
func DefaultFacts() []string {
	return []string{
		"Honey never spoils.",
		"Bananas are berries, but strawberries aren't.",
		"A group of flamingos is called a 'flamboyance'.",
		"Octopuses have three hearts.",
		"The Eiffel Tower can be 15 cm taller during hot days.",
		"Wombat poop is cube-shaped.",
		"There are more stars in the universe than grains of sand on Earth.",
		"Some cats are allergic to humans.",
		"A jiffy is an actual unit of time.",
		"The unicorn is the national animal of Scotland.",
	}
}

// DefaultEmoji returns the 12 bundled motivational emoji.
func DefaultEmoji() []string {
	return []string{"🚀", "🌟", "🔥", "💡", "🎯", "💪", "✨", "🦾", "🧠", "🏆", "🛸", "🤖"}
}

// Widget 挂载时选定的趣闻与表情，会话内不变
// Widget holds the fact and emoji picked at mount; frozen for the session
type Widget struct {
	Fact  string
	Emoji string
}

// Pick selects one fact and one emoji uniformly at random.
func Pick(factList, emojiList []string, rnd random.Source) Widget {
	var w Widget
	w.Fact, _ = random.Pick(rnd, factList)
	w.Emoji, _ = random.Pick(rnd, emojiList)
	return w
}
