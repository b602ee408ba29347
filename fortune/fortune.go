// Package fortune implements the unlimited fortune draw that sits next to
// the lucky money flow on the landing page.
package fortune

import "math/rand"

type Kind string

const (
	KindWealth  Kind = "wealth"
	KindCareer  Kind = "career"
	KindLove    Kind = "love"
	KindHealth  Kind = "health"
	KindGeneral Kind = "general"
)

// Fortune 签文
type Fortune struct {
	ID      int    `json:"id"`
	Type    Kind   `json:"type"`
	Message string `json:"message"`
}

var fortunes = []Fortune{
	{ID: 1, Type: KindWealth, Message: "Wealth flows in like water, fortune stays like a mountain."},
	{ID: 2, Type: KindWealth, Message: "Your pockets will be heavy with gold this year."},
	{ID: 3, Type: KindWealth, Message: "Investment in yourself pays the best interest. ROI +1000%!"},
	{ID: 4, Type: KindWealth, Message: "Bonus season is coming. Prepare your wallet!"},
	{ID: 5, Type: KindWealth, Message: "Unexpected financial gains are heading your way."},
	{ID: 6, Type: KindWealth, Message: "Green candles only for your portfolio this year!"},
	{ID: 7, Type: KindWealth, Message: "The God of Wealth is knocking at your door."},
	{ID: 8, Type: KindCareer, Message: "A promotion is on the horizon. Keep pushing forward!"},
	{ID: 9, Type: KindCareer, Message: "Your hard work will finally be recognized by those who matter."},
	{ID: 10, Type: KindCareer, Message: "You will ship a feature that users absolutely love."},
	{ID: 11, Type: KindCareer, Message: "Bug-free code and seamless deploys await you."},
	{ID: 12, Type: KindCareer, Message: "That 'impossible' deadline? You'll crush it with time to spare."},
	{ID: 13, Type: KindCareer, Message: "Your code reviews will be legendary for their insight."},
	{ID: 14, Type: KindLove, Message: "Love is in the air. Open your heart to new possibilities."},
	{ID: 15, Type: KindLove, Message: "An old connection may bloom into something beautiful."},
	{ID: 16, Type: KindLove, Message: "The people around you treasure you more than you know."},
	{ID: 17, Type: KindHealth, Message: "Energy and vitality will carry you through the whole year."},
	{ID: 18, Type: KindHealth, Message: "A healthy routine started now will pay off tenfold."},
	{ID: 19, Type: KindHealth, Message: "Rest is productive too. Your best ideas arrive after sleep."},
	{ID: 20, Type: KindGeneral, Message: "Every draw is a new possibility. May the odds be ever in your favor."},
	{ID: 21, Type: KindGeneral, Message: "A pleasant surprise is waiting where you least expect it."},
	{ID: 22, Type: KindGeneral, Message: "Travel plans will bring you joy and new perspective."},
	{ID: 23, Type: KindGeneral, Message: "Luck favors the prepared. You are more prepared than you think."},
	{ID: 24, Type: KindGeneral, Message: "The year of the Horse gallops in your direction."},
}

// Draw picks a fortune uniformly using the supplied source, so callers
// control reproducibility.
func Draw(rng *rand.Rand) Fortune {
	return fortunes[rng.Intn(len(fortunes))]
}

// All returns the table, for hosts that render the full deck.
func All() []Fortune {
	out := make([]Fortune, len(fortunes))
	copy(out, fortunes)
	return out
}
