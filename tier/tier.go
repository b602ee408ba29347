// Package tier maps a granted amount to the presentation tier printed on
// the receipt. Pure lookup, resolved on every render, never cached.
package tier

// Tier 红包金额对应的档位文案
type Tier struct {
	Amount  int64
	Title   string
	Message string
	Icon    string
}

var rewardTiers = []Tier{
	{
		Amount:  300000,
		Title:   "The Market Mover",
		Message: "WHALE ALERT! You just drained the liquidity pool. Dinner is on you tonight—don't try to hide, we can see the transaction on-chain.",
	},
	{
		Amount:  200000,
		Title:   "Series A Funded",
		Message: "Solid funding secured! Not enough to retire, but definitely enough to buy fancy coffee for a week. Your valuation just went up.",
	},
	{
		Amount:  100000,
		Title:   "The Smart Contract",
		Message: "Respectable. Reliable. Solid. This covers your gas fees for the next few transactions. HODL or spend? The choice is yours.",
	},
	{
		Amount:  99999,
		Title:   "The Precision Sniper",
		Message: "So close to 100k, yet so far. This number is hauntingly beautiful. You are the chosen one of the 'Almost' club.",
	},
	{
		Amount:  88888,
		Title:   "The \"Faat\" (Prosperity) King",
		Message: "Maximum Feng Shui achieved! This is actually worth more than 100k in spiritual luck. Go buy a lottery ticket immediately.",
	},
	{
		Amount:  77777,
		Title:   "The Jackpot",
		Message: "77777. You didn't win the biggest prize, but you definitely have the coolest number. It looks like a slot machine glitch in your favor.",
	},
	{
		Amount:  66666,
		Title:   "The Smooth Operator",
		Message: "Loc Loc Loc Loc Loc! Everything runs smooth for you this year. Just don't spend it all on one bubble tea.",
	},
	{
		Amount:  60000,
		Title:   "The Inflation Adjustment",
		Message: "It's honest work. Enough for a grab bike ride and a banh mi. Keeps the ecosystem balanced.",
	},
	{
		Amount:  50000,
		Title:   "The Community Airdrop",
		Message: "Congratulations! You successfully participated in the testnet. It's not a lot, but it's better than getting rug-pulled. Emotional support money.",
	},
}

// Resolve returns the exact-match tier for amount, or the fallback tier
// when the amount is not in the table.
func Resolve(amount int64) Tier {
	for _, t := range rewardTiers {
		if t.Amount == amount {
			return t
		}
	}
	return Tier{
		Amount:  amount,
		Title:   "Lucky Winner",
		Message: "Success! You've claimed your lucky money.",
	}
}
