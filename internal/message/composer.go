package message

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/adilzhanb/zhospar/internal/domain"
)

// Composer renders reminder messages from the catalog. Variant choice goes
// through an injected rand source so tests can seed it.
type Composer struct {
	catalog *Catalog

	mu  sync.Mutex
	rng *rand.Rand
}

// NewComposer creates a Composer over the given catalog and rand source.
// A nil rng gets a time-seeded one.
func NewComposer(catalog *Catalog, rng *rand.Rand) *Composer {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return &Composer{catalog: catalog, rng: rng}
}

func (c *Composer) pick(variants []string) string {
	if len(variants) == 0 {
		return ""
	}
	c.mu.Lock()
	i := c.rng.Intn(len(variants))
	c.mu.Unlock()
	return variants[i]
}

func fill(tmpl, name string, streak, completed, total int) string {
	r := strings.NewReplacer(
		"{name}", name,
		"{streak}", strconv.Itoa(streak),
		"{completed}", strconv.Itoa(completed),
		"{total}", strconv.Itoa(total),
	)
	return r.Replace(tmpl)
}

func register(f domain.Formality) string {
	if f == domain.FormalityFormal {
		return "formal"
	}
	return "casual"
}

// Morning composes the 07:00 reminder, including streak info when the
// streak is nonzero.
func (c *Composer) Morning(name string, style domain.Style, streak int) string {
	set := c.catalog.forStyle(style).Morning[register(style.Formality)]

	greeting := fill(c.pick(set.Greetings), name, streak, 0, 0)
	body := c.pick(set.Messages)
	ending := set.Ending

	streakText := ""
	if streak > 0 {
		streakText = "\n" + fill(set.Streak, name, streak, 0, 0)
		if style.EmojiUsage == domain.EmojiHigh {
			streakText = "\n🔥 " + fill(set.Streak, name, streak, 0, 0)
		}
	}

	if style.EmojiUsage == domain.EmojiHigh {
		greeting = "☀️ " + greeting
		ending = "📋 " + ending
	}

	return greeting + "\n" + body + streakText + "\n\n" + ending
}

// Afternoon composes the 14:00 check-in from today's completion counts.
func (c *Composer) Afternoon(name string, style domain.Style, completed, total int) string {
	set := c.catalog.forStyle(style).Afternoon[register(style.Formality)]
	rate := completionRate(completed, total)

	greeting := fill(set.Greeting, name, 0, completed, total)
	feedback := fill(bandFor(set.Bands, rate).Feedback, name, 0, completed, total)
	ending := fill(set.Ending, name, 0, completed, total)

	if style.EmojiUsage == domain.EmojiHigh {
		switch {
		case rate >= 75:
			greeting = "🌟 " + greeting
		case rate >= 50:
			greeting = "👍 " + greeting
		default:
			greeting = "⏰ " + greeting
		}
		ending = "✅ " + ending
	}

	return greeting + "\n" + feedback + "\n\n" + ending
}

// Evening composes the 18:00 summary from today's completion counts.
func (c *Composer) Evening(name string, style domain.Style, completed, total int) string {
	set := c.catalog.forStyle(style).Evening[register(style.Formality)]
	rate := completionRate(completed, total)

	greeting := fill(set.Greeting, name, 0, completed, total)
	band := bandFor(set.Bands, rate)
	feedback := fill(band.Feedback, name, 0, completed, total)
	encouragement := fill(band.Encouragement, name, 0, completed, total)
	ending := set.Ending

	if style.EmojiUsage == domain.EmojiHigh {
		switch {
		case rate >= 100:
			greeting = "🌙 " + greeting
			ending = "💪 " + ending
		case rate >= 50:
			greeting = "🌙 " + greeting
		default:
			greeting = "🌆 " + greeting
		}
	}

	return greeting + "\n" + feedback + " " + encouragement + "\n\n" + ending
}

// Milestone composes the congratulation for a streak milestone. Returns ""
// when the streak is not a milestone.
func (c *Composer) Milestone(name string, style domain.Style, streak int) string {
	if !domain.IsStreakMilestone(streak) {
		return ""
	}
	tmpl := c.catalog.forStyle(style).Milestone[register(style.Formality)]
	msg := fill(tmpl, name, streak, 0, 0)
	if style.EmojiUsage == domain.EmojiHigh {
		msg += " 🔥💪✨"
	}
	return msg
}

func completionRate(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return completed * 100 / total
}

// bandFor returns the first band whose threshold the rate meets. Bands are
// ordered highest threshold first in the catalog.
func bandFor(bands []Band, rate int) Band {
	for _, b := range bands {
		if rate >= b.Min {
			return b
		}
	}
	if len(bands) > 0 {
		return bands[len(bands)-1]
	}
	return Band{}
}
