package domain

import "time"

// UserProfile is the per-user record owned by the profile store. The plan,
// daily tasks and completions hang off it by user ID.
type UserProfile struct {
	ID               string
	Name             string
	Language         Language
	Formality        Formality
	EmojiUsage       EmojiUsage
	RemindersEnabled bool
	BestStreak       int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Style bundles the communication-style tags used by the message catalog.
type Style struct {
	Language   Language
	Formality  Formality
	EmojiUsage EmojiUsage
}

// Style returns the profile's communication style with defaults applied.
func (p *UserProfile) Style() Style {
	s := Style{Language: p.Language, Formality: p.Formality, EmojiUsage: p.EmojiUsage}
	if s.Language == "" {
		s.Language = LangRussian
	}
	if s.Formality == "" {
		s.Formality = FormalityCasual
	}
	if s.EmojiUsage == "" {
		s.EmojiUsage = EmojiLow
	}
	return s
}

// DisplayName returns the best name for addressing the user.
func (p *UserProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return "User"
}
