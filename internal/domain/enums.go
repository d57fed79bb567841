package domain

type Language string

const (
	LangRussian Language = "russian"
	LangKazakh  Language = "kazakh"
)

type Formality string

const (
	FormalityFormal Formality = "formal"
	FormalityCasual Formality = "casual"
)

type EmojiUsage string

const (
	EmojiLow  EmojiUsage = "low"
	EmojiHigh EmojiUsage = "high"
)

type ReminderKind string

const (
	ReminderMorning   ReminderKind = "morning"
	ReminderAfternoon ReminderKind = "afternoon"
	ReminderEvening   ReminderKind = "evening"
	ReminderMilestone ReminderKind = "milestone"
)

// ValidLanguages is the canonical set of accepted language strings.
var ValidLanguages = map[string]bool{
	"russian": true, "kazakh": true,
}
