package ai

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/google/uuid"
)

// PlanGenerator produces a five-year plan for a user's goal. A failed
// generation call falls back to a deterministic template plan so onboarding
// never dead-ends on the model server.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, name, goal string, style domain.Style) *domain.Plan
}

type planGenerator struct {
	client Client
	now    func() time.Time
}

// NewPlanGenerator creates a PlanGenerator backed by the given model client.
func NewPlanGenerator(client Client) PlanGenerator {
	return &planGenerator{client: client, now: time.Now}
}

func (g *planGenerator) GeneratePlan(ctx context.Context, name, goal string, style domain.Style) *domain.Plan {
	resp, err := g.client.Generate(ctx, GenerateRequest{
		Task:       TaskPlan,
		UserPrompt: planPrompt(name, goal, style.Language),
	})

	var years []domain.YearEntry
	if err == nil {
		years = parsePlanYears(resp.Text, style.Language)
	}
	if len(years) < 5 {
		years = FallbackPlanYears(style.Language, goal)
	}

	now := g.now().UTC()
	return &domain.Plan{
		ID:        uuid.New().String(),
		Goal:      goal,
		Years:     years[:5],
		Language:  style.Language,
		Formality: style.Formality,
		CreatedAt: &now,
	}
}

func planPrompt(name, goal string, lang domain.Language) string {
	if lang == domain.LangKazakh {
		return fmt.Sprintf(`Адам үшін 5 жылдық жеке даму жоспарын жаса:
- Аты: %s
- Мақсаттары: %s

5 жылдың жоспарын жаса. Әр жыл үшін көрсет:
1. Жылдың атауы (қысқа, ынталандырушы)
2. Сипаттама (1-2 сөйлем)
3. 3-4 негізгі кезең

Жауап форматы:
1 ЖЫЛ: [атауы]
[сипаттама]
- [кезең 1]
- [кезең 2]
- [кезең 3]

[барлық 5 жылға осылай]

Жоспар нақты және қол жетімді болуы керек.`, name, goal)
	}
	return fmt.Sprintf(`Создай персональный 5-летний план развития для человека:
- Имя: %s
- Цели: %s

Создай план из 5 лет. Для каждого года укажи:
1. Название года (краткое, мотивирующее)
2. Описание (1-2 предложения)
3. 3-4 ключевых этапа

Формат ответа:
ГОД 1: [название]
[описание]
- [этап 1]
- [этап 2]
- [этап 3]

[и так далее для всех 5 лет]

План должен быть реалистичным и достижимым.`, name, goal)
}

var (
	russianYearMarker = regexp.MustCompile(`(?i)ГОД\s+\d+:`)
	kazakhYearMarker  = regexp.MustCompile(`(?i)\d+\s+ЖЫЛ:`)
)

// parsePlanYears splits a model response into per-year sections on the
// "ГОД N:" / "N ЖЫЛ:" markers the prompt asks for.
func parsePlanYears(text string, lang domain.Language) []domain.YearEntry {
	marker := russianYearMarker
	if lang == domain.LangKazakh {
		marker = kazakhYearMarker
	}

	sections := marker.Split(text, -1)
	if len(sections) < 2 {
		return nil
	}

	var years []domain.YearEntry
	for i, section := range sections[1:] {
		yearNum := i + 1
		if yearNum > 5 {
			break
		}
		lines := strings.Split(strings.TrimSpace(section), "\n")

		title := fmt.Sprintf("Год %d", yearNum)
		if len(lines) > 0 && strings.TrimSpace(lines[0]) != "" {
			title = strings.TrimSpace(lines[0])
		}

		var (
			description strings.Builder
			milestones  []string
		)
		for _, line := range lines[1:] {
			line = strings.TrimSpace(line)
			switch {
			case line == "":
			case strings.HasPrefix(line, "-") || strings.HasPrefix(line, "•") || strings.HasPrefix(line, "*"):
				milestones = append(milestones, strings.TrimLeft(line, "-•* "))
			case len(milestones) == 0:
				if description.Len() > 0 {
					description.WriteString(" ")
				}
				description.WriteString(line)
			}
		}
		if len(milestones) > 4 {
			milestones = milestones[:4]
		}
		if len(milestones) == 0 {
			milestones = []string{
				fmt.Sprintf("Этап 1 года %d", yearNum),
				fmt.Sprintf("Этап 2 года %d", yearNum),
				fmt.Sprintf("Этап 3 года %d", yearNum),
			}
		}

		years = append(years, domain.YearEntry{
			Year:        yearNum,
			Title:       title,
			Description: description.String(),
			Milestones:  milestones,
		})
	}
	return years
}

// FallbackPlanYears returns the deterministic template plan used when the
// model is unavailable. The final year carries the user's stated goal.
func FallbackPlanYears(lang domain.Language, goal string) []domain.YearEntry {
	if goal == "" {
		goal = "Цель"
	}
	if lang == domain.LangKazakh {
		return []domain.YearEntry{
			{Year: 1, Title: "Іргетас", Description: "Негізді қалау", Milestones: []string{"Бастау", "Үйрену", "Практика"}},
			{Year: 2, Title: "Даму", Description: "Дағдыларды дамыту", Milestones: []string{"Тереңдету", "Қолдану", "Жетілдіру"}},
			{Year: 3, Title: "Өсу", Description: "Тәжірибе жинау", Milestones: []string{"Сарапшылық", "Менторлық", "Жоба"}},
			{Year: 4, Title: "Шеберлік", Description: "Мастер болу", Milestones: []string{"Көшбасшылық", "Инновация", "Тану"}},
			{Year: 5, Title: "Мақсат", Description: goal, Milestones: []string{"Жетістік", "Беру", "Жаңа"}},
		}
	}
	return []domain.YearEntry{
		{Year: 1, Title: "Фундамент", Description: "Построение основы", Milestones: []string{"Начало", "Обучение", "Практика"}},
		{Year: 2, Title: "Развитие", Description: "Развитие навыков", Milestones: []string{"Углубление", "Применение", "Совершенствование"}},
		{Year: 3, Title: "Рост", Description: "Набор опыта", Milestones: []string{"Экспертиза", "Менторство", "Проекты"}},
		{Year: 4, Title: "Мастерство", Description: "Достижение мастерства", Milestones: []string{"Лидерство", "Инновации", "Признание"}},
		{Year: 5, Title: "Цель", Description: goal, Milestones: []string{"Достижение", "Передача опыта", "Новые горизонты"}},
	}
}
