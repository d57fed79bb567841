package ai

import (
	"context"
	"testing"
	"time"

	"github.com/adilzhanb/zhospar/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const russianPlanResponse = `ГОД 1: Старт
Первый год посвящен основам.
- Изучить базу
- Найти ментора
ГОД 2: Разгон
Углубление практики.
- Первый проект
ГОД 3: Опыт
Работа над сложными задачами.
- Большой проект
ГОД 4: Мастерство
Экспертный уровень.
- Выступление
ГОД 5: Вершина
Достижение цели.
- Итог
`

func TestParsePlanYears_Russian(t *testing.T) {
	years := parsePlanYears(russianPlanResponse, domain.LangRussian)

	require.Len(t, years, 5)
	assert.Equal(t, 1, years[0].Year)
	assert.Equal(t, "Старт", years[0].Title)
	assert.Equal(t, "Первый год посвящен основам.", years[0].Description)
	assert.Equal(t, []string{"Изучить базу", "Найти ментора"}, years[0].Milestones)
	assert.Equal(t, "Вершина", years[4].Title)
}

func TestParsePlanYears_Kazakh(t *testing.T) {
	text := `1 ЖЫЛ: Бастау
Негізді қалау.
- Бірінші кезең
2 ЖЫЛ: Даму
Дағдыларды дамыту.
- Екінші кезең
`
	years := parsePlanYears(text, domain.LangKazakh)
	require.Len(t, years, 2)
	assert.Equal(t, "Бастау", years[0].Title)
	assert.Equal(t, "Даму", years[1].Title)
}

func TestParsePlanYears_NoMarkers(t *testing.T) {
	assert.Nil(t, parsePlanYears("просто текст без структуры", domain.LangRussian))
}

func TestParsePlanYears_FillsMissingMilestones(t *testing.T) {
	text := "ГОД 1: Старт\nОписание без этапов."
	years := parsePlanYears(text, domain.LangRussian)
	require.Len(t, years, 1)
	assert.Len(t, years[0].Milestones, 3)
}

func TestGeneratePlan_UsesModelResponse(t *testing.T) {
	client := &stubClient{text: russianPlanResponse}
	gen := &planGenerator{
		client: client,
		now:    func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) },
	}

	style := domain.Style{Language: domain.LangRussian, Formality: domain.FormalityCasual}
	plan := gen.GeneratePlan(context.Background(), "Айдар", "стать инженером", style)

	require.NotNil(t, plan)
	assert.NotEmpty(t, plan.ID)
	assert.Equal(t, "стать инженером", plan.Goal)
	require.Len(t, plan.Years, 5)
	assert.Equal(t, "Старт", plan.Years[0].Title)
	require.NotNil(t, plan.CreatedAt)
	assert.Equal(t, 2025, plan.CreatedAt.Year())
	assert.Equal(t, TaskPlan, client.lastReq.Task)
	assert.Contains(t, client.lastReq.UserPrompt, "Айдар")
}

func TestGeneratePlan_FallbackOnError(t *testing.T) {
	client := &stubClient{err: ErrUnavailable}
	gen := NewPlanGenerator(client)

	style := domain.Style{Language: domain.LangKazakh, Formality: domain.FormalityFormal}
	plan := gen.GeneratePlan(context.Background(), "Айгерим", "дәрігер болу", style)

	require.NotNil(t, plan)
	require.Len(t, plan.Years, 5)
	assert.Equal(t, "Іргетас", plan.Years[0].Title)
	assert.Equal(t, "дәрігер болу", plan.Years[4].Description)
}

func TestGeneratePlan_FallbackOnShortResponse(t *testing.T) {
	// Fewer than five parsed years means the template wins.
	client := &stubClient{text: "ГОД 1: Старт\nОписание.\n- Этап"}
	gen := NewPlanGenerator(client)

	style := domain.Style{Language: domain.LangRussian}
	plan := gen.GeneratePlan(context.Background(), "A", "цель", style)

	require.Len(t, plan.Years, 5)
	assert.Equal(t, "Фундамент", plan.Years[0].Title)
}

func TestFallbackPlanYears_EmptyGoal(t *testing.T) {
	years := FallbackPlanYears(domain.LangRussian, "")
	require.Len(t, years, 5)
	assert.Equal(t, "Цель", years[4].Description)
}
