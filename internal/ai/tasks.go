package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/adilzhanb/zhospar/internal/domain"
)

// TaskGenerator produces the daily task descriptions for a plan day.
// Failures are recovered locally: a generation error or timeout yields
// language-appropriate filler tasks, never an error to the caller.
type TaskGenerator interface {
	DailyTasks(ctx context.Context, plan *domain.Plan, dayIndex int) []string
}

type taskGenerator struct {
	client Client
}

// NewTaskGenerator creates a TaskGenerator backed by the given model client.
func NewTaskGenerator(client Client) TaskGenerator {
	return &taskGenerator{client: client}
}

func (g *taskGenerator) DailyTasks(ctx context.Context, plan *domain.Plan, dayIndex int) []string {
	lang := plan.Language
	prompt := dailyTasksPrompt(plan, dayIndex)

	resp, err := g.client.Generate(ctx, GenerateRequest{
		Task:       TaskDailyTasks,
		UserPrompt: prompt,
	})
	if err != nil {
		return FallbackTasks(lang)
	}

	tasks := ParseTaskList(resp.Text)
	if len(tasks) == 0 {
		return FallbackTasks(lang)
	}
	return tasks
}

func dailyTasksPrompt(plan *domain.Plan, dayIndex int) string {
	year := domain.PlanYear(dayIndex)
	focus := fmt.Sprintf("Year %d", year)
	if y := plan.YearFor(dayIndex); y != nil && y.Title != "" {
		focus = y.Title
	}

	if plan.Language == domain.LangKazakh {
		return fmt.Sprintf(
			"%d жыл, %d күн.\nБағыт: %s\n%d практикалық тапсырма жаса (қысқа, нақты, орындалатын).\nТек тапсырмалар тізімін жаз, түсініктемесіз.",
			year, dayIndex, focus, domain.DailyTaskCount,
		)
	}
	return fmt.Sprintf(
		"Год %d, день %d.\nФокус: %s\nСоздай %d практические задачи (краткие, конкретные, выполнимые).\nНапиши только список задач, без объяснений.",
		year, dayIndex, focus, domain.DailyTaskCount,
	)
}

// ParseTaskList extracts task descriptions from a model response, stripping
// numbering and bullet markers. Lines shorter than a minimum length are
// discarded as noise.
func ParseTaskList(text string) []string {
	var tasks []string
	for _, line := range strings.Split(strings.TrimSpace(text), "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "0123456789.-)•* \t")
		if len([]rune(line)) > 5 {
			tasks = append(tasks, line)
		}
	}
	return tasks
}

// FallbackTasks returns the generic filler tasks used when generation fails
// or returns fewer descriptions than needed.
func FallbackTasks(lang domain.Language) []string {
	if lang == domain.LangKazakh {
		return []string{
			"Күнделікті тапсырманы орындау",
			"Білімді тереңдету",
			"Практикалық жаттығу",
			"Прогресті талдау",
		}
	}
	return []string{
		"Выполнить ежедневное задание",
		"Углубить знания",
		"Практическое упражнение",
		"Анализ прогресса",
	}
}
