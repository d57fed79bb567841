package cli

import (
	"github.com/adilzhanb/zhospar/internal/reminder"
	"github.com/adilzhanb/zhospar/internal/repository"
	"github.com/adilzhanb/zhospar/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Tasks     service.TaskService
	Progress  service.ProgressService
	Plans     service.PlanService
	Profiles  repository.ProfileRepo
	Scheduler *reminder.Scheduler
}

// NewRootCmd creates the top-level "zhospar" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "zhospar",
		Short: "Five-year plan companion bot",
	}

	root.AddCommand(
		newServeCmd(app),
		newPlanCmd(app),
		newTasksCmd(app),
		newDoneCmd(app),
		newProgressCmd(app),
		newWeekCmd(app),
		newUsersCmd(app),
		newRemindCmd(app),
	)

	return root
}
