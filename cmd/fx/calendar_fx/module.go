package calendar_fx

import (
	"go.uber.org/fx"

	"lemmequit/internal/api/controllers"
	"lemmequit/internal/repositories"
	"lemmequit/internal/services"
)

var Module = fx.Provide(
	provideCalendarService, provideCalendarController)

func provideCalendarService(
	userRepo repositories.UserRepository,
	noteRepo repositories.NoteRepository,
) services.CalendarServiceInterface {
	return services.NewCalendarService(userRepo, noteRepo)
}

func provideCalendarController(
	calendarService services.CalendarServiceInterface,
	recordService services.RecordServiceInterface,
) *controllers.CalendarController {
	return controllers.NewCalendarController(calendarService, recordService)
}
