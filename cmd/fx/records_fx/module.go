package records_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lemmequit/internal/api/controllers"
	"lemmequit/internal/repositories"
	"lemmequit/internal/services"
)

var Module = fx.Provide(
	provideNoteRepo,
	provideAppointmentRepo,
	provideRecordService,
	provideNotesController,
	provideAppointmentsController)

func provideNoteRepo(db *gorm.DB) repositories.NoteRepository {
	return repositories.NewNoteRepository(db)
}

func provideAppointmentRepo(db *gorm.DB) repositories.AppointmentRepository {
	return repositories.NewAppointmentRepository(db)
}

func provideRecordService(
	noteRepo repositories.NoteRepository,
	appointmentRepo repositories.AppointmentRepository,
	logger *zap.Logger,
) services.RecordServiceInterface {
	return services.NewRecordService(noteRepo, appointmentRepo, logger)
}

func provideNotesController(recordService services.RecordServiceInterface) *controllers.NotesController {
	return controllers.NewNotesController(recordService)
}

func provideAppointmentsController(
	recordService services.RecordServiceInterface,
	accountService services.AccountServiceInterface,
) *controllers.AppointmentsController {
	return controllers.NewAppointmentsController(recordService, accountService)
}
