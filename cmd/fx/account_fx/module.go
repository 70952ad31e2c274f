package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lemmequit/internal/api/controllers"
	"lemmequit/internal/repositories"
	"lemmequit/internal/services"
	mem "lemmequit/pkg/memcache"
)

var Module = fx.Provide(
	provideUserRepo, provideAccountService, provideAccountController)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(
	userRepo repositories.UserRepository,
	mailService services.MailServiceInterface,
	resetTokens mem.ResetTokenStore,
	logger *zap.Logger,
) services.AccountServiceInterface {
	return services.NewAccountService(userRepo, mailService, resetTokens, logger)
}

func provideAccountController(accountService services.AccountServiceInterface) *controllers.AccountController {
	return controllers.NewAccountController(accountService)
}
