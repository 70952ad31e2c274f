package advice_fx

import (
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lemmequit/internal/api/controllers"
	"lemmequit/internal/repositories"
	"lemmequit/internal/services"
	"lemmequit/pkg/utils"
)

var Module = fx.Provide(
	provideAdviceLogRepo,
	provideAdviceProvider,
	provideAdviceService,
	provideAdviceController)

// adviceConfig holds provider selection read from the environment.
type adviceConfig struct {
	Provider string
	APIKey   string
	Model    string
}

func provideAdviceLogRepo(db *gorm.DB) repositories.AdviceLogRepository {
	return repositories.NewAdviceLogRepository(db)
}

func provideAdviceProvider() (utils.AdviceProviderInterface, error) {
	cfg := getAdviceConfig()

	log.Printf("Initializing %s advice provider with model: %s", cfg.Provider, cfg.Model)

	return utils.NewAdviceProvider(cfg.Provider, cfg.APIKey, cfg.Model)
}

func provideAdviceService(
	userRepo repositories.UserRepository,
	adviceLogRepo repositories.AdviceLogRepository,
	provider utils.AdviceProviderInterface,
	logger *zap.Logger,
) services.AdviceServiceInterface {
	return services.NewAdviceService(userRepo, adviceLogRepo, provider, logger)
}

func provideAdviceController(adviceService services.AdviceServiceInterface) *controllers.AdviceController {
	return controllers.NewAdviceController(adviceService)
}

func getAdviceConfig() adviceConfig {
	provider := getEnvWithDefault("ADVICE_PROVIDER", "openai")

	var apiKey, model string

	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-3.5-turbo")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using the OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using the Gemini provider")
		}
	}

	return adviceConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
