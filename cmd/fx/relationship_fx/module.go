package relationship_fx

import (
	"go.uber.org/fx"

	"lemmequit/internal/api/controllers"
	"lemmequit/internal/repositories"
	"lemmequit/internal/services"
)

var Module = fx.Provide(
	provideRelationshipService, provideRelationshipController)

func provideRelationshipService(userRepo repositories.UserRepository) services.RelationshipServiceInterface {
	return services.NewRelationshipService(userRepo)
}

func provideRelationshipController(relationshipService services.RelationshipServiceInterface) *controllers.RelationshipController {
	return controllers.NewRelationshipController(relationshipService)
}
