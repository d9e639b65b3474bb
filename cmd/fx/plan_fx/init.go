package plan_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/MOTAHAR124/AI-Trip-Planner/internal/api/controllers"
	"github.com/MOTAHAR124/AI-Trip-Planner/internal/services"
	"github.com/MOTAHAR124/AI-Trip-Planner/pkg/generator"
)

var Module = fx.Provide(
	ProvidePlanService,
	ProvidePlanController)

// ProvidePlanService creates the plan service with its generator dependency.
func ProvidePlanService(gen generator.Generator, logger *zap.Logger) services.PlanServiceInterface {
	return services.NewPlanService(gen, logger)
}

// ProvidePlanController creates the plan controller.
func ProvidePlanController(planService services.PlanServiceInterface, logger *zap.Logger) *controllers.PlanController {
	return controllers.NewPlanController(planService, logger)
}
