package franchise

import (
	"database/sql"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"franchises/internal/config"
	"franchises/internal/franchise/controller"
	"franchises/internal/franchise/repository"
	"franchises/internal/franchise/usecase"
)

type Module struct {
	Franchises *controller.FranchiseController
	Branches   *controller.BranchController
	Products   *controller.ProductController
}

// NewModule wires the franchise aggregate. When redisClient is nil the MySQL
// store is used directly.
func NewModule(db *sql.DB, redisClient *redis.Client, cfg config.RedisConfig, logger *zap.Logger) *Module {
	return NewModuleWithRepository(newRepository(db, redisClient, cfg, logger), logger)
}

// NewModuleWithRepository builds the use cases and controllers on top of any
// store implementing the port.
func NewModuleWithRepository(repo usecase.FranchiseRepository, logger *zap.Logger) *Module {
	newID := usecase.IDGenerator(usecase.NewUUID)

	return &Module{
		Franchises: controller.NewFranchiseController(
			usecase.NewCreateFranchiseUseCase(repo, newID, logger),
			usecase.NewGetFranchiseUseCase(repo, logger),
			usecase.NewUpdateFranchiseNameUseCase(repo, logger),
			usecase.NewGetMaxStockByBranchUseCase(repo, logger),
			logger,
		),
		Branches: controller.NewBranchController(
			usecase.NewAddBranchToFranchiseUseCase(repo, newID, logger),
			usecase.NewUpdateBranchNameUseCase(repo, logger),
			logger,
		),
		Products: controller.NewProductController(
			usecase.NewAddProductToBranchUseCase(repo, newID, logger),
			usecase.NewUpdateProductUseCase(repo, logger),
			usecase.NewDeleteProductFromBranchUseCase(repo, logger),
			logger,
		),
	}
}

func newRepository(db *sql.DB, redisClient *redis.Client, cfg config.RedisConfig, logger *zap.Logger) usecase.FranchiseRepository {
	store := repository.NewMySQLRepository(db)
	if redisClient == nil {
		return store
	}
	return repository.NewCachedRepository(store, redisClient, cfg.TTL, logger)
}
