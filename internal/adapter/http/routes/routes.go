package routes

import (
	"context"
	"log"
	"strconv"

	_ "descomplaca/docs" // This will be auto-generated
	"descomplaca/internal/adapter/http/handlers"
	repository2 "descomplaca/internal/adapter/persistence/repository"
	"descomplaca/internal/config"
	"descomplaca/internal/infrastructure/database"
	"descomplaca/internal/infrastructure/logger"
	"descomplaca/internal/infrastructure/messaging"
	"descomplaca/internal/infrastructure/payments"
	"descomplaca/internal/usecase"
	"descomplaca/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer zlog.Sync()
	sugar := zlog.Sugar()

	setMiddlewares(sugar)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg, sugar)

	if err := router.Run(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
		sugar.Fatalf("Failed to startup the application: %v", err)
	}
}

func getRoutes(cfg *config.Config, sugar *zap.SugaredLogger) {
	ddb, err := database.NewDynamoDBClient(context.Background())
	if err != nil {
		sugar.Fatalf("Failed to connect to DynamoDB: %v", err)
	}

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	proposalRepo := repository2.NewProposalDynamoRepository(ddb)
	paymentRepo := repository2.NewPaymentDynamoRepository(ddb)
	messageRepo := repository2.NewMessageDynamoRepository(ddb)
	reviewRepo := repository2.NewReviewDynamoRepository(ddb)

	broker := messaging.NewBroker()

	var paymentGateway interfaces.IPaymentGateway
	asaasGateway, err := payments.NewAsaasGateway(cfg.Asaas.APIURL, cfg.Asaas.APIKey, sugar)
	if err != nil {
		sugar.Warnf("Asaas gateway not configured: %v", err)
	} else {
		paymentGateway = asaasGateway
	}

	lifecycleUseCase := usecase.NewOrderLifecycleUseCase(orderRepo, proposalRepo, sugar)
	checkoutUseCase := usecase.NewCheckoutUseCase(lifecycleUseCase, proposalRepo, orderRepo, paymentRepo, paymentGateway, cfg.Asaas.DispatcherWallet, sugar)
	chatUseCase := usecase.NewChatUseCase(orderRepo, messageRepo, broker, sugar)
	reviewUseCase := usecase.NewReviewUseCase(orderRepo, proposalRepo, reviewRepo, sugar)

	orderHandler := handlers.NewOrderHandler(lifecycleUseCase)
	proposalHandler := handlers.NewProposalHandler(lifecycleUseCase)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, sugar)
	chatHandler := handlers.NewChatHandler(chatUseCase)
	reviewHandler := handlers.NewReviewHandler(reviewUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addMarketplaceRoutes(v1, orderHandler, proposalHandler, checkoutHandler, chatHandler, reviewHandler)
}

func setMiddlewares(sugar *zap.SugaredLogger) {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		sugar.Errorf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
