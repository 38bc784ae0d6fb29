package routes

import (
	"log"
	"strconv"

	_ "eventpay/docs" // This will be auto-generated
	"eventpay/internal/adapter/http/handlers"
	repository2 "eventpay/internal/adapter/persistence/repository"
	"eventpay/internal/infrastructure/database"
	"eventpay/internal/infrastructure/notify"
	"eventpay/internal/infrastructure/payments"
	"eventpay/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()
	pg := database.ConnectPostgres()

	gatewayConfigRepo := repository2.NewGatewayConfigDynamoRepository(ddb)
	transactionRepo := repository2.NewTransactionDynamoRepository(ddb)
	profileStore := repository2.NewMerchantProfileGormRepository(pg)
	credentialStore := repository2.NewCredentialGormRepository(pg)
	registrantStore := repository2.NewRegistrantGormRepository(pg)

	processor := payments.NewAuthorizeNetClient()
	ledger := notify.NewWebhookLedgerNotifier()

	gatewayConfigUseCase := usecase.NewGatewayConfigUseCase(profileStore, gatewayConfigRepo)
	credentialResolver := usecase.NewCredentialResolver(credentialStore)
	paymentUseCase := usecase.NewPaymentUseCase(credentialResolver, processor, transactionRepo, registrantStore, ledger)

	gatewayConfigHandler := handlers.NewGatewayConfigHandler(gatewayConfigUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addGatewayRoutes(v1, gatewayConfigHandler)
	addPaymentRoutes(v1, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
