package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/postgres/cartrepo"
	"fooddelivery/internal/adapters/out/postgres/driverrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/voucherrepo"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	_ "github.com/lib/pq"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectDB(configs)
	migrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	jobManager := jobs.NewJobManager(app.CreateExpireVouchersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:             goDotEnvVariable("HTTP_PORT"),
		DBHost:               goDotEnvVariable("DB_HOST"),
		DBPort:               goDotEnvVariable("DB_PORT"),
		DBUser:               goDotEnvVariable("DB_USER"),
		DBPassword:           goDotEnvVariable("DB_PASSWORD"),
		DBName:               goDotEnvVariable("DB_NAME"),
		DBSslMode:            goDotEnvVariable("DB_SSLMODE"),
		KafkaHost:            goDotEnvVariable("KAFKA_HOST"),
		KafkaOrderTopic:      goDotEnvVariable("KAFKA_ORDER_TOPIC"),
		RestaurantServiceURL: goDotEnvVariable("RESTAURANT_SERVICE_URL"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}

	gormDB, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: sqlDB}), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to initialize GORM: %v", err)
	}

	return gormDB
}

func migrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&orderrepo.TrackingDTO{},
		&driverrepo.DriverDTO{},
		&driverrepo.EarningDTO{},
		&voucherrepo.VoucherDTO{},
		&cartrepo.CartDTO{},
		&cartrepo.CartItemDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := http.NewServer(http.ServerParams{
		AddToCart:          app.CreateAddToCartCommandHandler(),
		UpdateCartItem:     app.CreateUpdateCartItemCommandHandler(),
		ClearCart:          app.CreateClearCartCommandHandler(),
		Checkout:           app.CreateCheckoutCommandHandler(),
		ConfirmOrder:       app.CreateConfirmOrderCommandHandler(),
		StartPreparing:     app.CreateStartPreparingCommandHandler(),
		MarkOrderReady:     app.CreateMarkOrderReadyCommandHandler(),
		CancelOrder:        app.CreateCancelOrderCommandHandler(),
		AcceptJob:          app.CreateAcceptJobCommandHandler(),
		DeclineJob:         app.CreateDeclineJobCommandHandler(),
		StartDelivery:      app.CreateStartDeliveryCommandHandler(),
		CompleteDelivery:   app.CreateCompleteDeliveryCommandHandler(),
		UpdateDriverStatus: app.CreateUpdateDriverStatusCommandHandler(),
		Withdraw:           app.CreateWithdrawCommandHandler(),

		GetOrder:          app.CreateGetOrderQueryHandler(),
		GetCustomerOrders: app.CreateGetCustomerOrdersQueryHandler(),
		GetOrderTracking:  app.CreateGetOrderTrackingQueryHandler(),
		GetPendingJobs:    app.CreateGetPendingJobsQueryHandler(),
		GetWallet:         app.CreateGetWalletQueryHandler(),
		GetCart:           app.CreateGetCartQueryHandler(),
		ValidateVoucher:   app.CreateValidateVoucherQueryHandler(),
	})

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
