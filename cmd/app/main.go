package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"storefront/cmd"
	httpadapter "storefront/internal/adapters/in/http"
	"storefront/internal/adapters/out/postgres/cartrepo"
	"storefront/internal/adapters/out/postgres/inventoryrepo"
	"storefront/internal/adapters/out/postgres/orderrepo"
	redisadapter "storefront/internal/adapters/out/redis"
	"storefront/internal/adapters/out/vnpay"
	"storefront/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	goredis "github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	gateway, err := vnpay.NewGateway(vnpay.Config{
		TmnCode:    configs.VNPayTmnCode,
		HashSecret: configs.VNPayHashSecret,
		PayURL:     configs.VNPayPayURL,
		ReturnURL:  configs.VNPayReturnURL,
	})
	if err != nil {
		log.Fatalf("Invalid payment gateway configuration: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, gateway)

	jobManager := jobs.NewJobManager(
		app.CreateExpireStalePaymentsCommandHandler(),
		configs.PaymentMaxAge,
		configs.PaymentExpiryBatchSize,
		logger,
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	server := httpadapter.NewServer(
		httpadapter.Handlers{
			CheckoutOnline:      app.CreateCheckoutOnlineCommandHandler(),
			CheckoutCOD:         app.CreateCheckoutCODCommandHandler(),
			InitiatePayment:     app.CreateInitiatePaymentCommandHandler(),
			ConfirmSuccess:      app.CreateConfirmPaymentSuccessCommandHandler(),
			ConfirmFailure:      app.CreateConfirmPaymentFailureCommandHandler(),
			AcceptOrder:         app.CreateAcceptOrderCommandHandler(),
			DeliverOrder:        app.CreateDeliverOrderCommandHandler(),
			ConfirmCODDelivered: app.CreateConfirmCODDeliveredCommandHandler(),
			SetOrderStatus:      app.CreateSetOrderStatusCommandHandler(),
			GetOrder:            app.CreateGetOrderQueryHandler(),
			GetOrderByNumber:    app.CreateGetOrderByNumberQueryHandler(),
			ListOrders:          app.CreateListOrdersQueryHandler(),
			GetOrderCounts:      app.CreateGetOrderCountsQueryHandler(),
			GetShipperStats:     app.CreateGetShipperStatsQueryHandler(),
		},
		gateway,
		newCallbackGuard(configs),
		logger,
	)

	e := httpadapter.NewRouter(server)
	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)))
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:               envOr("HTTP_PORT", "8080"),
		DBHost:                 os.Getenv("DB_HOST"),
		DBPort:                 os.Getenv("DB_PORT"),
		DBUser:                 os.Getenv("DB_USER"),
		DBPassword:             os.Getenv("DB_PASSWORD"),
		DBName:                 os.Getenv("DB_NAME"),
		DBSslMode:              envOr("DB_SSLMODE", "disable"),
		VNPayTmnCode:           os.Getenv("VNPAY_TMN_CODE"),
		VNPayHashSecret:        os.Getenv("VNPAY_HASH_SECRET"),
		VNPayPayURL:            os.Getenv("VNPAY_PAY_URL"),
		VNPayReturnURL:         os.Getenv("VNPAY_RETURN_URL"),
		RedisAddr:              os.Getenv("REDIS_ADDR"),
		CallbackLockTTL:        envDuration("CALLBACK_LOCK_TTL", 10*time.Minute),
		PaymentMaxAge:          envDuration("PAYMENT_MAX_AGE", 30*time.Minute),
		PaymentExpiryBatchSize: envInt("PAYMENT_EXPIRY_BATCH_SIZE", 100),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		log.Fatalf("Invalid duration for %s: %v", key, err)
	}
	return parsed
}

func envInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %v", key, err)
	}
	return parsed
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&inventoryrepo.ProductDTO{},
		&cartrepo.CartItemDTO{},
	); err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return gormDB
}

// newCallbackGuard builds the redis-backed callback dedupe lock. Redis is
// optional; without it the store-level payment claim still guarantees
// exactly-once settlement.
func newCallbackGuard(configs cmd.Config) httpadapter.CallbackGuard {
	if configs.RedisAddr == "" {
		return nil
	}
	rdb := goredis.NewClient(&goredis.Options{Addr: configs.RedisAddr})
	return redisadapter.NewCallbackGuard(rdb, configs.CallbackLockTTL)
}
