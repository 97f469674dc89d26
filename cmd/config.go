package cmd

import "time"

// Config carries all runtime settings, sourced from the environment.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	VNPayTmnCode    string
	VNPayHashSecret string
	VNPayPayURL     string
	VNPayReturnURL  string

	RedisAddr       string
	CallbackLockTTL time.Duration

	PaymentMaxAge          time.Duration
	PaymentExpiryBatchSize int
}
