package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	HTTPAddr     string
	RedisAddr    string
	KafkaBrokers []string
	ServiceName  string
	Env          string

	MidtransServerKey  string
	MidtransClientKey  string
	MidtransProduction bool

	// Presence monitoring. Threshold sebaiknya >= interval report device,
	// kalau tidak device bakal kelihatan flapping offline di antara report.
	DeviceIDs         []string
	PresenceTick      time.Duration
	PresenceThreshold time.Duration
	PresenceTimeout   time.Duration
}

func Load() Config {
	return Config{
		HTTPAddr:     getenv("HTTP_ADDR", ":3000"),
		RedisAddr:    getenv("REDIS_ADDR", "redis:6379"),
		KafkaBrokers: splitCSV(getenv("KAFKA_BROKERS", "kafka:9092")),
		ServiceName:  getenv("SERVICE_NAME", "kiosk-api"),
		Env:          getenv("APP_ENV", "development"),

		MidtransServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransClientKey:  os.Getenv("MIDTRANS_CLIENT_KEY"),
		MidtransProduction: getbool("MIDTRANS_PRODUCTION", false),

		DeviceIDs:         splitCSV(getenv("DEVICE_IDS", "Device1")),
		PresenceTick:      getdur("PRESENCE_TICK", 10*time.Second),
		PresenceThreshold: getdur("PRESENCE_THRESHOLD", 7*time.Second),
		PresenceTimeout:   getdur("PRESENCE_TIMEOUT", 3*time.Second),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getbool(k string, def bool) bool {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v == "1" || strings.EqualFold(v, "true")
}

func getdur(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
