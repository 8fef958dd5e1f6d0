package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/ariefcatur/go-kiosk-payments.git/internal/config"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/gateway"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/httpx"
	kafkax "github.com/ariefcatur/go-kiosk-payments.git/internal/kafka"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/logging"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/payments"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/presence"
	"github.com/ariefcatur/go-kiosk-payments.git/internal/redisx"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logging.MustNewLogger(cfg.ServiceName, cfg.Env)
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis (presence store)
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Kafka producers
	pOrders := kafkax.NewProducer(cfg.KafkaBrokers, payments.TopicOrderCreated, 1024, log)
	pOrders.Start(ctx)
	pPresence := kafkax.NewProducer(cfg.KafkaBrokers, payments.TopicDevicePresence, 1024, log)
	pPresence.Start(ctx)

	// Gateway & service
	gw := gateway.NewMidtrans(cfg.MidtransServerKey, cfg.MidtransClientKey, cfg.MidtransProduction)
	svc := payments.NewService(gw, pOrders, log, cfg.ServiceName)

	// HTTP
	router := httpx.NewRouter()
	ph := &httpx.PaymentsHandler{Payments: svc, Log: log}
	ph.Register(router)
	srv := &http.Server{Addr: cfg.HTTPAddr, Handler: router}

	// Presence monitor, satu watcher per device
	mon := presence.NewMonitor(
		&redisx.PresenceStore{R: rdb},
		pPresence,
		log,
		cfg.ServiceName,
		cfg.PresenceTick,
		cfg.PresenceThreshold,
		cfg.PresenceTimeout,
	)
	watchers := make([]*presence.Watcher, 0, len(cfg.DeviceIDs))
	for _, id := range cfg.DeviceIDs {
		log.Info("watching device", zap.String("device_id", id))
		watchers = append(watchers, mon.Watch(ctx, id))
	}

	go func() {
		log.Info("HTTP listening", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("listen", zap.Error(err))
		}
	}()

	// wait signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down...")

	ctx2, cancel2 := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel2()
	_ = srv.Shutdown(ctx2)

	for _, w := range watchers {
		w.Stop()
	}

	pOrders.Close() // tutup inbox -> flush & close writer
	pPresence.Close()
	cancel() // stop producer loop
	pOrders.WaitClosed()
	pPresence.WaitClosed()
}
