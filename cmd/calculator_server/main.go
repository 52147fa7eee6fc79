package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"utility-calculator/internal/api"
	"utility-calculator/internal/calculator"
	"utility-calculator/internal/config"
	"utility-calculator/internal/db"
	"utility-calculator/internal/errlog"
	"utility-calculator/internal/grpc"
	"utility-calculator/internal/logger"
)

func main() {
	config.InitConfig(".env")
	logger.Init(config.AppConfig.LogFilePath)
	defer logger.CloseLogger()

	// Инициализируем базу данных учетных записей
	if err := db.InitDB(config.AppConfig.DBPath); err != nil {
		logger.ERROR.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Каждая ошибка операции пишется и в журнал сессии, и в лог сервера
	registry := calculator.NewRegistry(func(userID int64) *calculator.Session {
		return calculator.NewSession(calculator.WithErrorObserver(func(e errlog.Entry) {
			logger.LogERROR(fmt.Sprintf("user %d: %s: %s (%s)", userID, e.Source, e.Message, e.Detail))
		}))
	})

	server := api.NewServer(registry, config.AppConfig.ChartWidth, config.AppConfig.ChartHeight)
	httpServer := &http.Server{
		Addr:    ":" + config.AppConfig.ServerPort,
		Handler: server.Router(),
	}

	go func() {
		logger.INFO.Println("HTTP server listening on port " + config.AppConfig.ServerPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.ERROR.Fatalf("HTTP server failed: %v", err)
		}
	}()

	// gRPC слушает на порту HTTP + 1
	httpPort, err := strconv.Atoi(config.AppConfig.ServerPort)
	if err != nil {
		logger.ERROR.Fatalf("Invalid SERVER_PORT %q: %v", config.AppConfig.ServerPort, err)
	}
	grpcAddress := fmt.Sprintf(":%d", httpPort+1)

	grpcServer, err := grpc.StartGRPCServer(grpcAddress, grpc.NewCalculatorService(registry))
	if err != nil {
		logger.ERROR.Fatalf("Failed to start gRPC server: %v", err)
	}

	// Ожидаем сигнал для остановки
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.INFO.Println("Shutdown signal received, stopping servers...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		logger.LogERROR("HTTP shutdown failed: " + err.Error())
	}
	grpcServer.GracefulStop()
	logger.INFO.Println("Server stopped")
}
