package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/leopardquict/isw-billpay/config"
	"github.com/leopardquict/isw-billpay/constant"
	"github.com/leopardquict/isw-billpay/handler"
	"github.com/leopardquict/isw-billpay/store"
	"github.com/robfig/cron/v3"
)

func main() {

	cfg, err := config.Load("config.yaml")

	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		return
	}

	file, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0666)

	if err != nil {
		fmt.Println("Error creating log file")
		return
	}

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of the major browsers
	})

	ll := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{}))

	processed := store.NewProcessedLog()
	core := handler.NewCoreClient(ll, cfg.Core)

	h := handler.NewHandler(ll, core, core, processed)

	r := chi.NewRouter()

	c := cron.New()

	c.AddFunc("10 0 * * *", func() {
		removed := processed.Purge(7 * 24 * time.Hour)
		ll.Info("Purged processed payment log", "removed", removed)
	})

	c.Start()

	r.Use(middleware.RequestID)
	r.Use(corsMiddleware.Handler)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.NoCache)
	r.Use(middleware.Timeout(60 * time.Second))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		ll.Error("404 page not found")
		w.Write([]byte("404 page not found"))
	})

	r.Post(constant.BillsPaymentPath, h.BillsRequest)

	server := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: r,
	}

	// Use a goroutine to run the server
	go func() {
		fmt.Printf("Server is listening on %s\n", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Printf("Error: %v\n", err)
		}
	}()

	// Set up a signal channel to listen for SIGINT and SIGTERM
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	// Block until a signal is received

	<-signalChan
	fmt.Println("Received interrupt signal. Shutting down...")

	// Create a context with a timeout to allow for a graceful shutdown
	timeoutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Attempt to gracefully shut down the server
	if err := server.Shutdown(timeoutCtx); err != nil {
		fmt.Printf("Error during server shutdown: %v\n", err)
	}

	fmt.Println("Server gracefully shut down.")

}
