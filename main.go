package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"pricewise/pkg/catalog"
	"pricewise/pkg/insight"
	"pricewise/pkg/logger"
	"pricewise/pkg/synth"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func main() {
	_ = godotenv.Load() // load .env if it exists

	port := getenv("PORT", "8001")
	ollamaURL := getenv("OLLAMA_URL", "http://localhost:11434/api/generate")
	model := getenv("OLLAMA_MODEL", "llama2")

	a := &app{
		catalog:  catalog.New(),
		synth:    synth.NewDefault(),
		insights: insight.NewService(insight.NewOllama(ollamaURL, model)),
	}

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := newRouter(a)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           r,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("PriceWise API listening on :%s (insights via %s)", port, ollamaURL)
		log.Printf("API docs: http://localhost:%s/docs", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server ListenAndServe: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server Shutdown: %v", err)
	}
	logger.Flush()
	log.Println("graceful shutdown complete")
}
