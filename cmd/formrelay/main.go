package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/optimode/formrelay"
	"github.com/optimode/formrelay/internal"
	"github.com/optimode/formrelay/internal/api"
	"github.com/optimode/formrelay/internal/config"
	"github.com/optimode/formrelay/internal/mailer"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := internal.NewLogger(os.Stdout, cfg.Server.Env, cfg.Server.LogLevel)

	filter := formrelay.New()
	if cfg.Filter.VerifyDNS {
		filter = filter.WithDNS(formrelay.DNSOptions{
			Timeout: time.Duration(cfg.Filter.DNSTimeoutSeconds) * time.Second,
		})
		log.Info("DNS verification enabled")
	}

	var sender mailer.Sender
	if cfg.SMTP.Host != "" {
		sender = mailer.NewSMTPSender(mailer.SMTPConfig{
			Host:       cfg.SMTP.Host,
			Port:       cfg.SMTP.Port,
			Username:   cfg.SMTP.Username,
			Password:   cfg.SMTP.Password,
			HeloDomain: cfg.SMTP.HeloDomain,
		})
	} else {
		log.Warn("no SMTP host configured, mail will be logged instead of sent")
		sender = &mailer.LogSender{Log: log}
	}

	handlers := api.NewHandlers(log, filter, sender, cfg.Mail, cfg.Filter.ExposeReason)
	router := api.NewRouter(handlers, log, api.RouterConfig{
		AllowedOrigins:    cfg.Server.AllowedOrigins,
		RequestsPerMinute: cfg.Limits.RequestsPerMinute,
		Burst:             cfg.Limits.Burst,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second, // DNS verification can be slow
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("server listening", slog.String("addr", addr), slog.String("env", cfg.Server.Env))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", slog.Any("error", err))
	}
}
