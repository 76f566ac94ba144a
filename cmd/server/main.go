package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Skufu/healthguide/internal/assistant"
	"github.com/Skufu/healthguide/internal/dashboard"
	"github.com/Skufu/healthguide/internal/guidance"
	"github.com/Skufu/healthguide/migrations"
)

type Config struct {
	Port         string
	GinMode      string
	DatabaseURL  string
	EnableDB     bool
	LogLevel     string
	LogFormat    string
	ServiceName  string
	MaxBodyBytes int64
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var port string

	root := &cobra.Command{
		Use:           "healthguide",
		Short:         "Symptom guidance API server",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if port != "" {
				cfg.Port = port
			}
			return serve(cmd.Context(), cfg)
		},
	}
	root.Flags().StringVarP(&port, "port", "p", "", "listen port (overrides PORT)")
	root.AddCommand(newAnalyzeCmd())
	return root
}

func newAnalyzeCmd() *cobra.Command {
	var (
		q   guidance.Query
		age int
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the guidance payload for one symptom as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(q.Symptom) == "" {
				return errors.New("--symptom is required")
			}
			if cmd.Flags().Changed("age") {
				q.Age = &age
			}

			resp, err := guidance.NewAssembler().Analyze(q)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}
	cmd.Flags().StringVarP(&q.Symptom, "symptom", "s", "",
		"free-text symptom description (recognized: "+strings.Join(guidance.DietKeywords(), ", ")+")")
	cmd.Flags().StringVar(&q.Duration, "duration", "", "how long the symptom has lasted")
	cmd.Flags().StringVar(&q.Severity, "severity", "", "reported severity")
	cmd.Flags().IntVar(&age, "age", 0, "age in years")
	cmd.Flags().StringVar(&q.Gender, "gender", "", "gender")
	return cmd
}

func serve(ctx context.Context, cfg *Config) error {
	logger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	gin.SetMode(cfg.GinMode)

	var (
		db         HealthChecker
		dashboards dashboard.Source = dashboard.StaticSource{}
	)
	if cfg.EnableDB {
		pool, err := connectDB(ctx, cfg.DatabaseURL)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer pool.Close()

		if err := dashboard.Migrate(ctx, pool, migrations.Files); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		db = pool
		dashboards = dashboard.NewPostgresSource(pool)
		logger.Info("dashboard source: postgres")
	}

	router := setupRouter(cfg, routerDeps{
		db:         db,
		dashboards: dashboards,
		assembler:  guidance.NewAssembler(),
		stubs:      assistant.NewStubs(),
		logger:     logger,
	})
	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("server listening",
		zap.String("port", cfg.Port),
		zap.Bool("db_enabled", cfg.EnableDB),
	)
	return waitForShutdown(server, errCh, logger)
}

func loadConfig() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("port", "8080")
	v.SetDefault("gin_mode", "release")
	v.SetDefault("enable_db", false)
	v.SetDefault("database_url", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("service_name", "AI Health Assistant")
	v.SetDefault("max_body_bytes", 1<<20)
	v.AutomaticEnv()

	cfg := &Config{
		Port:         v.GetString("port"),
		GinMode:      v.GetString("gin_mode"),
		DatabaseURL:  v.GetString("database_url"),
		EnableDB:     v.GetBool("enable_db"),
		LogLevel:     strings.ToLower(v.GetString("log_level")),
		LogFormat:    strings.ToLower(v.GetString("log_format")),
		ServiceName:  v.GetString("service_name"),
		MaxBodyBytes: v.GetInt64("max_body_bytes"),
	}

	if cfg.EnableDB && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required when ENABLE_DB=true")
	}
	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	return cfg, nil
}

func initLogger(cfg *Config) (*zap.Logger, error) {
	var zapConfig zap.Config
	if cfg.LogFormat == "console" {
		zapConfig = zap.NewDevelopmentConfig()
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zapcore.InfoLevel
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, err
	}
	return logger.With(zap.String("service", cfg.ServiceName)), nil
}

func connectDB(ctx context.Context, url string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse db url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	return pool, nil
}

func waitForShutdown(server *http.Server, errCh <-chan error, logger *zap.Logger) error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-stop:
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		return err
	}
	return nil
}
