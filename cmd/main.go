package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/pedidos-service/docs"
	"github.com/SergeyBogomolovv/pedidos-service/internal/app"
	"github.com/SergeyBogomolovv/pedidos-service/internal/auth"
	"github.com/SergeyBogomolovv/pedidos-service/internal/config"
	"github.com/SergeyBogomolovv/pedidos-service/internal/handler"
	"github.com/SergeyBogomolovv/pedidos-service/internal/postgres"
	"github.com/SergeyBogomolovv/pedidos-service/internal/receipt"
	"github.com/SergeyBogomolovv/pedidos-service/internal/repo"
	"github.com/SergeyBogomolovv/pedidos-service/internal/service"
	"github.com/SergeyBogomolovv/pedidos-service/internal/storage"
	"github.com/SergeyBogomolovv/pedidos-service/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Pedidos Service API
// @version         1.0
// @description     Order lifecycle and bag inventory for a garment customization shop
// @BasePath        /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Type "Bearer" followed by a space and the token.
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	if conf.Postgres.AutoMigrate {
		panicIfErr("failed to migrate", postgres.Migrate(logger, db.DB))
	}

	pgRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)

	images, err := storage.NewLocalStore(logger, conf.Storage)
	panicIfErr("failed to init storage", err)

	tokens := auth.NewTokenManager(conf.Auth)

	orderService := service.NewOrderService(logger, txManager, pgRepo, pgRepo, pgRepo, pgRepo, images)
	bagService := service.NewBagService(logger, txManager, pgRepo)
	clientService := service.NewClientService(logger, txManager, pgRepo)
	workerService := service.NewWorkerService(logger, txManager, pgRepo)
	authService := service.NewAuthService(logger, pgRepo, tokens)

	handler.RegisterMetrics()

	app := app.New(logger, conf, tokens, images.Dir())

	app.SetPublicHandlers(
		handler.NewAuthHandler(logger, authService),
		handler.NewHealthHandler(logger, postgres.NewPinger(db)),
	)
	app.SetHTTPHandlers(
		handler.NewOrderHandler(logger, orderService, receipt.NewGenerator(conf.ShopName)),
		handler.NewBagHandler(logger, bagService),
		handler.NewClientHandler(logger, clientService),
		handler.NewWorkerHandler(logger, workerService),
		handler.NewUserHandler(logger, authService),
	)

	if conf.Auth.AdminEmail != "" {
		app.SetStarters(superAdminAdapter{
			svc:      authService,
			email:    conf.Auth.AdminEmail,
			password: conf.Auth.AdminPassword,
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type superAdminEnsurer interface {
	EnsureSuperAdmin(ctx context.Context, email, password string) error
}

type superAdminAdapter struct {
	svc      superAdminEnsurer
	email    string
	password string
}

func (a superAdminAdapter) Start(ctx context.Context) error {
	return a.svc.EnsureSuperAdmin(ctx, a.email, a.password)
}
