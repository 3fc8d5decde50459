package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/celengan/internal/adapter/notify"
	"github.com/polkiloo/celengan/internal/app"
	"github.com/polkiloo/celengan/internal/config"
	"github.com/polkiloo/celengan/internal/logger"
	"github.com/polkiloo/celengan/internal/pkg/auth"
	"github.com/polkiloo/celengan/internal/report"
	"github.com/polkiloo/celengan/internal/server/http/handlers"
	"github.com/polkiloo/celengan/internal/server/http/router"
	"github.com/polkiloo/celengan/internal/storage/postgres"
	"github.com/polkiloo/celengan/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		notify.Module,
		report.Module,
		usecase.Module,
		fx.Provide(func(facade *app.SavingsFacade) handlers.SavingsFacade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
