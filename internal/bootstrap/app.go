package bootstrap

import (
	"time"

	"go.uber.org/fx"

	"page-extract/internal/browser"
	"page-extract/internal/config"
	"page-extract/internal/console"
	"page-extract/internal/ports"
	"page-extract/internal/usecase"
)

func NewApp() *fx.App {
	return fx.New(
		fx.Provide(
			config.GetConfig,
			newLogger,
			newTraceProvider,

			fx.Annotate(browser.NewManager, fx.As(new(ports.BrowserManager))),

			usecase.NewUsecase,

			console.NewInterface,
		),

		fx.Invoke(
			runConsole,
		),

		fx.StartTimeout(10*time.Second),
	)
}
