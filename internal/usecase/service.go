package usecase

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"page-extract/internal/config"
	"page-extract/internal/ports"
	"page-extract/internal/usecase/adapters"
)

type Service struct {
	Extractor adapters.ExtractorService
	Browser   adapters.BrowserService
}

type Params struct {
	fx.In

	Logger  *zap.Logger
	Config  *config.Config
	Browser ports.BrowserManager
}

func NewUsecase(params Params) *Service {
	factory := newServiceFactory(params)

	return &Service{
		Extractor: factory.CreateExtractorService(),
		Browser:   factory.CreateBrowserService(),
	}
}
