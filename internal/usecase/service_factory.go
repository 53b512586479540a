package usecase

import (
	"page-extract/internal/usecase/adapters"
)

type serviceFactory struct {
	deps Params
}

func newServiceFactory(deps Params) *serviceFactory {
	return &serviceFactory{
		deps: deps,
	}
}

func (f *serviceFactory) CreateExtractorService() adapters.ExtractorService {
	return NewExtractorService(ExtractorServiceParams{
		Browser: f.deps.Browser,
		Config:  f.deps.Config,
		Logger:  f.deps.Logger,
	})
}

func (f *serviceFactory) CreateBrowserService() adapters.BrowserService {
	return f.deps.Browser
}
