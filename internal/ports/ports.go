package ports

import (
	"context"

	"page-extract/internal/entity"
)

type BrowserManager interface {
	Launch(ctx context.Context) error
	Close(ctx context.Context) error
	Navigate(ctx context.Context, url string) error
	Click(ctx context.Context, selector string) error
	Fill(ctx context.Context, selector string, value string) error
	WaitForSelector(ctx context.Context, selector string, timeout int) error
	Screenshot(ctx context.Context, path string) error
	GetPageState(ctx context.Context) (*entity.PageState, error)
	CurrentURL() string
	IsReady() bool
}

type ExtractorExecutor interface {
	Summarize(ctx context.Context, url string) (*entity.Run, error)
	Replay(ctx context.Context, run *entity.Run, action *entity.ReplayAction) (*entity.PageState, error)
	Stop()
}
