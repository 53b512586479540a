package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"page-extract/internal/config"
	"page-extract/internal/entity"
)

type fakeBrowser struct {
	url      string
	state    *entity.PageState
	clickErr error
	clicked  []string
	filled   map[string]string
}

func (f *fakeBrowser) Launch(ctx context.Context) error { return nil }
func (f *fakeBrowser) Close(ctx context.Context) error  { return nil }

func (f *fakeBrowser) Navigate(ctx context.Context, url string) error {
	f.url = url

	return nil
}

func (f *fakeBrowser) Click(ctx context.Context, selector string) error {
	f.clicked = append(f.clicked, selector)

	return f.clickErr
}

func (f *fakeBrowser) Fill(ctx context.Context, selector, value string) error {
	if f.filled == nil {
		f.filled = make(map[string]string)
	}
	f.filled[selector] = value

	return nil
}

func (f *fakeBrowser) WaitForSelector(ctx context.Context, selector string, timeout int) error {
	return nil
}

func (f *fakeBrowser) Screenshot(ctx context.Context, path string) error { return nil }

func (f *fakeBrowser) GetPageState(ctx context.Context) (*entity.PageState, error) {
	if f.state != nil {
		return f.state, nil
	}

	return &entity.PageState{URL: f.url, Timestamp: time.Now()}, nil
}

func (f *fakeBrowser) CurrentURL() string { return f.url }
func (f *fakeBrowser) IsReady() bool      { return true }

func newTestService(browser *fakeBrowser) *ExtractorService {
	return NewExtractorService(ExtractorServiceParams{
		Config: &config.Config{
			AppConfig:     &config.AppConfig{},
			BrowserConfig: &config.BrowserConfig{},
			ExtractConfig: &config.ExtractConfig{},
		},
		Logger:  zap.NewNop(),
		Browser: browser,
	})
}

func TestSummarizeNavigatesAndBuildsRun(t *testing.T) {
	browser := &fakeBrowser{
		state: &entity.PageState{
			URL: "https://example.com",
			Summary: entity.PageSummary{
				Title:               "Example",
				InteractiveElements: []string{`[button] "Buy" → #cta`},
			},
		},
	}

	run, err := newTestService(browser).Summarize(context.Background(), "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com", browser.url)
	assert.Equal(t, "https://example.com", run.URL)
	assert.NotEqual(t, uuid.Nil, run.ID)
	assert.Equal(t, "Example", run.Summary.Title)
	assert.Empty(t, run.Steps)
}

func TestSummarizeRequiresSomePage(t *testing.T) {
	_, err := newTestService(&fakeBrowser{}).Summarize(context.Background(), "")

	require.Error(t, err)
}

func TestReplayClickRecordsStep(t *testing.T) {
	browser := &fakeBrowser{url: "https://example.com"}
	svc := newTestService(browser)
	run := &entity.Run{ID: uuid.New()}

	state, err := svc.Replay(context.Background(), run, &entity.ReplayAction{
		Type:     entity.ActionTypeClick,
		Selector: "#cta",
	})

	require.NoError(t, err)
	assert.NotNil(t, state)
	assert.Equal(t, []string{"#cta"}, browser.clicked)
	require.Len(t, run.Steps, 1)
	assert.True(t, run.Steps[0].Success)
	assert.Equal(t, "#cta", run.Steps[0].Selector)
}

func TestReplayFailureRecordedOnRun(t *testing.T) {
	browser := &fakeBrowser{clickErr: errors.New("element not found")}
	svc := newTestService(browser)
	run := &entity.Run{ID: uuid.New()}

	_, err := svc.Replay(context.Background(), run, &entity.ReplayAction{
		Type:     entity.ActionTypeClick,
		Selector: "#gone",
	})

	require.Error(t, err)
	require.Len(t, run.Steps, 1)
	assert.False(t, run.Steps[0].Success)
	assert.NotEmpty(t, run.Steps[0].Error)
}

func TestReplayFill(t *testing.T) {
	browser := &fakeBrowser{url: "https://example.com"}
	svc := newTestService(browser)

	_, err := svc.Replay(context.Background(), nil, &entity.ReplayAction{
		Type:     entity.ActionTypeFill,
		Selector: `input[name="q"]`,
		Value:    "golang",
	})

	require.NoError(t, err)
	assert.Equal(t, "golang", browser.filled[`input[name="q"]`])
}

func TestReplayRejectsEmptySelector(t *testing.T) {
	svc := newTestService(&fakeBrowser{})

	_, err := svc.Replay(context.Background(), nil, &entity.ReplayAction{
		Type: entity.ActionTypeClick,
	})

	require.Error(t, err)
}

func TestFormatState(t *testing.T) {
	svc := newTestService(&fakeBrowser{})

	out := svc.FormatState(&entity.PageState{
		URL: "https://example.com",
		Summary: entity.PageSummary{
			Title:               "Example",
			Description:         "An example page",
			InteractiveElements: []string{`[button] "Buy" → #cta`},
			FormFields:          []string{`[text] "Email" → #em`},
		},
	})

	assert.Contains(t, out, "URL: https://example.com")
	assert.Contains(t, out, "Title: Example")
	assert.Contains(t, out, "Description: An example page")
	assert.Contains(t, out, `1. [button] "Buy" → #cta`)
	assert.Contains(t, out, `1. [text] "Email" → #em`)
}
