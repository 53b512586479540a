package console

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"page-extract/internal/config"
	"page-extract/internal/entity"
	"page-extract/internal/usecase"
	"page-extract/pkg/logg"
)

type Interface struct {
	config   *config.Config
	logger   *zap.Logger
	usecase  *usecase.Service
	ctx      context.Context
	cancel   context.CancelFunc
	sigChan  chan os.Signal
	stopping bool
	run      *entity.Run
}

type Params struct {
	fx.In

	Config  *config.Config
	Logger  *zap.Logger
	Usecase *usecase.Service
}

func NewInterface(params Params) *Interface {
	ctx, cancel := context.WithCancel(context.Background())
	sigChan := make(chan os.Signal, 1)

	return &Interface{
		config:   params.Config,
		logger:   params.Logger.With(zap.String(logg.Layer, "Console")),
		usecase:  params.Usecase,
		ctx:      ctx,
		cancel:   cancel,
		sigChan:  sigChan,
		stopping: false,
	}
}

func (i *Interface) Start() error {
	i.printBanner()
	i.printHelp()

	signal.Notify(i.sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-i.sigChan
		fmt.Println("\n\nInterrupt received, shutting down...")
		i.stopping = true
		i.Stop()
	}()

	scanner := bufio.NewScanner(os.Stdin)

	for {
		if i.stopping {
			break
		}

		fmt.Print("\n> ")

		if !scanner.Scan() {
			break
		}

		input := strings.TrimSpace(scanner.Text())

		if input == "" {
			continue
		}

		if err := i.handleCommand(input); err != nil {
			if err.Error() == "exit" {
				break
			}

			i.logger.Error("Command error", zap.Error(err))
			fmt.Printf("Error: %v\n", err)
		}
	}

	return nil
}

func (i *Interface) Stop() error {
	if i.stopping {
		return nil
	}

	i.stopping = true
	i.logger.Info("Stopping console interface...")

	i.cancel()
	i.usecase.Extractor.Stop()

	fmt.Println("Goodbye!")
	os.Exit(0)

	return nil
}

func (i *Interface) handleCommand(input string) error {
	fields := strings.Fields(input)
	cmd := fields[0]
	args := fields[1:]

	switch cmd {
	case "help", "h":
		i.printHelp()

		return nil
	case "exit", "quit", "q":
		fmt.Println("Shutting down...")

		return fmt.Errorf("exit")
	case "open":
		if len(args) < 1 {
			return fmt.Errorf("usage: open <url>")
		}

		return i.summarize(args[0])
	case "summary":
		return i.summarize("")
	case "click":
		if len(args) < 1 {
			return fmt.Errorf("usage: click <selector>")
		}

		return i.replay(&entity.ReplayAction{
			Type:     entity.ActionTypeClick,
			Selector: args[0],
		})
	case "fill":
		if len(args) < 2 {
			return fmt.Errorf("usage: fill <selector> <value>")
		}

		return i.replay(&entity.ReplayAction{
			Type:     entity.ActionTypeFill,
			Selector: args[0],
			Value:    strings.Join(args[1:], " "),
		})
	default:
		return fmt.Errorf("unknown command: %s (try 'help')", cmd)
	}
}

func (i *Interface) summarize(url string) error {
	run, err := i.usecase.Extractor.Summarize(i.ctx, url)
	if err != nil {
		fmt.Printf("\nExtraction failed: %v\n", err)

		return nil
	}

	i.run = run

	fmt.Printf("\nRun %s\n", run.ID)
	fmt.Println(strings.Repeat("─", 50))
	fmt.Println(i.usecase.Extractor.FormatState(&entity.PageState{
		URL:     run.URL,
		Title:   run.Summary.Title,
		Summary: run.Summary,
	}))

	return nil
}

func (i *Interface) replay(action *entity.ReplayAction) error {
	state, err := i.usecase.Extractor.Replay(i.ctx, i.run, action)
	if err != nil {
		fmt.Printf("\nAction failed: %v\n", err)

		return nil
	}

	fmt.Println(strings.Repeat("─", 50))
	fmt.Println(i.usecase.Extractor.FormatState(state))

	return nil
}

func (i *Interface) printBanner() {
	fmt.Println(`
╔═══════════════════════════════════════════════╗
║   page-extract — DOM fallback extraction      ║
╚═══════════════════════════════════════════════╝`)
}

func (i *Interface) printHelp() {
	help := `
Available commands:
  open <url>              - Navigate to a page and extract its summary
  summary                 - Re-extract a summary of the current page
  click <selector>        - Click an element by selector from the summary
  fill <selector> <value> - Fill a form field by selector from the summary
  help, h                 - Show this help message
  exit, quit, q           - Exit the application
`
	fmt.Println(help)
}
