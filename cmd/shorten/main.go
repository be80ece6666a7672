// Command shorten отправляет одну ссылку в сервис сокращения и печатает результат.
//
// Использование:
//
//	shorten [-api URL] [-origin URL] [-code CODE] [-copy] [-timeout 10s] [-v] URL
//
// Значения -api, -origin и -timeout по умолчанию берутся из API_BASE_URL,
// PUBLIC_ORIGIN и REQUEST_TIMEOUT (в том числе из .env).
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avc-dev/shortener-frontend/internal/client"
	"github.com/avc-dev/shortener-frontend/internal/config"
	"github.com/avc-dev/shortener-frontend/internal/env"
	"github.com/avc-dev/shortener-frontend/internal/metrics"
	"github.com/avc-dev/shortener-frontend/internal/model"
	"github.com/avc-dev/shortener-frontend/internal/service"
	"github.com/avc-dev/shortener-frontend/internal/usecase"
	caarlosenv "github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Коды завершения
const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

// options: параметры одного запуска
type options struct {
	APIBaseURL   config.URLPrefix `env:"API_BASE_URL"`
	PublicOrigin config.URLPrefix `env:"PUBLIC_ORIGIN"`
	Timeout      time.Duration    `env:"REQUEST_TIMEOUT"`

	code    string
	copy    bool
	verbose bool
	url     string
}

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "failed to load .env:", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], caarlosenv.ToMap(os.Environ()), os.Stdout, os.Stderr, env.SystemClipboard{})
	stop()

	os.Exit(code)
}

// parseOptions читает окружение, затем флаги. Флаги имеют приоритет.
func parseOptions(args []string, environ map[string]string, stderr io.Writer) (*options, error) {
	defaults := config.NewDefaultConfig()
	opts := &options{
		APIBaseURL:   defaults.APIBaseURL,
		PublicOrigin: defaults.PublicOrigin,
		Timeout:      defaults.RequestTimeout,
	}

	if err := caarlosenv.ParseWithOptions(opts, caarlosenv.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	flags := flag.NewFlagSet("shorten", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Var(&opts.APIBaseURL, "api", "base URL of the shortener API")
	flags.Var(&opts.PublicOrigin, "origin", "origin for displayed short URLs")
	flags.DurationVar(&opts.Timeout, "timeout", opts.Timeout, "request timeout")
	flags.StringVar(&opts.code, "code", "", "desired custom short code")
	flags.BoolVar(&opts.copy, "copy", false, "copy the short URL to the clipboard")
	flags.BoolVar(&opts.verbose, "v", false, "write debug logs to stderr")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if flags.NArg() != 1 {
		return nil, errors.New("exactly one URL argument is required")
	}
	opts.url = flags.Arg(0)

	return opts, nil
}

func run(ctx context.Context, args []string, environ map[string]string, stdout, stderr io.Writer, clip env.Clipboard) int {
	opts, err := parseOptions(args, environ, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return exitUsage
	}

	logger := zap.NewNop()
	if opts.verbose {
		cfg := zap.NewDevelopmentConfig()
		cfg.OutputPaths = []string{"stderr"}
		if logger, err = cfg.Build(); err != nil {
			fmt.Fprintln(stderr, err)
			return exitFailed
		}
	}
	defer logger.Sync()

	apiClient, err := client.New(opts.APIBaseURL.String(), &http.Client{Timeout: opts.Timeout}, logger)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	environment := env.Environment{
		Origin:    env.StaticOrigin(opts.PublicOrigin.String()),
		Clipboard: clip,
		Notifier:  env.NewWriterNotifier(stderr),
		Listener: env.StateListenerFunc(func(state model.UiState) {
			if state.Loading {
				fmt.Fprintln(stderr, "Shortening...")
			}
		}),
	}

	uc := usecase.NewURLUsecase(
		apiClient,
		service.NewResponseInterpreter(logger),
		environment,
		metrics.New(prometheus.NewRegistry()),
		logger,
	)

	state := uc.Submit(ctx, model.UiState{}, model.SubmissionInput{
		OriginalURL: opts.url,
		CustomCode:  opts.code,
	})
	if state.ErrorMessage != "" {
		fmt.Fprintln(stderr, state.ErrorMessage)
		return exitFailed
	}

	fmt.Fprintln(stdout, state.ShortenedURL)

	if opts.copy {
		// результат уже напечатан, уведомление о сбое выводит сам usecase
		uc.CopyToClipboard(state.ShortenedURL)
	}

	return exitOK
}
