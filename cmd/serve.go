package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/exec"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"aimlookup/config"
	"aimlookup/loader"
	"aimlookup/web"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	servePort   int
	serveNoOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the local lookup web UI",
	Long: `Start a local HTTP server with the category lookup, the equity cross-reference
and the detail record viewer.

Each variant fetches its dataset once in the background; the pages show an
engagement panel with quotes and a progress bar until the data is ready.`,
	Example: `
  # Start local server on the configured port
  aimlookup serve

  # Start on a custom port without opening a browser
  aimlookup serve --port 9090 --no-open
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadAndValidate()
		if err != nil {
			return err
		}
		port := cfg.Server.Port
		if cmd.Flags().Changed("port") {
			port = servePort
		}

		client, err := newFetcher(cfg)
		if err != nil {
			return err
		}

		ctx, cancelLoads := context.WithCancel(context.Background())
		defer cancelLoads()
		tasks := startTasks(ctx, client, cfg)

		addr := fmt.Sprintf(":%d", port)
		server := &http.Server{
			Addr: addr,
			Handler: web.NewServer(tasks, web.Options{
				CollapseWords: cfg.Viewer.CollapseWords,
				Logger:        logger,
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.ListenAndServe()
		}()

		listenURL := fmt.Sprintf("http://localhost:%d", port)
		fmt.Printf("Listening on %s\n", listenURL)
		logger.Info("server started", zap.String("addr", addr))
		if !serveNoOpen {
			if openErr := openURLInBrowser(listenURL); openErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: failed to open browser: %v\n", openErr)
			}
		}

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-sigCh:
			cancelLoads()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown server: %w", err)
			}
			err := <-errCh
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info("server stopped")
			return nil
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", config.DefaultServerPort, "HTTP port for the local web server (default from server.port)")
	serveCmd.Flags().BoolVar(&serveNoOpen, "no-open", false, "Do not open browser automatically")
}

// startTasks kicks off the three dataset loads. Each variant loads once.
func startTasks(ctx context.Context, f loader.Fetcher, cfg *config.Config) web.Tasks {
	src := sourcesFromConfig(cfg)
	limit := cfg.Lookup.SuggestionLimit

	tasks := web.Tasks{
		Lookup:  loader.NewTask[*loader.LookupData](web.VariantLookup, loader.NewAnimator(animatorConfig(cfg)), logger),
		Equity:  loader.NewTask[*loader.EquityData](web.VariantEquity, loader.NewAnimator(animatorConfig(cfg)), logger),
		Records: loader.NewTask[*loader.RecordsData](web.VariantRecords, loader.NewAnimator(animatorConfig(cfg)), logger),
	}
	tasks.Lookup.Start(ctx, loader.LoadLookup(f, src, limit))
	tasks.Equity.Start(ctx, loader.LoadEquity(f, src, limit))
	tasks.Records.Start(ctx, loader.LoadRecords(f, src))
	return tasks
}

func openURLInBrowser(rawURL string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", rawURL)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		cmd = exec.Command("xdg-open", rawURL)
	}
	return cmd.Start()
}
