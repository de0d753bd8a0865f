package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/genart-dev/plugin-shapes/internal/config"
	"github.com/genart-dev/plugin-shapes/pkg/plugin"
	"github.com/genart-dev/plugin-shapes/pkg/render"
	"github.com/genart-dev/plugin-shapes/pkg/shape"
)

// serveCommand creates the serve command that runs the MCP server.
func (c *CLI) serveCommand() *cobra.Command {
	var transport, listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server over stdio or SSE",
		Long: `Serve exposes the shape tools to MCP clients.

With the stdio transport (the default) the server reads JSON-RPC requests
from stdin and writes responses to stdout until EOF. With the sse transport
it listens on an HTTP address and additionally serves /healthz and a live
/preview.svg of the current layer stack.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(c.configPath)
			if err != nil {
				return err
			}
			if transport != "" {
				cfg.Server.Transport = transport
			}
			if listen != "" {
				cfg.Server.Listen = listen
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			store, err := config.OpenStore(ctx, cfg.Store)
			if err != nil {
				return err
			}
			defer store.Close()

			p := plugin.New(shape.Default(), store)
			logger := loggerFromContext(ctx)
			logger.Info("starting MCP server",
				"transport", cfg.Server.Transport,
				"backend", cfg.Store.Backend,
				"tools", len(p.Descriptor().Tools))

			switch cfg.Server.Transport {
			case config.TransportStdio:
				return serveStdio(ctx, p)
			default:
				return serveSSE(ctx, p, cfg)
			}
		},
	}

	cmd.Flags().StringVarP(&transport, "transport", "t", "", "transport: stdio or sse (overrides config)")
	cmd.Flags().StringVarP(&listen, "listen", "l", "", "sse listen address (overrides config)")

	return cmd
}

func serveStdio(ctx context.Context, p *plugin.Plugin) error {
	stdio := server.NewStdioServer(p.MCPServer())
	err := stdio.Listen(ctx, os.Stdin, os.Stdout)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func serveSSE(ctx context.Context, p *plugin.Plugin, cfg config.Config) error {
	logger := loggerFromContext(ctx)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/preview.svg", previewHandler(p, cfg, "svg"))
	r.Get("/preview.png", previewHandler(p, cfg, "png"))
	r.Mount("/", server.NewSSEServer(p.MCPServer()))

	httpSrv := &http.Server{
		Addr:              cfg.Server.Listen,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cfg.Server.Listen)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// previewHandler renders the current layer stack on demand.
func previewHandler(p *plugin.Plugin, cfg config.Config, format string) http.HandlerFunc {
	opts := []render.Option{
		render.WithSize(cfg.Render.Width, cfg.Render.Height),
	}
	if cfg.Render.Background != "" {
		opts = append(opts, render.WithBackground(cfg.Render.Background))
	}

	return func(w http.ResponseWriter, req *http.Request) {
		layers, err := p.Store().List(req.Context())
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		var out []byte
		switch format {
		case "png":
			out, err = render.PNGDocument(req.Context(), p.Registry(), layers, opts...)
			w.Header().Set("Content-Type", "image/png")
		default:
			out, err = render.SVGDocument(req.Context(), p.Registry(), layers, opts...)
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Write(out)
	}
}
