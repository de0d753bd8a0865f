// Package cli implements the plugin-shapes command-line interface.
//
// This package provides commands for serving the shape tools over MCP,
// rendering layer documents to SVG or PNG, and inspecting the shape catalog
// and the layer stack. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - serve: Run the MCP server over stdio or SSE
//   - render: Render a layer document to SVG or PNG
//   - shapes: Print the registered shape catalog
//   - stack: Browse the configured layer store interactively
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/genart-dev/plugin-shapes/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/genart-dev/plugin-shapes/pkg/buildinfo"
)

// appName is the application name used for config lookup and display.
const appName = "plugin-shapes"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "plugin-shapes serves vector shape layers over MCP",
		Long:         `plugin-shapes is a design-app plugin that registers vector shape layer types (rect, ellipse, line, polygon, star) and exposes tools for building a layer stack over the Model Context Protocol.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to TOML config file")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.shapesCommand())
	root.AddCommand(c.stackCommand())
	root.AddCommand(c.completionCommand())
	root.AddCommand(versionCommand())

	return root
}

// versionCommand prints the full build information.
func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(buildinfo.String())
		},
	}
}
