package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	gptkit "github.com/gptkit/client-go"
	"github.com/gptkit/client-go/internal/config"
	"github.com/gptkit/client-go/internal/logging"
)

// app holds state shared by all commands.
type app struct {
	v          *viper.Viper
	stdout     io.Writer
	stderr     io.Writer
	httpClient *http.Client
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{
		v:      viper.New(),
		stdout: stdout,
		stderr: stderr,
	}
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "gptkit",
		Short:         "gptkit calls the inference API from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv()
		},
	}

	flags := root.PersistentFlags()
	flags.String("config", "", "config file (yaml, json, or toml)")
	flags.Bool("debug", false, "log each request to stderr")
	flags.StringP("output", "o", formatJSON, "output format: json or yaml")
	for _, name := range []string{"config", "debug", "output"} {
		_ = a.v.BindPFlag(name, flags.Lookup(name))
	}

	root.AddCommand(
		a.enginesCmd(),
		a.completionsCmd(),
		a.searchCmd(),
		a.answersCmd(),
		a.classificationsCmd(),
		a.fineTunesCmd(),
		a.filesCmd(),
		a.imagesCmd(),
	)
	return root
}

// client builds a gptkit client from the current flags.
func (a *app) client() (*gptkit.Client, error) {
	opts := []gptkit.Option{
		gptkit.WithLogger(logging.New(a.stderr, a.v.GetBool("debug"))),
	}
	if path := a.v.GetString("config"); path != "" {
		opts = append(opts, gptkit.WithConfigFile(path))
	}
	if a.httpClient != nil {
		opts = append(opts, gptkit.WithHTTPClient(a.httpClient))
	}
	return gptkit.New(opts...)
}

func (a *app) print(v any) error {
	return writeOutput(a.stdout, a.v.GetString("output"), v)
}

// run executes the CLI with args and returns the process exit code.
func (a *app) run(ctx context.Context, args []string) int {
	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(a.stdout)
	root.SetErr(a.stderr)
	if err := root.ExecuteContext(ctx); err != nil {
		printError(a.stderr, err)
		return 1
	}
	return 0
}

// printError writes err, followed by the service's error body for API errors.
func printError(w io.Writer, err error) {
	fmt.Fprintln(w, "error:", err)
	var apiErr *gptkit.APIError
	if errors.As(err, &apiErr) && apiErr.Body != nil {
		body, mErr := json.MarshalIndent(apiErr.Body, "", "  ")
		if mErr == nil {
			fmt.Fprintln(w, string(body))
		}
	}
}

// parseParams decodes a --params flag value into request parameters. The
// value must be a JSON object; an empty value sends {}.
func parseParams(raw string) (gptkit.Params, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return gptkit.Params{}, nil
	}
	var params gptkit.Params
	if err := json.Unmarshal([]byte(raw), &params); err != nil {
		return nil, fmt.Errorf("parse --params: %w", err)
	}
	if params == nil {
		return nil, errors.New("parse --params: must be a JSON object")
	}
	return params, nil
}
