// Command gptkit exposes the inference API endpoints as subcommands.
//
// Configuration is read from OPENAI_API_KEY, OPENAI_ORGANIZATION_KEY,
// OPENAI_API_URL, and OPENAI_HTTP_TIMEOUT, from ./.env, or from the file
// given with --config.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := newApp(os.Stdout, os.Stderr).run(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
