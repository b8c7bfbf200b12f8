package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	gptkit "github.com/gptkit/client-go"
)

// paramsCmd builds a command that POSTs --params to fn.
func (a *app) paramsCmd(use, short string, args cobra.PositionalArgs,
	fn func(ctx context.Context, c *gptkit.Client, args []string, p gptkit.Params) (gptkit.Object, error),
) *cobra.Command {
	var raw string
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := parseParams(raw)
			if err != nil {
				return err
			}
			c, err := a.client()
			if err != nil {
				return err
			}
			obj, err := fn(cmd.Context(), c, args, params)
			if err != nil {
				return err
			}
			return a.print(obj)
		},
	}
	cmd.Flags().StringVar(&raw, "params", "", "request body as a JSON object")
	return cmd
}

func (a *app) enginesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "engines [id]",
		Short: "List engines, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			var obj gptkit.Object
			if len(args) == 1 {
				obj, err = c.Engine(cmd.Context(), args[0])
			} else {
				obj, err = c.Engines(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.print(obj)
		},
	}
}

func (a *app) completionsCmd() *cobra.Command {
	return a.paramsCmd("completions <engine>", "Create a completion", cobra.ExactArgs(1),
		func(ctx context.Context, c *gptkit.Client, args []string, p gptkit.Params) (gptkit.Object, error) {
			return c.Completions(ctx, args[0], p)
		})
}

func (a *app) searchCmd() *cobra.Command {
	return a.paramsCmd("search <engine>", "Rank documents against a query", cobra.ExactArgs(1),
		func(ctx context.Context, c *gptkit.Client, args []string, p gptkit.Params) (gptkit.Object, error) {
			return c.Search(ctx, args[0], p)
		})
}

func (a *app) answersCmd() *cobra.Command {
	return a.paramsCmd("answers", "Answer a question from documents", cobra.NoArgs,
		func(ctx context.Context, c *gptkit.Client, _ []string, p gptkit.Params) (gptkit.Object, error) {
			return c.Answers(ctx, p)
		})
}

func (a *app) classificationsCmd() *cobra.Command {
	return a.paramsCmd("classifications", "Classify a query from labeled examples", cobra.NoArgs,
		func(ctx context.Context, c *gptkit.Client, _ []string, p gptkit.Params) (gptkit.Object, error) {
			return c.Classifications(ctx, p)
		})
}

func (a *app) fineTunesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "finetunes [id]",
		Short: "List fine-tunes, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			var obj gptkit.Object
			if len(args) == 1 {
				obj, err = c.FineTune(cmd.Context(), args[0])
			} else {
				obj, err = c.FineTunes(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.print(obj)
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "results <id>",
			Short: "Print the fields of a fine-tune's first result file",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				c, err := a.client()
				if err != nil {
					return err
				}
				fields, err := c.FineTuningResults(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return a.print(fields)
			},
		},
		a.paramsCmd("create", "Start a fine-tune", cobra.NoArgs,
			func(ctx context.Context, c *gptkit.Client, _ []string, p gptkit.Params) (gptkit.Object, error) {
				return c.CreateFineTune(ctx, p)
			}),
	)
	return cmd
}

func (a *app) filesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "files [id]",
		Short: "List files, or show one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			var obj gptkit.Object
			if len(args) == 1 {
				obj, err = c.File(cmd.Context(), args[0])
			} else {
				obj, err = c.Files(cmd.Context())
			}
			if err != nil {
				return err
			}
			return a.print(obj)
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "content <id>...",
		Short: "Print the last line of each file's content",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			lines := make([]string, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			for i, id := range args {
				i, id := i, id
				g.Go(func() error {
					line, err := c.FileContent(ctx, id)
					if err != nil {
						return fmt.Errorf("file %s: %w", id, err)
					}
					lines[i] = line
					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}
			if len(lines) == 1 {
				return a.print(lines[0])
			}
			return a.print(lines)
		},
	})
	return cmd
}

func (a *app) imagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Image endpoints",
	}

	var fields map[string]string
	variations := &cobra.Command{
		Use:   "variations <file>",
		Short: "Upload an image and request variations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.client()
			if err != nil {
				return err
			}
			obj, err := c.ImageVariations(cmd.Context(), args[0], fields)
			if err != nil {
				return err
			}
			return a.print(obj)
		},
	}
	variations.Flags().StringToStringVar(&fields, "field", nil, "extra form field as key=value (repeatable)")

	cmd.AddCommand(
		variations,
		a.paramsCmd("generate", "Create images from a prompt", cobra.NoArgs,
			func(ctx context.Context, c *gptkit.Client, _ []string, p gptkit.Params) (gptkit.Object, error) {
				return c.ImageGenerations(ctx, p)
			}),
	)
	return cmd
}
