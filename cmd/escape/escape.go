package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/willbeason/escape-fractal/pkg/cli"
	"github.com/willbeason/escape-fractal/pkg/transforms"
)

func mainCmd() *cobra.Command {
	opts := cli.DefaultOptions()

	cmd := &cobra.Command{
		Use:     "escape [flags] FILE PIXELS UPPERLEFT LOWERRIGHT",
		Short:   "Render the Mandelbrot set over a window of the complex plane",
		Example: "escape mandel.png 1000x750 -1.25,0.32 -1,0.20",
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmd(cmd, args, opts)
		},
	}
	opts.Bind(cmd.Flags())
	// Corners such as -1.25,0.32 look like shorthand flags, so flags go before FILE.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runCmd(cmd *cobra.Command, args []string, opts cli.Options) error {
	img, err := cli.ParseImage(args)
	if err != nil {
		return err
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := opts.Logger(cmd.ErrOrStderr())

	return cli.Run(cmd.Context(), logger, img, transforms.Multibrot(opts.Power), opts)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
