package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/willbeason/escape-fractal/pkg/cli"
	"github.com/willbeason/escape-fractal/pkg/plane"
	"github.com/willbeason/escape-fractal/pkg/transforms"
)

func mainCmd() *cobra.Command {
	opts := cli.DefaultOptions()

	cmd := &cobra.Command{
		Use:     "julia [flags] FILE PIXELS UPPERLEFT LOWERRIGHT CONSTANT",
		Short:   "Render the Julia set of z^n + CONSTANT over a window of the complex plane",
		Example: "julia julia.png 1000x750 -1.6,1.2 1.6,-1.2 -0.8,0.156",
		Args:    cobra.ExactArgs(5),
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
	c, err := plane.ParseComplex(args[4])
	if err != nil {
		return fmt.Errorf("parsing constant: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	logger := opts.Logger(cmd.ErrOrStderr())

	return cli.Run(cmd.Context(), logger, img, transforms.MultiJulia(c, opts.Power), opts)
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
