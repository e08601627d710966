package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/rcliao/bikeshare/internal/model"
	"github.com/rcliao/bikeshare/internal/session"
	"github.com/rcliao/bikeshare/internal/store"
)

func runExplore(cmd *cobra.Command, args []string) {
	cfg, logger := setup()

	load := func(ctx context.Context, f model.Filter) (store.Store, error) {
		s, err := openTrips(ctx, cfg, logger, f)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	sess := session.New(os.Stdin, os.Stdout, load, session.Options{
		Styles: stdoutStyles(),
		Logger: logger,
	})
	if err := sess.Run(cmd.Context()); err != nil {
		exitErr("explore", err)
	}
}
