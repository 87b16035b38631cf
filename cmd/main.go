package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

func Run() error {
	ctx := context.Background()

	cmd := &cobra.Command{
		Use:   "chapterly",
		Short: "book club backend",
	}

	cmd.AddCommand(HTTPCommand(ctx))

	if err := cmd.Execute(); err != nil {
		return err
	}

	return nil
}
