package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dskvich/kintone-icon-generator/pkg/client"
	"github.com/dskvich/kintone-icon-generator/pkg/domain"
	"github.com/dskvich/kintone-icon-generator/pkg/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func main() {
	slog.SetDefault(slog.New(logger.NewHandler(os.Stderr, logger.DefaultOptions)))

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "iconctl",
		Short:        "Generate kintone app icons from a description",
		SilenceUsage: true,
	}
	root.AddCommand(newGenerateCmd(), newExamplesCmd())
	return root
}

func newGenerateCmd() *cobra.Command {
	var (
		endpoint string
		apiKey   string
		outDir   string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "generate DESCRIPTION",
		Short: "Generate one icon per style",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			c := client.New(endpoint, client.WithAPIKey(apiKey))
			images, err := c.GenerateIcons(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}

			now := time.Now()
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"Style", "Image", "File"})
			table.SetAutoWrapText(false)

			for _, img := range images {
				file := ""
				if outDir != "" {
					if file, err = c.Save(ctx, img, outDir, now); err != nil {
						return err
					}
				}
				table.Append([]string{img.Style, abbreviate(img.ImageURL, 48), file})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVar(&endpoint, "endpoint", envOr("ICON_ENDPOINT", "http://localhost:8080/generate-icon"), "generate-icon endpoint URL")
	cmd.Flags().StringVar(&apiKey, "api-key", os.Getenv("ICON_API_KEY"), "publishable API key sent with the request")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "directory to save the images into")
	cmd.Flags().DurationVar(&timeout, "timeout", 3*time.Minute, "overall request timeout")

	return cmd
}

func newExamplesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "examples",
		Short: "List example descriptions and styles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"#", "Example description"})
			for i, e := range domain.ExampleDescriptions {
				table.Append([]string{fmt.Sprint(i + 1), e})
			}
			table.Render()

			for _, s := range domain.Styles {
				fmt.Fprintln(cmd.OutOrStdout(), "style:", s.Name)
			}
		},
	}
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
