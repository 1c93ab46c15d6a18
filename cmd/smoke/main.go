// smoke 对运行中的服务逐个语言调用生成接口，任一失败即以非零状态退出
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"yt_agent_v1_202610/internal/model"
	"yt_agent_v1_202610/pkg/client"
)

var (
	baseURL string
	niche   string
	timeout time.Duration
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:           "smoke",
	Short:         "Smoke test a running strategy server",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(baseURL, client.WithTimeout(timeout), client.WithDebug(debug))
		return run(cmd.Context(), c)
	},
}

func init() {
	rootCmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:8080", "server base URL")
	rootCmd.Flags().StringVar(&niche, "niche", "Cooking", "niche to generate for")
	rootCmd.Flags().DurationVar(&timeout, "timeout", client.DefaultTimeout, "per-request timeout")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "dump requests and responses")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(color.RedString(err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, c *client.Client) error {
	if err := c.Health(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	fmt.Println(color.GreenString("✔"), color.WhiteString("healthz"))

	failed := 0
	for _, lang := range model.Languages {
		start := time.Now()
		bundle, err := c.Generate(ctx, niche, lang.String())
		if err != nil {
			failed++
			fmt.Println(color.RedString("✘"), color.WhiteString("%-8s", lang), color.RedString(err.Error()))
			continue
		}
		fmt.Println(color.GreenString("✔"), color.WhiteString("%-8s", lang),
			color.CyanString("%q", bundle.Titles[0]),
			color.WhiteString("(%s)", time.Since(start).Round(time.Millisecond)))
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d languages failed", failed, len(model.Languages))
	}
	fmt.Println(color.GreenString("✨DONE✨"))
	return nil
}
