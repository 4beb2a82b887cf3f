package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/block"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/config"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/engine"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/logger"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/render"
	"github.com/iWorld-y/signal_pulse/app/signal_pulse/pkg/report"
)

var version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "signal_pulse",
		Short: "Live intelligence report parser",
		Long: `signal_pulse turns LLM intelligence briefings into structured data.

It understands two output shapes:
  - emoji-tagged line markup, classified line by line into blocks
  - a JSON envelope of sections, with a raw-text fallback when parsing fails`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool("preview", false, "render a terminal preview instead of JSON")
	cmd.PersistentFlags().Int("width", 80, "width of boxed summaries in preview mode")

	cmd.AddCommand(blocksCmd())
	cmd.AddCommand(reportCmd())
	cmd.AddCommand(queryCmd())
	return cmd
}

func blocksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "blocks [file]",
		Short: "Classify markup lines into blocks",
		Long: `Classify every line of an emoji-tagged markup briefing.

Reads stdin when no file is given.

Example:
  signal_pulse blocks briefing.txt
  cat briefing.txt | signal_pulse blocks --preview`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			blocks := block.ClassifyLines(text)

			if preview, _ := cmd.Flags().GetBool("preview"); preview {
				width, _ := cmd.Flags().GetInt("width")
				fmt.Fprintln(cmd.OutOrStdout(), render.New(width).Blocks(blocks))
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), map[string]any{"blocks": block.EncodeAll(blocks)})
		},
	}
}

func reportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "report [file]",
		Short: "Parse a JSON report envelope",
		Long: `Parse a JSON report envelope, optionally wrapped in a markdown fence.

Unparseable input falls back to a single "Raw Output" section; the command never fails on content.

Example:
  signal_pulse report reply.json
  signal_pulse report --preview < reply.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			doc := report.Parse(raw)
			for _, issue := range doc.Issues {
				logger.Log.Warnf("报告解析问题: %s", issue)
			}

			if preview, _ := cmd.Flags().GetBool("preview"); preview {
				width, _ := cmd.Flags().GetInt("width")
				fmt.Fprintln(cmd.OutOrStdout(), render.New(width).Document(doc))
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), doc.Snapshot())
		},
	}
}

func queryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <text>",
		Short: "Gather live evidence and ask the model for a briefing",
		Long: `Search live evidence for a query, ask the configured model for a briefing
and parse the reply.

Example:
  signal_pulse query "NVIDIA export restrictions" --conf configs/config.yaml
  signal_pulse query "TSMC capex" --format markup --preview`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			confPath, _ := cmd.Flags().GetString("conf")
			formatFlag, _ := cmd.Flags().GetString("format")

			cfg, err := config.LoadConfig(confPath)
			if err != nil {
				return fmt.Errorf("无法加载配置文件: %w", err)
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("配置错误: %w", err)
			}
			if err := logger.InitLogger(cfg.Log.Level, cfg.Log.File); err != nil {
				return fmt.Errorf("无法初始化日志: %w", err)
			}

			var format engine.Format
			if formatFlag != "" {
				if format, err = engine.ParseFormat(formatFlag); err != nil {
					return err
				}
			}

			eng, err := engine.NewEngine(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			res, err := eng.Query(ctx, engine.QueryOptions{Query: strings.Join(args, " "), Format: format})
			if err != nil {
				return err
			}

			if preview, _ := cmd.Flags().GetBool("preview"); preview {
				width, _ := cmd.Flags().GetInt("width")
				r := render.New(width)
				if res.Format == engine.FormatMarkup {
					fmt.Fprintln(cmd.OutOrStdout(), r.Blocks(res.Blocks))
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), r.Document(res.Document))
				}
				return nil
			}
			return writeJSON(cmd.OutOrStdout(), queryOutput{
				ID:       res.ID,
				Query:    res.Query,
				Format:   res.Format,
				Attempts: res.Attempts,
				Raw:      res.Raw,
				Snapshot: res.Document.Snapshot(),
				Markup:   block.EncodeAll(res.Blocks),
			})
		},
	}
	cmd.Flags().String("conf", "configs/config.yaml", "config file path")
	cmd.Flags().String("format", "", "model output format: json or markup (default from config)")
	return cmd
}

type queryOutput struct {
	ID       string        `json:"id"`
	Query    string        `json:"query"`
	Format   engine.Format `json:"format"`
	Attempts int           `json:"attempts"`
	Raw      string        `json:"raw"`
	report.Snapshot
	Markup []block.View `json:"markup"`
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
