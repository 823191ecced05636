package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/keleoz/quizpath/internal/report"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export a learning report",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng, st, log, cfg, err := buildEngine(cmd)
		if err != nil {
			return err
		}
		defer st.Close()
		defer log.Sync()

		attempts, err := eng.Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		data := report.Build(eng.User, attempts, eng.Catalog, time.Now())

		format, _ := cmd.Flags().GetString("format")
		var path string
		switch format {
		case "md", "markdown":
			path, err = report.SaveMarkdown(cfg.ReportDir, data)
		case "xlsx":
			path, err = report.SaveXLSX(cfg.ReportDir, data)
		default:
			return fmt.Errorf("unknown report format %q (md or xlsx)", format)
		}
		if err != nil {
			return err
		}

		fmt.Println("Report written to", path)
		return nil
	},
}

func init() {
	reportCmd.Flags().String("format", "md", "Report format: md or xlsx")
}
