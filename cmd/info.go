package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/moyu-x/files-mover/app"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "显示整理计划：文件数、目录数、首尾目录名",
	Long: `列出工作目录中的文件并计算将要创建的目录，不修改任何文件。
输出包括当前目录、文件数量、目录数量以及第一个和最后一个目录名。`,
	Args: cobra.NoArgs,
	RunE: runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	if format != "text" && format != "table" {
		return fmt.Errorf("未知的输出格式: %s", format)
	}

	report, err := app.RunInfo(layoutOptions(cmd))
	if err != nil {
		return err
	}

	if format == "table" {
		fmt.Fprintln(cmd.OutOrStdout(), renderReportTable(report))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), report.String())
	return nil
}

func init() {
	addLayoutFlags(infoCmd)
	infoCmd.Flags().StringP("format", "f", "text", "输出格式: text 或 table")

	rootCmd.AddCommand(infoCmd)
}
