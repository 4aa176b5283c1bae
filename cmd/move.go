package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/moyu-x/files-mover/app"
	"github.com/moyu-x/files-mover/pkg/separator"
	"github.com/moyu-x/files-mover/tui"
)

var moveCmd = &cobra.Command{
	Use:   "move",
	Short: "创建编号目录并移动文件",
	Long: `按每个目录 N 个文件的规则，把工作目录下的文件移动到编号子目录中。
已存在的目标目录会被复用；目标文件已存在时移动失败，不会覆盖或重命名。
默认遇到第一个失败即停止，已移动的文件不会回滚。`,
	Args: cobra.NoArgs,
	RunE: runMove,
}

func runMove(cmd *cobra.Command, args []string) error {
	yes, _ := cmd.Flags().GetBool("yes")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	keepGoing, _ := cmd.Flags().GetBool("keep-going")

	opts := layoutOptions(cmd)
	opts.DryRun = dryRun
	opts.KeepGoing = keepGoing

	var confirm app.ConfirmFunc
	if !yes && !dryRun && interactive() {
		confirm = func(report *separator.Report) (bool, error) {
			rows := make([]tui.Row, 0, 5)
			for _, r := range report.Rows() {
				rows = append(rows, tui.Row{Label: r[0], Value: r[1]})
			}
			return tui.Confirm(rows, "开始移动文件?")
		}
	}

	report, result, err := app.RunMove(opts, confirm)
	if report != nil && confirm == nil {
		fmt.Fprintln(cmd.OutOrStdout(), report.String())
	}
	if result != nil {
		fmt.Fprintln(cmd.OutOrStdout(), result.String())
	}
	return err
}

func interactive() bool {
	in := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	out := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	return in && out
}

func init() {
	addLayoutFlags(moveCmd)
	moveCmd.Flags().BoolP("yes", "y", false, "跳过确认")
	moveCmd.Flags().Bool("dry-run", false, "预览模式，不实际移动文件")
	moveCmd.Flags().Bool("keep-going", false, "移动失败时继续处理剩余文件")

	rootCmd.AddCommand(moveCmd)
}
