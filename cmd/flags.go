package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/moyu-x/files-mover/app"
	"github.com/moyu-x/files-mover/config"
	"github.com/moyu-x/files-mover/pkg/sorter"
)

// addLayoutFlags 注册 info 和 move 共用的参数
func addLayoutFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("dir", "d", "", "工作目录（默认: 当前目录）")
	cmd.Flags().IntP("num", "n", 0, "每个目录的文件数（默认取配置，50）")
	cmd.Flags().StringP("prefix", "p", "", "目录名前缀（默认取配置，folder-）")
	cmd.Flags().IntP("start", "s", 0, "起始目录编号（默认取配置，1）")
	cmd.Flags().String("sort", "", fmt.Sprintf("排序方式: %s", strings.Join(sorter.Names(), ", ")))
	cmd.Flags().BoolP("reverse", "r", false, "倒序排序（不排序时无效）")
}

// layoutOptions 命令行参数优先，未指定时使用配置文件的值
func layoutOptions(cmd *cobra.Command) *app.MoveOptions {
	cfg := config.Get()
	flags := cmd.Flags()

	opts := &app.MoveOptions{
		Num:     cfg.Mover.Num,
		Prefix:  cfg.Mover.Prefix,
		Start:   cfg.Mover.StartIndex,
		Sort:    cfg.Mover.Sort,
		Reverse: cfg.Mover.Reverse,
		Exclude: app.SelfExcludes(config.FileUsed()),
	}

	opts.WorkDir, _ = flags.GetString("dir")
	if flags.Changed("num") {
		opts.Num, _ = flags.GetInt("num")
	}
	if flags.Changed("prefix") {
		opts.Prefix, _ = flags.GetString("prefix")
	}
	if flags.Changed("start") {
		opts.Start, _ = flags.GetInt("start")
	}
	if flags.Changed("sort") {
		opts.Sort, _ = flags.GetString("sort")
	}
	if flags.Changed("reverse") {
		opts.Reverse, _ = flags.GetBool("reverse")
	}

	return opts
}
