package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/moyu-x/files-mover/config"
	"github.com/moyu-x/files-mover/pkg/logger"
)

var (
	logLevel string
	logFile  string
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "files-mover",
	Short: "将目录中的文件按固定数量分配到编号子目录",
	Long: `Files Mover 是一个命令行工具，把工作目录下的文件（不递归）按每 N 个一组
移动到 <前缀><编号> 形式的子目录中，移动前可按名称、大小、修改时间、创建时间或类型排序。

示例:
  files-mover info -d ~/Pictures -n 50 -p images--
  files-mover move -d ~/Pictures -n 50 -p images-- --sort name --reverse`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		level := cfg.Logging.Level
		if cmd.Flags().Changed("log-level") {
			level = logLevel
		}
		if verbose {
			level = "debug"
		}
		file := cfg.Logging.File
		if cmd.Flags().Changed("log-file") {
			file = logFile
		}

		return logger.Init(level, file)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "日志级别")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "日志文件路径")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "显示详细日志")
}
