package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/moyu-x/files-mover/pkg/logger"
	"github.com/moyu-x/files-mover/pkg/separator"
	"github.com/moyu-x/files-mover/pkg/sorter"
)

// ErrAborted 用户拒绝执行移动
var ErrAborted = errors.New("已取消，未移动任何文件")

type MoveOptions struct {
	WorkDir   string
	Num       int
	Prefix    string
	Start     int
	Sort      string
	Reverse   bool
	KeepGoing bool
	DryRun    bool
	Exclude   []string
	LockDir   string
}

// ConfirmFunc 在移动前展示摘要并返回是否继续
type ConfirmFunc func(report *separator.Report) (bool, error)

func (o *MoveOptions) build() (*separator.Separator, error) {
	strategy, err := sorter.Parse(o.Sort)
	if err != nil {
		return nil, &separator.ConfigurationError{Field: "sort", Value: o.Sort, Err: separator.ErrInvalidSort}
	}

	return separator.New(separator.Options{
		WorkDir:   o.WorkDir,
		Num:       o.Num,
		Prefix:    o.Prefix,
		Start:     o.Start,
		Sort:      strategy,
		Reverse:   o.Reverse,
		KeepGoing: o.KeepGoing,
		DryRun:    o.DryRun,
		Exclude:   o.Exclude,
		LockDir:   o.LockDir,
	})
}

func RunInfo(opts *MoveOptions) (*separator.Report, error) {
	sep, err := opts.build()
	if err != nil {
		return nil, err
	}
	return sep.Describe()
}

// RunMove 先生成摘要，confirm 为 nil 或返回 true 时执行移动
func RunMove(opts *MoveOptions, confirm ConfirmFunc) (*separator.Report, *separator.Result, error) {
	sep, err := opts.build()
	if err != nil {
		return nil, nil, err
	}

	report, err := sep.Describe()
	if err != nil {
		return nil, nil, err
	}

	logger.Get().Info().Msgf("工作目录: %s", report.WorkDir)
	logger.Get().Info().Msgf("文件数: %d，目录数: %d", report.FileCount, report.FolderCount)

	if confirm != nil && report.FileCount > 0 {
		ok, err := confirm(report)
		if err != nil {
			return report, nil, fmt.Errorf("确认失败: %w", err)
		}
		if !ok {
			return report, nil, ErrAborted
		}
	}

	result, err := sep.Execute()
	return report, result, err
}

// SelfExcludes 返回不应被移动的程序自身和正在使用的配置文件
func SelfExcludes(configFile string) []string {
	var paths []string
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		paths = append(paths, exe)
	}
	if configFile != "" {
		paths = append(paths, configFile)
	}
	return paths
}
