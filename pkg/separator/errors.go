package separator

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidChunkSize  = errors.New("每个目录的文件数必须大于 0")
	ErrInvalidSort       = errors.New("未知的排序方式")
	ErrInvalidPrefix     = errors.New("目录名前缀不能包含路径分隔符或 ..")
	ErrNotDirectory      = errors.New("不是目录")
	ErrDestinationExists = errors.New("目标文件已存在")
	ErrLocked            = errors.New("工作目录正在被另一个进程整理")
)

// ConfigurationError 参数错误，在任何文件系统修改之前检测
type ConfigurationError struct {
	Field string
	Value any
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("配置错误 %s=%v: %v", e.Field, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// PathError 工作目录不存在或不是目录
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("工作目录 %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }

// MoveError 单个文件移动失败
type MoveError struct {
	Source      string
	Destination string
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("移动 %s -> %s 失败: %v", e.Source, e.Destination, e.Err)
}

func (e *MoveError) Unwrap() error { return e.Err }
