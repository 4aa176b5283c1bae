package sorter

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/moyu-x/files-mover/pkg/scanner"
)

// Strategy 排序方式
type Strategy string

const (
	None       Strategy = "none"
	ByName     Strategy = "name"
	BySize     Strategy = "size"
	ByModified Strategy = "mtime"
	ByCreated  Strategy = "ctime"
	ByType     Strategy = "type"
)

type compareFunc func(a, b scanner.Entry) int

var strategies = map[Strategy]compareFunc{
	ByName: func(a, b scanner.Entry) int {
		return strings.Compare(a.Name, b.Name)
	},
	BySize: func(a, b scanner.Entry) int {
		return cmp.Compare(a.Size, b.Size)
	},
	ByModified: func(a, b scanner.Entry) int {
		return a.ModTime.Compare(b.ModTime)
	},
	ByCreated: func(a, b scanner.Entry) int {
		return a.CreateTime.Compare(b.CreateTime)
	},
	ByType: func(a, b scanner.Entry) int {
		return strings.Compare(a.Kind, b.Kind)
	},
}

var aliases = map[string]Strategy{
	"":         None,
	"none":     None,
	"random":   None,
	"name":     ByName,
	"size":     BySize,
	"mtime":    ByModified,
	"modified": ByModified,
	"ctime":    ByCreated,
	"created":  ByCreated,
	"type":     ByType,
	"kind":     ByType,
}

// Parse 将字符串解析为排序方式
func Parse(s string) (Strategy, error) {
	if st, ok := aliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return "", fmt.Errorf("未知的排序方式: %q", s)
}

// Names returns the canonical strategy names.
func Names() []string {
	return []string{string(None), string(ByName), string(BySize), string(ByModified), string(ByCreated), string(ByType)}
}

func (s Strategy) Valid() bool {
	if s == None {
		return true
	}
	_, ok := strategies[s]
	return ok
}

// NeedsKind 按类型排序时需要在列表阶段检测文件类型
func (s Strategy) NeedsKind() bool {
	return s == ByType
}

func (s Strategy) String() string {
	return string(s)
}

// Sort 原地稳定排序。reverse 只反转主键，主键相同时按文件名升序。
// None 保持列表原有顺序，忽略 reverse。
func Sort(entries []scanner.Entry, s Strategy, reverse bool) {
	primary, ok := strategies[s]
	if !ok {
		return
	}

	slices.SortStableFunc(entries, func(a, b scanner.Entry) int {
		c := primary(a, b)
		if reverse {
			c = -c
		}
		if c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}
