package scanner

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/djherbis/times"
	"github.com/h2non/filetype"
	"github.com/spf13/afero"

	"github.com/moyu-x/files-mover/pkg/logger"
)

// FileHeaderSize 文件类型检测所需的文件头部大小（字节）
const FileHeaderSize = 261

// UnknownKind 无法识别类型且没有扩展名的文件
const UnknownKind = "unknown"

// Entry 列表快照中的一个文件
type Entry struct {
	Name       string
	Path       string
	Size       int64
	ModTime    time.Time
	CreateTime time.Time
	Kind       string
}

// Lister 列出工作目录下的文件（不递归）
type Lister struct {
	Fs         afero.Fs
	DetectKind bool
	exclude    map[string]struct{}
}

func NewLister(fs afero.Fs) *Lister {
	return &Lister{
		Fs:      fs,
		exclude: make(map[string]struct{}),
	}
}

// Exclude 跳过指定路径（按绝对路径比较）
func (l *Lister) Exclude(paths ...string) {
	if l.exclude == nil {
		l.exclude = make(map[string]struct{})
	}
	for _, p := range paths {
		if p == "" {
			continue
		}
		if abs, err := filepath.Abs(p); err == nil {
			p = abs
		}
		l.exclude[filepath.Clean(p)] = struct{}{}
	}
}

// List 返回 dir 下一层的所有文件，跳过目录和指向目录的符号链接
func (l *Lister) List(dir string) ([]Entry, error) {
	infos, err := afero.ReadDir(l.Fs, dir)
	if err != nil {
		return nil, fmt.Errorf("读取目录: %w", err)
	}

	entries := make([]Entry, 0, len(infos))
	for _, info := range infos {
		path := filepath.Join(dir, info.Name())

		if l.excluded(path) {
			logger.Get().Debug().Str("path", path).Msg("跳过排除的文件")
			continue
		}

		if info.Mode()&os.ModeSymlink != 0 {
			target, err := l.Fs.Stat(path)
			if err != nil {
				logger.Get().Debug().Err(err).Str("path", path).Msg("跳过失效的符号链接")
				continue
			}
			if target.IsDir() {
				continue
			}
		}

		if info.IsDir() {
			continue
		}

		entry := Entry{
			Name:       info.Name(),
			Path:       path,
			Size:       info.Size(),
			ModTime:    info.ModTime(),
			CreateTime: l.createTime(path, info),
		}

		if l.DetectKind {
			entry.Kind = l.detectKind(path)
		}

		entries = append(entries, entry)
	}

	logger.Get().Debug().Str("dir", dir).Int("count", len(entries)).Msg("文件列表完成")
	return entries, nil
}

func (l *Lister) excluded(path string) bool {
	if len(l.exclude) == 0 {
		return false
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	_, ok := l.exclude[filepath.Clean(path)]
	return ok
}

// createTime 只有真实文件系统才能读取创建时间，否则退回修改时间
func (l *Lister) createTime(path string, info os.FileInfo) time.Time {
	if _, ok := l.Fs.(*afero.OsFs); !ok {
		return info.ModTime()
	}

	ts, err := times.Stat(path)
	if err != nil {
		return info.ModTime()
	}
	if ts.HasBirthTime() {
		return ts.BirthTime()
	}
	if ts.HasChangeTime() {
		return ts.ChangeTime()
	}
	return ts.ModTime()
}

// detectKind 读取文件头部判断类型，无法识别时使用扩展名
func (l *Lister) detectKind(path string) string {
	head, err := l.readFileHeader(path, FileHeaderSize)
	if err == nil {
		kind, err := filetype.Match(head)
		if err == nil && kind != filetype.Unknown {
			return kind.Extension
		}
	} else {
		logger.Get().Debug().Err(err).Str("path", path).Msg("读取文件头部失败")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return UnknownKind
	}
	return ext
}

func (l *Lister) readFileHeader(path string, size int) ([]byte, error) {
	file, err := l.Fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	head := make([]byte, size)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return head[:n], nil
}
