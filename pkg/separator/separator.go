package separator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/moyu-x/files-mover/internal"
	"github.com/moyu-x/files-mover/pkg/logger"
	"github.com/moyu-x/files-mover/pkg/scanner"
	"github.com/moyu-x/files-mover/pkg/sorter"
)

// Options 整理参数，构造后不再修改
type Options struct {
	WorkDir   string // 为空时使用当前工作目录
	Num       int    // 每个目录最多的文件数
	Prefix    string
	Start     int
	Sort      sorter.Strategy
	Reverse   bool     // 仅在 Sort 不为 None 时生效
	KeepGoing bool     // 移动失败时继续处理剩余文件，最后汇总错误
	DryRun    bool     // 只记录计划的移动，不修改文件系统
	Exclude   []string // 不参与整理的文件
	LockDir   string   // 为空时使用系统临时目录
}

func DefaultOptions() Options {
	return Options{
		Num:    internal.DefaultFilesPerDir,
		Prefix: internal.DefaultFolderPrefix,
		Start:  internal.DefaultStartIndex,
		Sort:   sorter.None,
	}
}

// Chunk 分配到同一个目标目录的一组文件
type Chunk struct {
	Index  int
	Folder string
	Files  []scanner.Entry
}

// Plan 一次整理的完整计划，基于同一个文件列表快照
type Plan struct {
	WorkDir string
	Files   []scanner.Entry
	Chunks  []Chunk
}

// Separator 将工作目录中的文件按每 Num 个一组移动到编号目录中
type Separator struct {
	opts Options
	fs   afero.Fs
}

func New(opts Options) (*Separator, error) {
	return NewWithFs(afero.NewOsFs(), opts)
}

// NewWithFs 只校验参数，不访问文件系统
func NewWithFs(fs afero.Fs, opts Options) (*Separator, error) {
	if opts.Sort == "" {
		opts.Sort = sorter.None
	}
	if err := validate(opts); err != nil {
		return nil, err
	}
	return &Separator{opts: opts, fs: fs}, nil
}

func validate(opts Options) error {
	if opts.Num <= 0 {
		return &ConfigurationError{Field: "num", Value: opts.Num, Err: ErrInvalidChunkSize}
	}
	if !opts.Sort.Valid() {
		return &ConfigurationError{Field: "sort", Value: opts.Sort, Err: ErrInvalidSort}
	}
	// 目标目录必须是工作目录的直接子目录
	if strings.ContainsAny(opts.Prefix, `/\`) || strings.Contains(opts.Prefix, "..") {
		return &ConfigurationError{Field: "prefix", Value: opts.Prefix, Err: ErrInvalidPrefix}
	}
	return nil
}

// FolderName 第 i 个（从 0 开始）目标目录的名称
func (s *Separator) FolderName(i int) string {
	return fmt.Sprintf("%s%d", s.opts.Prefix, s.opts.Start+i)
}

// FolderCount 返回 ceil(files / num)
func FolderCount(files, num int) int {
	if num <= 0 || files <= 0 {
		return 0
	}
	count := files / num
	if files%num != 0 {
		count++
	}
	return count
}

func (s *Separator) resolveDir() (string, error) {
	dir := s.opts.WorkDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", &PathError{Path: dir, Err: err}
		}
		dir = wd
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", &PathError{Path: dir, Err: err}
	}

	info, err := s.fs.Stat(abs)
	if err != nil {
		return "", &PathError{Path: abs, Err: err}
	}
	if !info.IsDir() {
		return "", &PathError{Path: abs, Err: ErrNotDirectory}
	}
	return abs, nil
}

// Plan 列出、排序并分组，不修改文件系统
func (s *Separator) Plan() (*Plan, error) {
	if err := validate(s.opts); err != nil {
		return nil, err
	}

	dir, err := s.resolveDir()
	if err != nil {
		return nil, err
	}

	lister := scanner.NewLister(s.fs)
	lister.DetectKind = s.opts.Sort.NeedsKind()
	lister.Exclude(s.opts.Exclude...)

	files, err := lister.List(dir)
	if err != nil {
		return nil, &PathError{Path: dir, Err: err}
	}

	sorter.Sort(files, s.opts.Sort, s.opts.Reverse)

	plan := &Plan{
		WorkDir: dir,
		Files:   files,
		Chunks:  make([]Chunk, 0, FolderCount(len(files), s.opts.Num)),
	}
	for i, start := 0, 0; start < len(files); i++ {
		end := start + min(s.opts.Num, len(files)-start)
		plan.Chunks = append(plan.Chunks, Chunk{
			Index:  s.opts.Start + i,
			Folder: s.FolderName(i),
			Files:  files[start:end],
		})
		start = end
	}

	return plan, nil
}

// Describe 生成整理前的摘要，只读
func (s *Separator) Describe() (*Report, error) {
	plan, err := s.Plan()
	if err != nil {
		return nil, err
	}

	report := &Report{
		WorkDir:     plan.WorkDir,
		FileCount:   len(plan.Files),
		FolderCount: len(plan.Chunks),
	}
	if report.FolderCount > 0 {
		report.FirstFolder = plan.Chunks[0].Folder
		report.LastFolder = plan.Chunks[len(plan.Chunks)-1].Folder
	}
	return report, nil
}

// Execute 创建目标目录并移动文件。
// 默认遇到第一个移动失败即停止；KeepGoing 时处理完所有文件后返回汇总错误。
// 已完成的移动不会回滚。
func (s *Separator) Execute() (*Result, error) {
	log := logger.Get().With().Str("run", uuid.NewString()).Logger()

	if err := validate(s.opts); err != nil {
		return nil, err
	}

	dir, err := s.resolveDir()
	if err != nil {
		return nil, err
	}

	if !s.opts.DryRun {
		lock, err := acquireLock(s.opts.LockDir, dir)
		if err != nil {
			return nil, err
		}
		defer lock.Unlock()
	}

	plan, err := s.Plan()
	if err != nil {
		return nil, err
	}

	result := &Result{
		Total:     len(plan.Files),
		DryRun:    s.opts.DryRun,
		StartTime: time.Now(),
	}
	defer func() { result.EndTime = time.Now() }()

	if len(plan.Files) == 0 {
		log.Warn().Str("dir", dir).Msg("没有需要移动的文件")
		return result, nil
	}

	log.Info().
		Str("dir", dir).
		Int("files", len(plan.Files)).
		Int("folders", len(plan.Chunks)).
		Str("sort", s.opts.Sort.String()).
		Bool("reverse", s.opts.Reverse).
		Msg("开始移动文件")

	var errs []error
	for _, chunk := range plan.Chunks {
		if err := s.moveChunk(log, plan.WorkDir, chunk, result); err != nil {
			if !s.opts.KeepGoing {
				return result, err
			}
			errs = append(errs, err)
		}
	}

	log.Info().
		Int("moved", result.Moved).
		Int("failed", len(result.Failed)).
		Msg("文件移动完成")

	return result, errors.Join(errs...)
}

func (s *Separator) moveChunk(log zerolog.Logger, workDir string, chunk Chunk, result *Result) error {
	folderPath := filepath.Join(workDir, chunk.Folder)
	folderReady := false
	var errs []error

	for _, entry := range chunk.Files {
		dst := filepath.Join(folderPath, entry.Name)

		if s.opts.DryRun {
			log.Info().Str("source", entry.Path).Str("destination", dst).Msg("计划移动")
			result.record(chunk.Folder)
			continue
		}

		// 目录在第一个文件移动前才创建
		if !folderReady {
			created, err := s.ensureFolder(folderPath)
			if err != nil {
				moveErr := &MoveError{Source: entry.Path, Destination: dst, Err: err}
				result.Failed = append(result.Failed, moveErr)
				log.Error().Err(err).Str("folder", folderPath).Msg("创建目标目录失败")
				if !s.opts.KeepGoing {
					return moveErr
				}
				errs = append(errs, moveErr)
				continue
			}
			if created {
				result.Created++
				log.Info().Str("folder", chunk.Folder).Msg("创建目录")
			}
			folderReady = true
		}

		if err := s.moveFile(entry.Path, dst); err != nil {
			result.Failed = append(result.Failed, err)
			log.Error().Err(err.Err).Str("source", entry.Path).Str("destination", dst).Msg("移动文件失败")
			if !s.opts.KeepGoing {
				return err
			}
			errs = append(errs, err)
			continue
		}

		result.record(chunk.Folder)
		log.Debug().Str("source", entry.Path).Str("destination", dst).Msg("文件已移动")
	}

	return errors.Join(errs...)
}

// ensureFolder 目录不存在时创建，已存在的目录直接复用
func (s *Separator) ensureFolder(path string) (bool, error) {
	info, err := s.fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, ErrNotDirectory
		}
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err := s.fs.Mkdir(path, 0755); err != nil {
		return false, err
	}
	return true, nil
}

// moveFile 目标已存在时失败，不覆盖也不重命名
func (s *Separator) moveFile(src, dst string) *MoveError {
	exists, err := afero.Exists(s.fs, dst)
	if err != nil {
		return &MoveError{Source: src, Destination: dst, Err: err}
	}
	if exists {
		return &MoveError{Source: src, Destination: dst, Err: ErrDestinationExists}
	}
	if err := s.fs.Rename(src, dst); err != nil {
		return &MoveError{Source: src, Destination: dst, Err: err}
	}
	return nil
}
