package separator

import (
	"bytes"
	"fmt"
	"slices"
	"time"
)

// Report 整理前的摘要
type Report struct {
	WorkDir     string
	FileCount   int
	FolderCount int
	FirstFolder string // 没有文件时为空
	LastFolder  string
}

func (r *Report) String() string {
	var buf bytes.Buffer
	for i, row := range r.Rows() {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "%s: %s", row[0], row[1])
	}
	return buf.String()
}

// Rows 按顺序返回摘要的键值对
func (r *Report) Rows() [][2]string {
	first, last := r.FirstFolder, r.LastFolder
	if r.FolderCount == 0 {
		first, last = "none", "none"
	}
	return [][2]string{
		{"current directory", r.WorkDir},
		{"number of files", fmt.Sprint(r.FileCount)},
		{"number of folders to create", fmt.Sprint(r.FolderCount)},
		{"start folder", first},
		{"end folder", last},
	}
}

// Result 移动结果统计
type Result struct {
	Total     int
	Moved     int
	Created   int
	Folders   []string
	Failed    []*MoveError
	DryRun    bool
	StartTime time.Time
	EndTime   time.Time
}

func (r *Result) record(folder string) {
	r.Moved++
	if !slices.Contains(r.Folders, folder) {
		r.Folders = append(r.Folders, folder)
	}
}

func (r *Result) String() string {
	var buf bytes.Buffer

	buf.WriteString("========== 移动统计 ==========\n")
	if r.DryRun {
		buf.WriteString("预览模式，未修改任何文件\n")
	}
	buf.WriteString(fmt.Sprintf("总文件数: %d\n", r.Total))
	buf.WriteString(fmt.Sprintf("已移动: %d\n", r.Moved))
	buf.WriteString(fmt.Sprintf("失败: %d\n", len(r.Failed)))
	buf.WriteString(fmt.Sprintf("使用目录数: %d（新建 %d）\n", len(r.Folders), r.Created))
	if !r.EndTime.IsZero() {
		buf.WriteString(fmt.Sprintf("耗时: %v\n", r.EndTime.Sub(r.StartTime).Round(time.Millisecond)))
	}
	buf.WriteString("============================")

	return buf.String()
}
