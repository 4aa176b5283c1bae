package internal

const (
	// 默认每个目录的文件数
	DefaultFilesPerDir = 50

	// 默认目录名前缀
	DefaultFolderPrefix = "folder-"

	// 默认起始目录编号
	DefaultStartIndex = 1

	// 默认排序方式（不排序）
	DefaultSort = "none"

	// 锁文件名前缀，锁文件位于系统临时目录
	LockFilePrefix = "files-mover-"
)
