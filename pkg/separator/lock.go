package separator

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/gofrs/flock"

	"github.com/moyu-x/files-mover/internal"
)

// lockPath 锁文件放在工作目录之外，避免被当作待移动文件列出
func lockPath(lockDir, workDir string) string {
	if lockDir == "" {
		lockDir = os.TempDir()
	}
	name := fmt.Sprintf("%s%016x.lock", internal.LockFilePrefix, xxhash.Sum64String(workDir))
	return filepath.Join(lockDir, name)
}

// acquireLock 非阻塞加锁，同一工作目录同时只允许一次整理。
// 解锁后不删除锁文件：删除会让另一个进程锁住已被移除的旧文件。
// 每个工作目录在锁目录中只保留一个锁文件，后续运行复用。
func acquireLock(lockDir, workDir string) (*flock.Flock, error) {
	lock := flock.New(lockPath(lockDir, workDir))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("获取锁失败: %w", err)
	}
	if !ok {
		return nil, ErrLocked
	}
	return lock, nil
}
