package tracker

import (
	"path/filepath"
	"time"

	"github.com/haierkeys/daily-note-link-service/pkg/safe_close"

	"github.com/radovskyb/watcher"
	"go.uber.org/zap"
)

// VaultWatcher 轮询监听仓库目录并把文件变更写入 Tracker
type VaultWatcher struct {
	root     string
	interval time.Duration
	tracker  *Tracker
	logger   *zap.Logger
	w        *watcher.Watcher
}

// NewVaultWatcher 创建仓库监听器
// root 为仓库根目录的绝对路径
func NewVaultWatcher(root string, interval time.Duration, t *Tracker, logger *zap.Logger) *VaultWatcher {
	if interval <= 0 {
		interval = time.Second * 2
	}
	return &VaultWatcher{
		root:     root,
		interval: interval,
		tracker:  t,
		logger:   logger,
		w:        watcher.New(),
	}
}

// Start 启动监听，阻塞直到 closeSignal 关闭
// 通过 sc.Attach 注册，和 HTTP 服务共用同一套优雅关闭流程
func (vw *VaultWatcher) Start(sc *safe_close.SafeClose) {
	sc.Attach(func(done func(), closeSignal <-chan struct{}) {
		defer done()

		// Only notify write and create events.
		// 只通知写入和创建事件。
		vw.w.FilterOps(watcher.Write, watcher.Create)

		go func() {
			for {
				select {
				case event := <-vw.w.Event:
					if event.IsDir() {
						continue
					}
					rel, err := filepath.Rel(vw.root, event.Path)
					if err != nil {
						vw.logger.Warn("vault watcher path outside root", zap.String("path", event.Path))
						continue
					}
					if vw.tracker.Record(filepath.ToSlash(rel)) {
						vw.logger.Debug("vault watcher note change",
							zap.String("event", event.Op.String()),
							zap.String("path", filepath.ToSlash(rel)))
					}
				case err := <-vw.w.Error:
					vw.logger.Error("vault watcher error", zap.Error(err))
				case <-vw.w.Closed:
					return
				}
			}
		}()

		go func() {
			<-closeSignal
			vw.w.Close()
		}()

		if err := vw.w.AddRecursive(vw.root); err != nil {
			vw.logger.Error("vault watcher add error", zap.Error(err))
			return
		}

		vw.logger.Info("vault watcher started",
			zap.String("root", vw.root),
			zap.Duration("interval", vw.interval))

		// Start watching
		// 启动监听
		if err := vw.w.Start(vw.interval); err != nil {
			vw.logger.Error("vault watcher start error", zap.Error(err))
		}
	})
}
