package config

import (
	"context"
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher 监听配置文件变化，变更后重新加载并回调最新配置。
// 网格参数由调用方在回调里重算；加载或校验失败时保留上一份配置。
type Watcher struct {
	path     string
	cooldown time.Duration
	fw       *fsnotify.Watcher

	lastReload time.Time
}

// NewWatcher 创建基于 fsnotify 的配置监听器。cooldown 用于合并
// 编辑器连续写入触发的重复事件，<= 0 时不去重。
func NewWatcher(path string, cooldown time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(path); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch config file: %w", err)
	}
	return &Watcher{path: path, cooldown: cooldown, fw: fw}, nil
}

// Start blocks until ctx is done; onUpdate receives each successfully reloaded config.
func (w *Watcher) Start(ctx context.Context, onUpdate func(AppConfig)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			// 只关心写入与重建
			if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 {
				continue
			}
			if w.cooldown > 0 && time.Since(w.lastReload) < w.cooldown {
				continue
			}
			cfg, err := LoadWithEnvOverrides(w.path)
			if err != nil {
				continue
			}
			w.lastReload = time.Now()
			if onUpdate != nil {
				onUpdate(cfg)
			}
		case _, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
		}
	}
}

// Close 停止监听。
func (w *Watcher) Close() error {
	return w.fw.Close()
}
