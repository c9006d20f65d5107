// Package safe_close 提供优雅关闭的协调原语
package safe_close

import (
	"sync"
)

// SafeClose coordinates graceful shutdown of attached goroutines
// SafeClose 协调已注册协程的优雅关闭
//
// Usage: each long-running component Attaches a func that waits on
// closeSignal and calls done() when fully stopped. SendCloseSignal
// broadcasts the close request; WaitClosed blocks until every attached
// func has called done().
// 用法：每个常驻组件通过 Attach 注册一个函数，函数内部监听 closeSignal，
// 完全停止后调用 done()。SendCloseSignal 广播关闭请求；WaitClosed 阻塞
// 直到所有已注册函数都调用了 done()。
type SafeClose struct {
	mu          sync.Mutex
	closeSignal chan struct{}
	closed      bool
	err         error
	wg          sync.WaitGroup
}

// NewSafeClose creates a SafeClose instance
// NewSafeClose 创建 SafeClose 实例
func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeSignal: make(chan struct{}),
	}
}

// Attach registers a goroutine participating in graceful shutdown
// Attach 注册一个参与优雅关闭的协程
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var once sync.Once
	done := func() {
		once.Do(s.wg.Done)
	}
	go f(done, s.closeSignal)
}

// SendCloseSignal broadcasts the close signal, recording the first error
// SendCloseSignal 广播关闭信号，记录首个错误
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.err = err
	close(s.closeSignal)
}

// WaitClosed blocks until every attached goroutine has reported done
// WaitClosed 阻塞直到所有已注册协程上报完成
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// CloseSignal exposes the close channel for select loops
// CloseSignal 暴露关闭信号通道供 select 使用
func (s *SafeClose) CloseSignal() <-chan struct{} {
	return s.closeSignal
}
