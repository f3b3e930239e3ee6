// Package shutdown предоставляет функциональность для корректного завершения приложения
// путем ожидания и обработки сигналов SIGINT и SIGTERM.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"

	"unotes/pkg/logger"
)

// Сообщения логгера.
const (
	LogHookFailed      = "shutdown hook failed"
	LogShutdownTimeout = "shutdown timed out before all hooks finished"
)

// Hook описывает именованный шаг завершения приложения.
type Hook struct {
	Name string
	Stop func(context.Context) error
}

// Wait блокирует выполнение до получения сигнала SIGINT или SIGTERM,
// затем выполняет все хуки в рамках заданного timeout. Ошибка любого
// хука логируется с его именем.
func Wait(timeout time.Duration, hooks ...Hook) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var wgp sync.WaitGroup
	for _, hook := range hooks {
		wgp.Add(1)
		go func(h Hook) {
			defer wgp.Done()
			if err := h.Stop(ctx); err != nil {
				logger.Log(ctx).Error(ctx, LogHookFailed,
					zap.String("hook", h.Name),
					zap.Error(err),
				)
			}
		}(hook)
	}

	done := make(chan struct{})
	go func() {
		wgp.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		logger.Log(ctx).Warn(ctx, LogShutdownTimeout)
	}
}
