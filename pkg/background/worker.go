package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"dispatch/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL интервал между запусками.
	TTL() time.Duration
	Do(context.Context) error
	// Info имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Worker struct {
	log   handlerLogger
	tasks []Task
}

// New прогревает задачи: каждая выполняется один раз синхронно, первая ошибка
// или паника возвращается и Worker не создается. После прогрева задачи крутятся
// по своему TTL, пока не отменен ctx.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			return worker.warmUp(initCtx, task)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		go worker.runBackgroundTask(ctx, task)
	}

	return worker, nil
}

func (w *Worker) warmUp(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			err = fmt.Errorf("init panic: %v\n%s", r, stack)
			w.log.Error("Task panic during init",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
		}
	}()

	w.log.Info("Initializing",
		logger.NewField("task", task.Info()),
	)
	return task.Do(ctx)
}

func (w *Worker) runBackgroundTask(ctx context.Context, task Task) {
	ttl := task.TTL()
	if ttl <= 0 {
		w.log.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("task", task.Info()),
			logger.NewField("TTL", ttl),
		)
		return
	}
	w.log.Info("Starting periodic execution",
		logger.NewField("task", task.Info()),
		logger.NewField("TTL", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Stopping task (context cancelled)",
				logger.NewField("task", task.Info()),
			)
			return
		case <-ticker.C:
			w.executeTaskSafely(ctx, task)
		}
	}
}

func (w *Worker) executeTaskSafely(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.log.Error("Background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
	}()

	if err := task.Do(ctx); err != nil {
		w.log.Error("Background task failed",
			logger.NewField("task", task.Info()),
			logger.NewField("error", err),
		)
	}
}
