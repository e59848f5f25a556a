package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/vietanh2810/raffle-api/internal/config"
)

const defaultSweepSpec = "@every 1m"

// Worker runs the asynq server and the scheduler that enqueues the periodic
// end-date sweep.
type Worker struct {
	conf      *config.WorkerConfig
	handler   *Handler
	server    *asynq.Server
	scheduler *asynq.Scheduler
	client    *asynq.Client
}

func RedisOpt(conf *config.RedisConfig) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	}
}

func New(conf *config.WorkerConfig, redisOpt asynq.RedisClientOpt, handler *Handler) *Worker {
	concurrency := conf.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: concurrency,
		Queues: map[string]int{
			queueDefault: 1,
		},
		Logger: zap.S(),
		ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
			zap.L().Error("task failed", zap.String("type", task.Type()), zap.Error(err))
		}),
	})

	return &Worker{
		conf:      conf,
		handler:   handler,
		server:    server,
		scheduler: asynq.NewScheduler(redisOpt, &asynq.SchedulerOpts{Logger: zap.S()}),
		client:    asynq.NewClient(redisOpt),
	}
}

// Start runs the server and scheduler in the background and enqueues one
// sweep right away.
func (w *Worker) Start(ctx context.Context) error {
	spec := w.conf.ExpirySweepSpec
	if spec == "" {
		spec = defaultSweepSpec
	}

	task, err := NewSweepExpiredTask()
	if err != nil {
		return err
	}

	if _, err = w.scheduler.Register(spec, task); err != nil {
		return fmt.Errorf("w.scheduler.Register -> %w", err)
	}

	if err = w.server.Start(w.handler.Mux()); err != nil {
		return fmt.Errorf("w.server.Start -> %w", err)
	}

	if err = w.scheduler.Start(); err != nil {
		w.server.Shutdown()
		return fmt.Errorf("w.scheduler.Start -> %w", err)
	}

	if err = w.EnqueueSweep(ctx); err != nil {
		zap.L().Warn("initial sweep not enqueued", zap.Error(err))
	}

	zap.L().Info("worker started", zap.String("sweepSpec", spec))

	return nil
}

func (w *Worker) EnqueueSweep(ctx context.Context) error {
	task, err := NewSweepExpiredTask()
	if err != nil {
		return err
	}

	if _, err = w.client.EnqueueContext(ctx, task); err != nil {
		return fmt.Errorf("w.client.EnqueueContext -> %w", err)
	}

	return nil
}

func (w *Worker) Shutdown() {
	w.scheduler.Shutdown()
	w.server.Shutdown()
	if err := w.client.Close(); err != nil {
		zap.L().Warn("asynq client close failed", zap.Error(err))
	}
}
