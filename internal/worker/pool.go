package worker

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueEmail = "jobs:email"

	JobAlertaEstoque = "alerta_estoque"

	// maxTentativas is the number of failed runs before a job goes to the DLQ.
	maxTentativas = 3

	esperaMinima = time.Second
	esperaMaxima = 30 * time.Second
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type     string          `json:"type"`
	Payload  json.RawMessage `json:"payload"`
	Attempts int             `json:"attempts"`
}

// Processor handles the payload of one job type.
type Processor interface {
	Process(ctx context.Context, raw json.RawMessage) error
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
type Dispatcher struct {
	rdb *redis.Client
}

func NewDispatcher(rdb *redis.Client) *Dispatcher {
	return &Dispatcher{rdb: rdb}
}

// EnqueueAlertaEstoque pushes a low-stock notification job.
func (d *Dispatcher) EnqueueAlertaEstoque(ctx context.Context, alerta AlertaEstoquePayload) error {
	return d.enqueue(ctx, QueueEmail, JobAlertaEstoque, alerta)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	if d == nil || d.rdb == nil {
		return nil
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return push(ctx, d.rdb, queue, Job{Type: jobType, Payload: data})
}

func push(ctx context.Context, rdb *redis.Client, queue string, job Job) error {
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return rdb.LPush(ctx, queue, encoded).Err()
}

// StartWorkerPool launches numWorkers goroutines consuming QueueEmail.
// Each goroutine blocks on BRPOP, so idle workers cost nothing.
func StartWorkerPool(ctx context.Context, rdb *redis.Client, numWorkers int, processors map[string]Processor) {
	for i := 0; i < numWorkers; i++ {
		go runWorker(ctx, rdb, i, processors)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func runWorker(ctx context.Context, rdb *redis.Client, id int, processors map[string]Processor) {
	var espera time.Duration
	for {
		if ctx.Err() != nil {
			log.Info().Msgf("worker %d shutting down", id)
			return
		}
		// waits up to 5s then loops to check ctx
		result, err := rdb.BRPop(ctx, 5*time.Second, QueueEmail).Result()
		switch {
		case err == nil:
			espera = 0
		case errors.Is(err, redis.Nil), ctx.Err() != nil:
			espera = 0
			continue
		default:
			espera = proximaEspera(espera)
			log.Warn().Err(err).Int("worker", id).Dur("espera", espera).Msg("redis unavailable, backing off")
			select {
			case <-ctx.Done():
			case <-time.After(espera):
			}
			continue
		}
		if len(result) < 2 {
			continue
		}
		processJob(ctx, rdb, processors, result[0], result[1])
	}
}

// proximaEspera doubles the pause after each consecutive Redis error.
func proximaEspera(atual time.Duration) time.Duration {
	switch {
	case atual <= 0:
		return esperaMinima
	case atual*2 > esperaMaxima:
		return esperaMaxima
	}
	return atual * 2
}

// processJob runs one job. A failed job is pushed back with Attempts+1 until
// maxTentativas, then parked in the dead letter queue.
func processJob(ctx context.Context, rdb *redis.Client, processors map[string]Processor, queue, raw string) {
	var job Job
	if err := json.Unmarshal([]byte(raw), &job); err != nil {
		log.Error().Str("queue", queue).Err(err).Msg("failed to unmarshal job")
		SendToDLQ(ctx, rdb, queue, "desconhecido", json.RawMessage(raw), "payload ilegível", 0)
		return
	}
	p, ok := processors[job.Type]
	if !ok {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, "tipo de job sem processador", job.Attempts)
		return
	}

	err := p.Process(ctx, job.Payload)
	if err == nil {
		return
	}
	job.Attempts++
	if job.Attempts >= maxTentativas {
		SendToDLQ(ctx, rdb, queue, job.Type, job.Payload, err.Error(), job.Attempts)
		return
	}
	log.Warn().Err(err).Str("type", job.Type).Int("attempts", job.Attempts).Msg("job failed, requeueing")
	if perr := push(ctx, rdb, queue, job); perr != nil {
		log.Error().Err(perr).Str("queue", queue).Msg("failed to requeue job")
	}
}
