// Package notify delivers user-facing emails. The lending engines never call it
// directly; higher level orchestration hands messages to an Async dispatcher so a
// slow or failing transport cannot stall a borrow or a payment.
package notify

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/Astemirdum/lending-service/pkg/circuit_breaker"
	"github.com/Astemirdum/lending-service/pkg/kafka"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrQueueFull = errors.New("notification queue is full")
	ErrClosed    = errors.New("notification queue is closed")
)

type Email struct {
	To      string
	Subject string
	Body    string
	Kind    string
}

type Sender interface {
	Send(ctx context.Context, msg Email) error
}

// LogSender is the mock mode: messages are only logged.
type LogSender struct {
	log *zap.Logger
}

func NewLogSender(log *zap.Logger) *LogSender {
	return &LogSender{log: log.Named("mail")}
}

func (s *LogSender) Send(_ context.Context, msg Email) error {
	s.log.Info("email",
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
		zap.String("kind", msg.Kind),
	)
	return nil
}

// KafkaSender publishes email envelopes for an external mailer.
type KafkaSender struct {
	producer sarama.SyncProducer
	topic    string
	cb       circuit_breaker.CircuitBreaker
	now      func() time.Time
}

func NewKafkaSender(producer sarama.SyncProducer, topic string, cb circuit_breaker.CircuitBreaker) *KafkaSender {
	if topic == "" {
		topic = kafka.NotificationTopic
	}
	return &KafkaSender{
		producer: producer,
		topic:    topic,
		cb:       cb,
		now:      time.Now,
	}
}

func (s *KafkaSender) Send(_ context.Context, msg Email) error {
	data, err := json.Marshal(kafka.EmailEnvelope{
		To:        msg.To,
		Subject:   msg.Subject,
		Body:      msg.Body,
		Kind:      msg.Kind,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return errors.Wrap(err, "marshal envelope")
	}
	pm := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(msg.To),
		Value: sarama.ByteEncoder(data),
	}
	send := func() error {
		_, _, err := s.producer.SendMessage(pm)
		return err
	}
	if s.cb == nil {
		return errors.Wrap(send(), "producer.SendMessage")
	}
	if err := s.cb.Call(send); err != nil {
		return errors.Wrap(err, "producer.SendMessage")
	}
	return nil
}

// Async queues messages for a background worker. Send never blocks; when the
// buffer is full the message is dropped and ErrQueueFull returned, after Close
// it returns ErrClosed.
type Async struct {
	next  Sender
	log   *zap.Logger
	queue chan Email
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewAsync(next Sender, buffer int, log *zap.Logger) *Async {
	if buffer <= 0 {
		buffer = 64
	}
	a := &Async{
		next:  next,
		log:   log.Named("notify"),
		queue: make(chan Email, buffer),
	}
	a.wg.Add(1)
	go a.run()
	return a
}

func (a *Async) Send(_ context.Context, msg Email) error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.closed {
		return ErrClosed
	}
	select {
	case a.queue <- msg:
		return nil
	default:
		a.log.Warn("drop notification", zap.String("to", msg.To), zap.String("kind", msg.Kind))
		return ErrQueueFull
	}
}

// Close drains the queue and stops the worker.
func (a *Async) Close() {
	a.mu.Lock()
	if !a.closed {
		a.closed = true
		close(a.queue)
	}
	a.mu.Unlock()
	a.wg.Wait()
}

func (a *Async) run() {
	defer a.wg.Done()
	for msg := range a.queue {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := a.next.Send(ctx, msg); err != nil {
			a.log.Error("send notification", zap.String("to", msg.To), zap.Error(err))
		}
		cancel()
	}
}
