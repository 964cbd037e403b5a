package eventbus

import (
	"context"
	"sync"

	"aura-service/internal/app/contracts"
	"aura-service/internal/pkg/exceptions"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Dispatcher runs one consuming goroutine per subscribed queue. Deliveries
// are manually acked: a handler error nacks with requeue so the message is
// redelivered, which means handlers must be idempotent.
type Dispatcher struct {
	conn     *amqp.Connection
	log      *zap.Logger
	prefetch int

	handlers map[string]contracts.EventHandler

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewDispatcher(conn *amqp.Connection, log *zap.Logger, prefetch int) *Dispatcher {
	if prefetch <= 0 {
		prefetch = 1
	}
	return &Dispatcher{
		conn:     conn,
		log:      log,
		prefetch: prefetch,
		handlers: make(map[string]contracts.EventHandler),
	}
}

// Subscribe registers a handler for a queue. Must be called before Start.
func (d *Dispatcher) Subscribe(queueName string, handler contracts.EventHandler) {
	d.handlers[queueName] = handler
}

// Start declares every subscribed queue and begins consuming. It returns
// immediately; consumption runs until Stop.
func (d *Dispatcher) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	for queueName, handler := range d.handlers {
		ch, err := d.conn.Channel()
		if err != nil {
			cancel()
			return exceptions.ErrRabbitMQConsume(err, queueName)
		}

		_, err = ch.QueueDeclare(queueName, true, false, false, false, nil)
		if err != nil {
			cancel()
			return exceptions.ErrRabbitMQConsume(err, queueName)
		}

		if err := ch.Qos(d.prefetch, 0, false); err != nil {
			cancel()
			return exceptions.ErrRabbitMQConsume(err, queueName)
		}

		deliveries, err := ch.Consume(
			queueName, // queue
			"",        // consumer
			false,     // autoAck
			false,     // exclusive
			false,     // noLocal
			false,     // noWait
			nil,       // args
		)
		if err != nil {
			cancel()
			return exceptions.ErrRabbitMQConsume(err, queueName)
		}

		d.wg.Add(1)
		go d.consume(ctx, ch, queueName, deliveries, handler)
	}
	return nil
}

// Stop cancels every consumer and waits for in-flight handlers to finish.
func (d *Dispatcher) Stop() {
	if d.cancel != nil {
		d.cancel()
	}
	d.wg.Wait()
}

func (d *Dispatcher) consume(ctx context.Context, ch *amqp.Channel, queueName string, deliveries <-chan amqp.Delivery, handler contracts.EventHandler) {
	defer d.wg.Done()
	defer ch.Close()

	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				d.log.Warn("delivery channel closed", zap.String("queue", queueName))
				return
			}
			d.handle(ctx, queueName, delivery, handler)
		}
	}
}

func (d *Dispatcher) handle(ctx context.Context, queueName string, delivery amqp.Delivery, handler contracts.EventHandler) {
	if err := handler(ctx, delivery.Body); err != nil {
		d.log.Error("event handler failed, requeueing",
			zap.String("queue", queueName),
			zap.Error(err),
		)
		if nackErr := delivery.Nack(false, true); nackErr != nil {
			d.log.Error("failed to nack delivery", zap.String("queue", queueName), zap.Error(nackErr))
		}
		return
	}

	if ackErr := delivery.Ack(false); ackErr != nil {
		d.log.Error("failed to ack delivery", zap.String("queue", queueName), zap.Error(ackErr))
	}
}
