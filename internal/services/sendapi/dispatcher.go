package sendapi

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DIMO-Network/ecobot/internal/messenger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultDispatchTimeout = 10 * time.Second

// Sender delivers a single reply.
type Sender interface {
	SendMessage(ctx context.Context, recipientID string, reply *messenger.Reply) error
}

// Dispatcher delivers replies in the background. The outcome of a delivery is
// logged and counted, never reported to the caller, and failed deliveries are
// not retried.
type Dispatcher struct {
	sender  Sender
	timeout time.Duration
	logger  *zerolog.Logger
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher. A non-positive timeout uses the default.
func NewDispatcher(sender Sender, timeout time.Duration, logger *zerolog.Logger) *Dispatcher {
	if timeout <= 0 {
		timeout = defaultDispatchTimeout
	}
	return &Dispatcher{
		sender:  sender,
		timeout: timeout,
		logger:  logger,
	}
}

// Dispatch starts delivering reply to recipientID and returns immediately.
func (d *Dispatcher) Dispatch(recipientID string, reply *messenger.Reply) {
	logger := d.logger.With().
		Str("delivery_id", uuid.NewString()).
		Str("psid", recipientID).
		Logger()

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				deliveriesTotal.WithLabelValues(statusFailed).Inc()
				logger.Error().Err(fmt.Errorf("panic: %v", r)).Msg("error sending the message")
			}
		}()

		// Detached from the inbound request, which has already been acknowledged.
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		defer cancel()

		start := time.Now()
		err := d.sender.SendMessage(logger.WithContext(ctx), recipientID, reply)
		deliveryLatency.Observe(time.Since(start).Seconds())
		if err != nil {
			deliveriesTotal.WithLabelValues(statusFailed).Inc()
			logger.Error().Err(err).Msg("error sending the message")
			return
		}
		deliveriesTotal.WithLabelValues(statusSent).Inc()
		logger.Info().Msg("message sent")
	}()
}

// Wait blocks until every dispatched delivery has finished.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
