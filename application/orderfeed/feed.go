package orderfeed

import (
	"context"
	"sync"

	"github.com/heolazz/aerotech/model"
	orderRepo "github.com/heolazz/aerotech/repository/order"
	"github.com/heolazz/aerotech/thirdparty/rabbitmq"
	"github.com/heolazz/aerotech/utils/logger"
	"go.uber.org/zap"
)

// Feed pushes wholesale order-list snapshots to subscribers whenever the
// stored order set changes. Subscribers replace their copy on every
// delivery; nothing is merged incrementally.
type Feed interface {
	Start(ctx context.Context) error
	Subscribe(ctx context.Context) (<-chan []model.OrderEntity, func())
}

// EventSource delivers order change notifications to a handler until ctx
// is cancelled. *rabbitmq.Consumer is the production implementation.
type EventSource interface {
	Start(ctx context.Context, handler func(rabbitmq.OrderEventMessage) error) error
}

type feedImpl struct {
	orderRepo orderRepo.OrderRepository
	events    EventSource

	mu     sync.Mutex
	subs   map[uint64]chan []model.OrderEntity
	nextID uint64
}

func NewFeed(orderRepo orderRepo.OrderRepository, events EventSource) Feed {
	return &feedImpl{
		orderRepo: orderRepo,
		events:    events,
		subs:      make(map[uint64]chan []model.OrderEntity),
	}
}

// Start attaches the feed to the order event stream. Each event triggers a
// full re-read of the order list; the event payload itself is only a
// change notification.
func (f *feedImpl) Start(ctx context.Context) error {
	if f.events == nil {
		return nil
	}
	return f.events.Start(ctx, func(rabbitmq.OrderEventMessage) error {
		return f.refresh(ctx)
	})
}

// Subscribe registers a snapshot channel seeded with the current order
// list. The returned cancel func (or ctx cancellation) tears the
// subscription down so nothing is delivered after disposal.
func (f *feedImpl) Subscribe(ctx context.Context) (<-chan []model.OrderEntity, func()) {
	ch := make(chan []model.OrderEntity, 1)

	// seed before registering so the initial send cannot race a teardown
	if snapshot, err := f.orderRepo.ListAll(ctx); err == nil {
		ch <- snapshot
	} else {
		logger.Error("[Subscribe] error orderRepo.ListAll", zap.String("error", err.Error()))
	}

	f.mu.Lock()
	f.nextID++
	id := f.nextID
	f.subs[id] = ch
	f.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subs, id)
			close(ch)
			f.mu.Unlock()
		})
	}

	go func() {
		<-ctx.Done()
		cancel()
	}()

	return ch, cancel
}

func (f *feedImpl) refresh(ctx context.Context) error {
	snapshot, err := f.orderRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[refresh] error orderRepo.ListAll", zap.String("error", err.Error()))
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs {
		// latest-wins: drop the stale snapshot if the subscriber is behind
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snapshot:
		default:
		}
	}
	return nil
}
