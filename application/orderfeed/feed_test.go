package orderfeed_test

import (
	"context"
	"testing"
	"time"

	"github.com/heolazz/aerotech/application/orderfeed"
	"github.com/heolazz/aerotech/constant"
	ordermocks "github.com/heolazz/aerotech/mocks/repository/order"
	"github.com/heolazz/aerotech/model"
	"github.com/heolazz/aerotech/thirdparty/rabbitmq"
	"github.com/stretchr/testify/mock"
)

// stubEventSource hands the registered handler back to the test so order
// events can be injected directly.
type stubEventSource struct {
	handler func(rabbitmq.OrderEventMessage) error
}

func (s *stubEventSource) Start(_ context.Context, handler func(rabbitmq.OrderEventMessage) error) error {
	s.handler = handler
	return nil
}

func TestFeed_Subscribe_SeedsCurrentSnapshot(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	feed := orderfeed.NewFeed(orderRepo, nil)

	stored := []model.OrderEntity{
		{OrderID: "DR-1A2B3C4D5E", Status: constant.OrderStatusPending},
		{OrderID: "DR-0F9E8D7C6B", Status: constant.OrderStatusShipped},
	}
	orderRepo.On("ListAll", mock.Anything).Return(stored, nil).Once()

	ch, cancel := feed.Subscribe(context.Background())
	defer cancel()

	select {
	case snapshot := <-ch:
		if len(snapshot) != 2 {
			t.Fatalf("len(snapshot) = %d, want 2", len(snapshot))
		}
		if snapshot[0].OrderID != "DR-1A2B3C4D5E" {
			t.Fatalf("snapshot[0].OrderID = %q, want DR-1A2B3C4D5E", snapshot[0].OrderID)
		}
	case <-time.After(time.Second):
		t.Fatal("no initial snapshot delivered")
	}
}

func TestFeed_Subscribe_CancelClosesChannel(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	feed := orderfeed.NewFeed(orderRepo, nil)

	orderRepo.On("ListAll", mock.Anything).Return([]model.OrderEntity{}, nil).Once()

	ch, cancel := feed.Subscribe(context.Background())
	<-ch

	cancel()
	// cancel is idempotent
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("received a snapshot after cancel")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestFeed_Subscribe_ContextCancellationTearsDown(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	feed := orderfeed.NewFeed(orderRepo, nil)

	orderRepo.On("ListAll", mock.Anything).Return([]model.OrderEntity{}, nil).Once()

	ctx, cancelCtx := context.WithCancel(context.Background())
	ch, cancel := feed.Subscribe(ctx)
	defer cancel()
	<-ch

	cancelCtx()

	select {
	case _, ok := <-ch:
		if ok {
			t.Fatal("received a snapshot after context cancellation")
		}
	case <-time.After(time.Second):
		t.Fatal("channel not closed after context cancellation")
	}
}

func TestFeed_EventTriggersWholesaleRebroadcast(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	source := &stubEventSource{}
	feed := orderfeed.NewFeed(orderRepo, source)

	if err := feed.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if source.handler == nil {
		t.Fatal("Start() did not register an event handler")
	}

	orderRepo.On("ListAll", mock.Anything).Return([]model.OrderEntity{
		{OrderID: "DR-1A2B3C4D5E", Status: constant.OrderStatusPending},
	}, nil).Once()

	ch, cancel := feed.Subscribe(context.Background())
	defer cancel()
	<-ch

	// the event is only a change notification; the delivered snapshot is
	// re-read from the store and replaces the subscriber's copy wholesale
	orderRepo.On("ListAll", mock.Anything).Return([]model.OrderEntity{
		{OrderID: "DR-F00DF00D01", Status: constant.OrderStatusPending},
		{OrderID: "DR-1A2B3C4D5E", Status: constant.OrderStatusShipped},
	}, nil).Once()

	if err := source.handler(rabbitmq.OrderEventMessage{
		Event:   rabbitmq.EventOrderStatusChanged,
		OrderID: "DR-1A2B3C4D5E",
		Status:  constant.OrderStatusShipped,
	}); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	select {
	case snapshot := <-ch:
		if len(snapshot) != 2 {
			t.Fatalf("len(snapshot) = %d, want 2", len(snapshot))
		}
		if snapshot[0].OrderID != "DR-F00DF00D01" {
			t.Fatalf("snapshot[0].OrderID = %q, want DR-F00DF00D01", snapshot[0].OrderID)
		}
		if snapshot[1].Status != constant.OrderStatusShipped {
			t.Fatalf("snapshot[1].Status = %s, want SHIPPED", snapshot[1].Status)
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered after the event")
	}
}

func TestFeed_EventKeepsLatestSnapshotOnly(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	source := &stubEventSource{}
	feed := orderfeed.NewFeed(orderRepo, source)

	if err := feed.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	orderRepo.On("ListAll", mock.Anything).Return([]model.OrderEntity{}, nil).Once()
	ch, cancel := feed.Subscribe(context.Background())
	defer cancel()
	<-ch

	// two events land before the subscriber reads; the stale snapshot is
	// dropped and only the second survives
	orderRepo.On("ListAll", mock.Anything).Return([]model.OrderEntity{
		{OrderID: "DR-1A2B3C4D5E"},
	}, nil).Once()
	orderRepo.On("ListAll", mock.Anything).Return([]model.OrderEntity{
		{OrderID: "DR-1A2B3C4D5E"},
		{OrderID: "DR-F00DF00D01"},
	}, nil).Once()

	event := rabbitmq.OrderEventMessage{Event: rabbitmq.EventOrderCreated}
	if err := source.handler(event); err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if err := source.handler(event); err != nil {
		t.Fatalf("handler error = %v", err)
	}

	select {
	case snapshot := <-ch:
		if len(snapshot) != 2 {
			t.Fatalf("len(snapshot) = %d, want 2 (latest only)", len(snapshot))
		}
	case <-time.After(time.Second):
		t.Fatal("no snapshot delivered after the events")
	}
}

func TestFeed_Start_NoConsumerIsNoop(t *testing.T) {
	orderRepo := ordermocks.NewOrderRepository(t)
	feed := orderfeed.NewFeed(orderRepo, nil)

	if err := feed.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
}
