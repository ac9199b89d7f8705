package network

import (
	"testing"

	"github.com/BanaanaaHammock/uMMORPG-2/pkg/api"
)

func TestSendToReachesOnlySubscriber(t *testing.T) {
	b := NewBroadcaster()
	ch1 := b.Register("ent1")
	ch2 := b.Register("ent2")

	b.SendTo("ent1", api.ServerResponse{Tick: 7})

	select {
	case msg := <-ch1:
		if msg.Tick != 7 {
			t.Errorf("Expected tick 7, got %d", msg.Tick)
		}
	default:
		t.Fatal("Expected message on subscriber channel")
	}

	select {
	case <-ch2:
		t.Error("Expected no message for other subscriber")
	default:
	}
}

func TestRegisterTakesOverOldSession(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("ent1")
	fresh := b.Register("ent1")

	// Старая сессия получает закрытие канала как сигнал отключения.
	if _, ok := <-old; ok {
		t.Error("Expected old channel closed on takeover")
	}

	b.SendTo("ent1", api.ServerResponse{Tick: 1})
	select {
	case <-fresh:
	default:
		t.Error("Expected new session to receive messages")
	}
}

func TestUnregisterIgnoresForeignChannel(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("ent1")
	fresh := b.Register("ent1")

	// Отложенный Unregister умершей сессии не должен снять новую.
	b.Unregister("ent1", old)
	if !b.HasSubscriber("ent1") {
		t.Fatal("Expected new session to survive stale unregister")
	}

	b.Unregister("ent1", fresh)
	if b.HasSubscriber("ent1") {
		t.Error("Expected subscriber removed")
	}
	if b.SubscriberCount() != 0 {
		t.Errorf("Expected zero subscribers, got %d", b.SubscriberCount())
	}
}

func TestSlowSubscriberDoesNotBlock(t *testing.T) {
	b := NewBroadcaster()
	b.Register("ent1")

	// Буфер канала 100; лишние снапшоты молча теряются.
	for i := 0; i < 300; i++ {
		b.Broadcast(api.ServerResponse{Tick: int64(i)})
	}
}
