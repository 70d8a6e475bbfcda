package event

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	handled := false

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		if event.Type != eventType {
			t.Errorf("Expected event type %s, got %s", eventType, event.Type)
		}
		if event.Payload.(string) != "payload" {
			t.Errorf("Expected payload 'payload', got %v", event.Payload)
		}
		handled = true
		return nil
	})

	err := bus.Publish(context.Background(), Event{
		Version: "1.0",
		Type:    eventType,
		Payload: "payload",
	})

	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if !handled {
		t.Error("Handler was not called")
	}
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")
	count := 0

	handler := func(ctx context.Context, event Event) error {
		count++
		return nil
	}

	bus.Subscribe(eventType, handler)
	bus.Subscribe(eventType, handler)

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err != nil {
		t.Errorf("Publish returned error: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 handlers to be called, got %d", count)
	}
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	eventType := Type("test_event")

	bus.Subscribe(eventType, func(ctx context.Context, event Event) error {
		return errors.New("handler error")
	})

	err := bus.Publish(context.Background(), Event{Version: "1.0", Type: eventType})
	if err == nil {
		t.Error("Expected error from Publish, got nil")
	}
}

func TestMemoryBus_NoSubscribers(t *testing.T) {
	bus := NewMemoryBus()

	if err := bus.Publish(context.Background(), NewGameStartedEvent("session-1")); err != nil {
		t.Errorf("Publish without subscribers returned error: %v", err)
	}
}

func TestNewGameStartedEvent(t *testing.T) {
	evt := NewGameStartedEvent("session-42")

	if evt.Type != GameStarted {
		t.Errorf("Expected type %s, got %s", GameStarted, evt.Type)
	}
	if evt.Version != EventSchemaVersion {
		t.Errorf("Expected version %s, got %s", EventSchemaVersion, evt.Version)
	}
	if evt.GetMetadataValue("session_id") != "session-42" {
		t.Errorf("Expected session_id metadata, got %v", evt.GetMetadataValue("session_id"))
	}

	payload, err := DecodePayload[GameStartedPayloadV1](evt.Payload)
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if payload.SessionID != "session-42" {
		t.Errorf("Expected session-42, got %s", payload.SessionID)
	}
}

func TestDecodePayload_FromMap(t *testing.T) {
	payload, err := DecodePayload[GameStartedPayloadV1](map[string]interface{}{"session_id": "abc"})
	if err != nil {
		t.Fatalf("DecodePayload failed: %v", err)
	}
	if payload.SessionID != "abc" {
		t.Errorf("Expected abc, got %s", payload.SessionID)
	}
}
