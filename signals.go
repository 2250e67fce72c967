package vessel

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for proxy events.
var (
	SignalProxyCreated    = capitan.NewSignal("vessel.proxy.created", "Proxy bound to a classified container")
	SignalClassifyMiss    = capitan.NewSignal("vessel.classify.miss", "Value matched no collection shape")
	SignalSequenceDrained = capitan.NewSignal("vessel.sequence.drained", "Single-pass sequence fully materialized")
)

// Keys for typed event data.
var (
	KeyTypeName = capitan.NewStringKey("type_name")
	KeyShape    = capitan.NewStringKey("shape")
	KeyCount    = capitan.NewIntKey("count")
	KeyDuration = capitan.NewDurationKey("duration")
)

// emitProxyCreated emits an event when a proxy is created.
func emitProxyCreated(typeName string, shape Shape) {
	capitan.Emit(context.Background(), SignalProxyCreated,
		KeyTypeName.Field(typeName),
		KeyShape.Field(shape.String()),
	)
}

// emitClassifyMiss emits an event when classification rejects a value.
func emitClassifyMiss(typeName string) {
	capitan.Emit(context.Background(), SignalClassifyMiss,
		KeyTypeName.Field(typeName),
	)
}

// emitSequenceDrained emits an event when a sequence is materialized.
func emitSequenceDrained(typeName string, count int, duration time.Duration) {
	capitan.Emit(context.Background(), SignalSequenceDrained,
		KeyTypeName.Field(typeName),
		KeyCount.Field(count),
		KeyDuration.Field(duration),
	)
}
