package vessel

import (
	"testing"
	"time"
)

func TestEmitProxyCreated(_ *testing.T) {
	// Should not panic
	emitProxyCreated("map[string]int", ShapeTypedMap)
}

func TestEmitClassifyMiss(_ *testing.T) {
	emitClassifyMiss("int")
}

func TestEmitSequenceDrained(_ *testing.T) {
	emitSequenceDrained("chan int", 3, 100*time.Microsecond)
}

func TestSignalVariables(t *testing.T) {
	// Verify signals are properly initialized
	signals := []struct {
		name   string
		signal interface{}
	}{
		{"SignalProxyCreated", SignalProxyCreated},
		{"SignalClassifyMiss", SignalClassifyMiss},
		{"SignalSequenceDrained", SignalSequenceDrained},
	}

	for _, s := range signals {
		if s.signal == nil {
			t.Errorf("%s is nil", s.name)
		}
	}
}

func TestKeyVariables(t *testing.T) {
	// Verify keys are properly initialized
	keys := []struct {
		name string
		key  interface{}
	}{
		{"KeyTypeName", KeyTypeName},
		{"KeyShape", KeyShape},
		{"KeyCount", KeyCount},
		{"KeyDuration", KeyDuration},
	}

	for _, k := range keys {
		if k.key == nil {
			t.Errorf("%s is nil", k.name)
		}
	}
}
