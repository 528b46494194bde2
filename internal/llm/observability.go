package llm

import (
	"github.com/sirupsen/logrus"
)

// LLMCallEvent records metadata about a single LLM invocation.
type LLMCallEvent struct {
	Task      TaskType
	Provider  Provider
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about LLM calls for logging and metrics.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// LogObserver writes LLM call events to a logrus logger.
type LogObserver struct {
	logger logrus.FieldLogger
}

// NewLogObserver creates an Observer that logs events through logger.
func NewLogObserver(logger logrus.FieldLogger) *LogObserver {
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	entry := o.logger.WithFields(logrus.Fields{
		"task":       event.Task,
		"provider":   event.Provider,
		"model":      event.Model,
		"latency_ms": event.LatencyMs,
	})
	if !event.Success {
		entry.WithField("error_code", event.ErrorCode).Warn("llm_call")
		return
	}
	entry.Info("llm_call")
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}
