package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NoopRecorder{}
	assert.NotPanics(t, func() {
		r.RecordAssertion("boolean", "be_true", true)
		r.RecordSuite("smoke", 1, 0, time.Second)
		r.SetActiveSuites(2)
	})
}

func TestResult(t *testing.T) {
	assert.Equal(t, "passed", Result(true))
	assert.Equal(t, "failed", Result(false))
}
