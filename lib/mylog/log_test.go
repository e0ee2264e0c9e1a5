package mylog

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MarcGrol/shopcheckout/lib/mycontext"
)

func TestStandardLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newStandardLogger("checkout", buf)

	logger.Log(context.TODO(), "abc", SeverityInfo, "charged %d", 190)

	assert.Equal(t, "checkout - abc - INFO - charged 190\n", buf.String())
}

func TestStructuredLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := newStructuredLogger("checkout", buf)
	c := mycontext.WithTrace(context.TODO(), "trace-1")

	logger.Log(c, "abc", SeverityWarn, "out of stock: %s", "Cheese")

	got := entry{}
	err := json.Unmarshal(buf.Bytes(), &got)
	assert.NoError(t, err)
	assert.Equal(t, entry{
		Component: "checkout",
		Labels:    map[string]string{"aggregate": "abc"},
		Trace:     "trace-1",
		Severity:  "WARN",
		Message:   "out of stock: Cheese",
	}, got)
}
