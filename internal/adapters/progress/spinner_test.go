package progress

import (
	"bytes"
	"context"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/trebuchet-org/solconf/internal/usecase"
)

func TestSpinnerSink(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	sink := NewSpinnerSink(&buf)
	ctx := context.Background()

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "probe", Current: 1, Total: 2, Message: "Checking ETH...", Spinner: true})
	assert.Equal(t, " [1/2] Checking ETH...", sink.spinner.Suffix)

	sink.Info("hello")

	sink.OnProgress(ctx, usecase.ProgressEvent{Stage: "probe", Current: 2, Total: 2})
	assert.False(t, sink.spinner.Active())

	sink.Error("boom")
	assert.Contains(t, buf.String(), "hello\n")
	assert.Contains(t, buf.String(), "boom\n")
}
