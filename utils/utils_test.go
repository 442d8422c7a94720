package utils

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, 0.593, FormatFloat(0.59274, 3))
	assert.Equal(t, 0.5927, FormatFloat(0.59274, 4))
	assert.Equal(t, 1.0, FormatFloat(1, 6))
	assert.True(t, math.IsNaN(FormatFloat(math.NaN(), 3)))
	assert.True(t, math.IsInf(FormatFloat(math.Inf(1), 3), 1))
}

func TestGetLogger(t *testing.T) {
	assert.Same(t, zap.L(), GetLogger(context.Background()))

	logger := zap.NewNop()
	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, GetLogger(ctx))
	assert.Equal(t, context.Background(), WithLogger(context.Background(), nil))
}

func TestGetPanicInfo(t *testing.T) {
	assert.Contains(t, GetPanicInfo(), "TestGetPanicInfo")
}
