package log

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestKeepInDevelopment(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{key: correlationIDField, want: true},
		{key: "report_id", want: true},
		{key: "records", want: true},
		{key: "records_count", want: true},
		{key: "customers_count", want: true},
		{key: "user_agent", want: false},
		{key: "remote_addr", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, keepInDevelopment(tt.key))
		})
	}
}

func TestCorrelationID(t *testing.T) {
	ctx, id := WithCorrelationID(context.Background())

	assert.NotEmpty(t, id)
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))
}

func TestConfigure(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Configure("debug")
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Configure("verbose")
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
