package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/bakery-dashboard/internal/domain"
	"github.com/vfg2006/bakery-dashboard/internal/presentation"
	"github.com/vfg2006/bakery-dashboard/internal/usecases/reporting/mocks"
	"go.uber.org/mock/gomock"
)

func TestRendererFor(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    string
		wantErr bool
	}{
		{name: "HTML", format: "html", want: "text/html; charset=utf-8"},
		{name: "JSON", format: "json", want: "application/json"},
		{name: "Formato inválido", format: "pdf", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := rendererFor(tt.format)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, renderer.ContentType())
		})
	}
}

func TestGenerate(t *testing.T) {
	report := &domain.Report{ID: "xyz789", Title: "Fluffy Bakes"}

	t.Run("Escreve em stdout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		generator := mocks.NewMockGenerator(ctrl)
		generator.EXPECT().Generate(gomock.Any()).Return(report, nil)

		var stdout bytes.Buffer
		err := generate(context.Background(), generator, presentation.NewJSONRenderer(), stdoutPath, &stdout)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "xyz789")
	})

	t.Run("Escreve em arquivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		generator := mocks.NewMockGenerator(ctrl)
		generator.EXPECT().Generate(gomock.Any()).Return(report, nil)

		output := filepath.Join(t.TempDir(), "report.json")
		var stdout bytes.Buffer
		err := generate(context.Background(), generator, presentation.NewJSONRenderer(), output, &stdout)

		require.NoError(t, err)
		assert.Empty(t, stdout.String())

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(data), "xyz789")
	})

	t.Run("Falha na geração não cria o arquivo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		generator := mocks.NewMockGenerator(ctrl)
		generator.EXPECT().Generate(gomock.Any()).Return(nil, errors.New("fonte indisponível"))

		output := filepath.Join(t.TempDir(), "report.json")
		err := generate(context.Background(), generator, presentation.NewJSONRenderer(), output, &bytes.Buffer{})

		assert.Error(t, err)
		assert.NoFileExists(t, output)
	})
}
