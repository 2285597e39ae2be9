package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Config
		wantErr bool
	}{
		{
			name:    "empty file keeps defaults",
			content: "",
			want:    Default(),
		},
		{
			name:    "all keys",
			content: "data_dir: /srv/trains\nlang: en\ncolor: false\njson: true\n",
			want:    Config{DataDir: "/srv/trains", Lang: "en", Color: false, JSON: true},
		},
		{
			name:    "partial",
			content: "lang: en\n",
			want:    Config{DataDir: "data", Lang: "en", Color: true},
		},
		{
			name:    "malformed",
			content: "data_dir: [unterminated\n",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "trains.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := Load(path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{name: "defaults", cfg: Default()},
		{name: "empty data dir", cfg: Config{Lang: "ru"}, wantErr: true},
		{name: "unknown language", cfg: Config{DataDir: "data", Lang: "fr"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestContext(t *testing.T) {
	cfg := Config{DataDir: "elsewhere", Lang: "en"}
	ctx := WithConfig(context.Background(), cfg)
	require.Equal(t, cfg, FromContext(ctx))

	require.Panics(t, func() { FromContext(context.Background()) })
}
