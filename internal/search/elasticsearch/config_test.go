package elasticsearch_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/autocomplete/internal/search/elasticsearch"
)

func TestConfig_Address(t *testing.T) {
	cfg := elasticsearch.Config{Host: "localhost", Port: 9200, Scheme: "http"}
	require.Equal(t, "http://localhost:9200", cfg.Address())

	cfg = elasticsearch.Config{Host: "::1", Port: 9243, Scheme: "https"}
	require.Equal(t, "https://[::1]:9243", cfg.Address())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     elasticsearch.Config
		wantErr string
	}{
		{name: "valid http", cfg: elasticsearch.Config{Host: "localhost", Port: 9200, Scheme: "http"}},
		{name: "valid https", cfg: elasticsearch.Config{Host: "es", Port: 443, Scheme: "https"}},
		{name: "empty host", cfg: elasticsearch.Config{Port: 9200, Scheme: "http"}, wantErr: "host"},
		{name: "port zero", cfg: elasticsearch.Config{Host: "es", Scheme: "http"}, wantErr: "port"},
		{name: "port too large", cfg: elasticsearch.Config{Host: "es", Port: 70000, Scheme: "http"}, wantErr: "port"},
		{name: "bad scheme", cfg: elasticsearch.Config{Host: "es", Port: 9200, Scheme: "tcp"}, wantErr: "scheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
