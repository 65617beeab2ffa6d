package lookup_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/Tributo-api/internal/domain"
	"github.com/jhoicas/Tributo-api/internal/infrastructure/lookup"
	"github.com/jhoicas/Tributo-api/pkg/config"
)

func TestLookupDNI_ConsultaYCachea(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		assert.Equal(t, "Bearer token-prueba", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"numeroDocumento":"41223344","nombres":"JUAN","apellidoPaterno":"PEREZ","apellidoMaterno":"CCOPA"}`))
	}))
	defer srv.Close()

	client := lookup.NewHTTPLookup(config.LookupConfig{
		DNIApiURL:   srv.URL,
		DNIApiToken: "token-prueba",
	})

	identity, err := client.LookupDNI(context.Background(), "41223344")
	require.NoError(t, err)
	assert.Equal(t, "41223344", identity.DNI)
	assert.Equal(t, "JUAN PEREZ CCOPA", identity.FullName)

	_, err = client.LookupDNI(context.Background(), "41223344")
	require.NoError(t, err)
	assert.Equal(t, 1, hits)
}

func TestLookupDNI_SinTokenDegrada(t *testing.T) {
	client := lookup.NewHTTPLookup(config.LookupConfig{})

	_, err := client.LookupDNI(context.Background(), "41223344")
	require.ErrorIs(t, err, domain.ErrLookupUnavailable)
}

func TestLookupRUC_NoEncontrado(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := lookup.NewHTTPLookup(config.LookupConfig{
		RUCApiURL:   srv.URL,
		RUCApiToken: "token-prueba",
	})

	_, err := client.LookupRUC(context.Background(), "20512345678")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLookupRUC_ProveedorCaidoDegrada(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := lookup.NewHTTPLookup(config.LookupConfig{
		RUCApiURL:   srv.URL,
		RUCApiToken: "token-prueba",
	})

	_, err := client.LookupRUC(context.Background(), "20512345678")
	require.ErrorIs(t, err, domain.ErrLookupUnavailable)
}
