package dadata_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/dadata"
)

func registryServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/findById/party", r.URL.Path)
		assert.Equal(t, "Token test-key", r.Header.Get("Authorization"))

		var query map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&query))
		assert.Equal(t, "7707083893", query["query"])

		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestFindByINN_MapsAgentFields(t *testing.T) {
	srv := registryServer(t, http.StatusOK, `{
		"suggestions": [{
			"data": {
				"inn": "7707083893",
				"name": {"full": "СБЕРБАНК РОССИИ", "short_with_opf": "ПАО Сбербанк"},
				"management": {"name": "Греф Герман Оскарович"}
			}
		}]
	}`)
	defer srv.Close()

	client := dadata.NewClientWithBaseURL("test-key", srv.URL)
	agent, err := client.FindByINN(context.Background(), "7707083893")
	require.NoError(t, err)

	assert.Equal(t, "СБЕРБАНК РОССИИ", agent.FullName)
	assert.Equal(t, "ПАО Сбербанк", agent.ShortName)
	assert.Equal(t, "7707083893", agent.INN)
	require.NotNil(t, agent.Management)
	assert.Equal(t, "Греф Герман Оскарович", *agent.Management)
}

func TestFindByINN_MissingManagementIsOptional(t *testing.T) {
	srv := registryServer(t, http.StatusOK, `{
		"suggestions": [{
			"data": {
				"inn": "7707083893",
				"name": {"full": "СБЕРБАНК РОССИИ", "short_with_opf": "ПАО Сбербанк"}
			}
		}]
	}`)
	defer srv.Close()

	client := dadata.NewClientWithBaseURL("test-key", srv.URL)
	agent, err := client.FindByINN(context.Background(), "7707083893")
	require.NoError(t, err)
	assert.Nil(t, agent.Management)
}

func TestFindByINN_NotFoundCases(t *testing.T) {
	cases := map[string]struct {
		status int
		body   string
	}{
		"non-200 status":    {http.StatusForbidden, `{}`},
		"empty suggestions": {http.StatusOK, `{"suggestions": []}`},
		"missing name":      {http.StatusOK, `{"suggestions": [{"data": {"inn": "7707083893"}}]}`},
		"missing inn":       {http.StatusOK, `{"suggestions": [{"data": {"name": {"full": "X", "short_with_opf": "X"}}}]}`},
		"broken json":       {http.StatusOK, `{"suggestions": [`},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			srv := registryServer(t, tc.status, tc.body)
			defer srv.Close()

			client := dadata.NewClientWithBaseURL("test-key", srv.URL)
			_, err := client.FindByINN(context.Background(), "7707083893")
			assert.ErrorIs(t, err, domain.ErrAgentNotFound)
		})
	}
}
