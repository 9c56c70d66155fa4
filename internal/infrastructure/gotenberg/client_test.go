package gotenberg_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mshagov/ecooffer-api/internal/domain"
	"github.com/mshagov/ecooffer-api/internal/infrastructure/gotenberg"
)

func TestConvert_PostsMultipartAndReturnsPDF(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/forms/libreoffice/convert", r.URL.Path)

		require.NoError(t, r.ParseMultipartForm(1<<20))
		file, header, err := r.FormFile("files")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "document.docx", header.Filename)

		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, []byte("docx-bytes"), uploaded)

		_, _ = w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer srv.Close()

	client := gotenberg.NewClient(srv.URL)
	pdf, err := client.Convert(context.Background(), []byte("docx-bytes"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 fake"), pdf)
}

func TestConvert_Non200IsConversionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "libreoffice crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := gotenberg.NewClient(srv.URL)
	_, err := client.Convert(context.Background(), []byte("docx-bytes"))
	assert.ErrorIs(t, err, domain.ErrConversionFailed)
}

func TestConvert_UnconfiguredBaseURL(t *testing.T) {
	client := gotenberg.NewClient("")
	_, err := client.Convert(context.Background(), []byte("docx-bytes"))
	assert.ErrorIs(t, err, domain.ErrConversionFailed)
}

func TestConvert_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // shut down before the call

	client := gotenberg.NewClient(srv.URL)
	_, err := client.Convert(context.Background(), []byte("docx-bytes"))
	assert.ErrorIs(t, err, domain.ErrConversionFailed)
}
