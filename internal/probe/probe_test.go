package probe

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectCount(t *testing.T) {
	mux := http.NewServeMux()
	for i := 0; i < 3; i++ {
		hop := i
		mux.HandleFunc(fmt.Sprintf("/hop%d", hop), func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, fmt.Sprintf("/hop%d", hop+1), http.StatusFound)
		})
	}
	mux.HandleFunc("/hop3", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()

	p := NewHTTPProber(2*time.Second, 2*time.Second)

	count, err := p.RedirectCount(context.Background(), srv.URL+"/hop0")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = p.RedirectCount(context.Background(), srv.URL+"/hop3")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestRedirectCount_FetchFailure(t *testing.T) {
	p := NewHTTPProber(500*time.Millisecond, 500*time.Millisecond)

	// Nothing listens here.
	_, err := p.RedirectCount(context.Background(), "http://127.0.0.1:1/")
	assert.Error(t, err)
}

func TestSecureReachable_Failure(t *testing.T) {
	p := NewHTTPProber(500*time.Millisecond, 500*time.Millisecond)

	assert.False(t, p.SecureReachable(context.Background(), "127.0.0.1:1"))
}
