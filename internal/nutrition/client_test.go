package nutrition

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DietDiary_Go/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(Config{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		Host:       "dietagram.p.rapidapi.com",
		Timeout:    2 * time.Second,
		MaxRetries: 2,
		RetryDelay: time.Millisecond,
	})
}

func TestLookup_ParsesCommaDecimals(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, SearchPath, r.URL.Path)
		assert.Equal(t, "apple", r.URL.Query().Get(QueryParamName))
		assert.Equal(t, "en", r.URL.Query().Get(QueryParamLang))
		assert.Equal(t, "test-key", r.Header.Get(HeaderRapidKey))
		assert.Equal(t, "dietagram.p.rapidapi.com", r.Header.Get(HeaderRapidHost))

		w.Header().Set("Content-Type", MediaTypeJSON)
		_, _ = w.Write([]byte(`{"dishes":[{"name":"Apple","caloric":"52","fat":"0,2","protein":"0,3","carbon":"13,8"}]}`))
	})

	got, err := client.Lookup(context.Background(), "apple", "en")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Apple", got[0].Name)
	assert.Equal(t, domain.Nutrients{Calories: 52, Fat: 0, Protein: 0, Carbon: 13}, got[0].Nutrients)
}

func TestLookup_SkipsMalformedCandidate(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"dishes":[
			{"name":"Bad","caloric":"abc","fat":"1","protein":"1","carbon":"1"},
			{"name":"Object","caloric":{"v":1},"fat":"1","protein":"1","carbon":"1"},
			{"name":"Flag","caloric":"1","fat":true,"protein":"1","carbon":"1"},
			{"name":"List","caloric":"1","fat":"1","protein":[1],"carbon":"1"},
			"not a dish",
			{"name":"Good","caloric":95,"fat":"0,3","protein":"0,5","carbon":"25"}
		]}`))
	})

	got, err := client.Lookup(context.Background(), "apple", "en")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Good", got[0].Name)
	assert.Equal(t, 95, got[0].Nutrients.Calories)
}

func TestLookup_EmptyDishesIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"dishes":[]}`))
	})

	_, err := client.Lookup(context.Background(), "unobtainium", "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	assert.NotErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestLookup_ClientErrorStatusIsNotFound(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusForbidden)
	})

	_, err := client.Lookup(context.Background(), "apple", "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	assert.Equal(t, int32(1), calls.Load(), "4xx responses are not retried")
}

func TestLookup_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"dishes":[{"name":"Rice","caloric":"130","fat":"0","protein":"2,7","carbon":"28,2"}]}`))
	})

	got, err := client.Lookup(context.Background(), "rice", "en")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int32(3), calls.Load())
}

func TestLookup_ExhaustedRetriesIsUpstreamUnavailable(t *testing.T) {
	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.Lookup(context.Background(), "rice", "en")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestLookup_MalformedBodyIsNotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops</html>`))
	})

	_, err := client.Lookup(context.Background(), "rice", "en")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
}

func TestLookup_DisabledProvider(t *testing.T) {
	client := NewClient(Config{})

	_, err := client.Lookup(context.Background(), "rice", "en")
	assert.ErrorIs(t, err, domain.ErrFoodNotFound)
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}

func TestLookup_ContextCancelled(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Lookup(ctx, "rice", "en")
	assert.ErrorIs(t, err, domain.ErrUpstreamUnavailable)
}
