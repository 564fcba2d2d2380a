package wikipedia_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kekatrice/DiscordBotty/internal/clients/wikipedia"
	botErr "github.com/Kekatrice/DiscordBotty/internal/errors"
)

const articleBody = `<html><body>
<p>Go is a <a href="/wiki/Programming_language">programming language</a> (originally at Google) designed for simplicity&#91;1&#93; and speed.</p>
<p>Second paragraph is never read.</p>
</body></html>`

func newClient(t *testing.T, handler http.HandlerFunc) wikipedia.Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return wikipedia.New(&wikipedia.Config{
		HTTPClient: server.Client(),
		BaseURL:    server.URL + "/wiki/",
	})
}

func TestSummaryStripsMarkup(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wiki/Go_language", r.URL.Path)
		fmt.Fprint(w, articleBody)
	})

	summary, err := client.Summary(context.Background(), "Go language")
	require.NoError(t, err)
	assert.Equal(t, "Go is a programming language designed for simplicity and speed.", summary)
}

func TestSummaryNotFound(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Summary(context.Background(), "No Such Topic")
	assert.True(t, botErr.IsNotFound(err))
}

func TestSummaryRejectsDisambiguationPages(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<p>Mercury may refer to:</p>")
	})

	_, err := client.Summary(context.Background(), "Mercury")
	assert.True(t, botErr.IsNotFound(err))
}

func TestSummaryIsCached(t *testing.T) {
	var hits atomic.Int32
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, articleBody)
	})

	ctx := context.Background()
	first, err := client.Summary(ctx, "Go language")
	require.NoError(t, err)

	// Case-insensitive cache hit, no second request
	second, err := client.Summary(ctx, "go LANGUAGE")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), hits.Load())
}

func TestSummaryRequiresTopic(t *testing.T) {
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {})
	_, err := client.Summary(context.Background(), "   ")
	require.Error(t, err)
	assert.Equal(t, botErr.CodeInvalidArgument, botErr.GetCode(err))
}
