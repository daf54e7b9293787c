package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPostingText_JobDescriptionSelector(t *testing.T) {
	html := `<html><body>
		<nav>Home | Jobs | About</nav>
		<div class="job-description">Build data pipelines with Python and SQL.</div>
		<footer>Copyright</footer>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Build data pipelines")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Copyright")
}

func TestExtractPostingText_SelectorPriority(t *testing.T) {
	html := `<html><body>
		<main>Generic main content</main>
		<div class="job-description">The actual posting text here.</div>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "actual posting")
	assert.NotContains(t, text, "Generic main")
}

func TestExtractPostingText_BodyFallback(t *testing.T) {
	html := `<html><body><p>Just a plain paragraph describing the role.</p></body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "plain paragraph")
}

func TestExtractPostingText_StripsScriptsAndAds(t *testing.T) {
	html := `<html><body>
		<script>trackUser();</script>
		<div class="ads">Buy now!</div>
		<article>Role: backend engineer.</article>
	</body></html>`

	text, err := ExtractPostingText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "backend engineer")
	assert.NotContains(t, text, "trackUser")
	assert.NotContains(t, text, "Buy now")
}

func TestExtractPostingText_CollapsesWhitespace(t *testing.T) {
	html := "<html><body><main>line one\n\n\n\n   line    two</main></body></html>"

	text, err := ExtractPostingText(html)
	require.NoError(t, err)

	assert.NotContains(t, text, "\n\n\n")
	assert.NotContains(t, text, "    ")
}

func TestJobPosting_FetchAndExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body><div class="job-details">Senior Go engineer wanted.</div></body></html>`))
	}))
	defer server.Close()

	result, err := JobPosting(context.Background(), server.URL, nil)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.Text, "Senior Go engineer")
	assert.Contains(t, result.HTML, "job-details")
}

func TestJobPosting_HTTPErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer server.Close()

	_, err := JobPosting(context.Background(), server.URL, nil)

	var fetchErr *Error
	require.Error(t, err)
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobPosting_InvalidURL(t *testing.T) {
	_, err := JobPosting(context.Background(), "not-a-url", nil)

	var fetchErr *Error
	require.Error(t, err)
	assert.True(t, errors.As(err, &fetchErr))
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long enough content ", 50)))
}
