package s3

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/surveykit/internal/util/retry"
)

func testUploader(t *testing.T, target Target, handler http.Handler) *Uploader {
	t.Helper()
	u := NewUploader(testClient(t, handler), target)
	u.initialDelay = time.Millisecond
	return u
}

func TestUploader_Key(t *testing.T) {
	t.Parallel()

	tests := []struct {
		prefix string
		want   string
	}{
		{prefix: "", want: "quiz.zip"},
		{prefix: "drafts", want: "drafts/quiz.zip"},
		{prefix: "/drafts/2026/", want: "drafts/2026/quiz.zip"},
	}

	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			t.Parallel()
			u := NewUploader(nil, Target{Prefix: tt.prefix})
			assert.Equal(t, tt.want, u.Key("quiz.zip"))
		})
	}
}

func TestUploader_Upload(t *testing.T) {
	t.Parallel()

	var paths []string
	u := testUploader(t, Target{Bucket: "surveys", Prefix: "drafts"}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))

	key, err := u.Upload(context.Background(), "Wine Quiz.zip", []byte("zip"))
	require.NoError(t, err)
	assert.Equal(t, "drafts/Wine Quiz.zip", key)
	assert.Equal(t, []string{"/surveys/drafts/Wine Quiz.zip"}, paths)
}

func TestUploader_RetriesTransientErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	u := testUploader(t, Target{Bucket: "surveys", Retries: 3}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			xmlError(w, http.StatusServiceUnavailable, "SlowDown")
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	_, err := u.Upload(context.Background(), "quiz.zip", []byte("zip"))
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestUploader_GivesUp(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	u := testUploader(t, Target{Bucket: "surveys", Retries: 2}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		xmlError(w, http.StatusInternalServerError, "InternalError")
	}))

	_, err := u.Upload(context.Background(), "quiz.zip", []byte("zip"))
	require.Error(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestUploader_PermanentErrorIsNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	u := testUploader(t, Target{Bucket: "surveys", Retries: 5}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		xmlError(w, http.StatusForbidden, "AccessDenied")
	}))

	_, err := u.Upload(context.Background(), "quiz.zip", []byte("zip"))
	require.Error(t, err)
	assert.True(t, retry.IsFatal(err))
	assert.Equal(t, int32(1), calls.Load())
}

func TestUploader_CreateBucket(t *testing.T) {
	t.Parallel()

	var methods []string
	u := testUploader(t, Target{Bucket: "surveys", CreateBucket: true}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		methods = append(methods, r.Method+" "+r.URL.Path)
		switch {
		case r.Method == http.MethodHead:
			w.WriteHeader(http.StatusNotFound)
		case r.URL.Path == "/surveys":
			xmlResponse(w, http.StatusOK, `<CreateBucketResult/>`)
		default:
			w.WriteHeader(http.StatusOK)
		}
	}))

	_, err := u.Upload(context.Background(), "quiz.zip", []byte("zip"))
	require.NoError(t, err)
	assert.Equal(t, []string{"HEAD /surveys", "PUT /surveys", "PUT /surveys/quiz.zip"}, methods)
}

func TestUploader_TimeoutPerAttempt(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	u := testUploader(t, Target{Bucket: "surveys", Retries: 2, Timeout: 100 * time.Millisecond}, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			// First attempt outlives its deadline.
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))

	key, err := u.Upload(context.Background(), "quiz.zip", []byte("zip"))
	require.NoError(t, err)
	assert.Equal(t, "quiz.zip", key)
	assert.Equal(t, int32(2), calls.Load())
}
