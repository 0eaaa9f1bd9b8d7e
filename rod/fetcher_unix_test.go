//go:build integration && !windows

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/fwojciec/newslens/rod"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Close_KillsBrowserAfterFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>story</p></body></html>"))
	}))
	defer srv.Close()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)

	pid := fetcher.LauncherPID()
	require.NotZero(t, pid)

	_, err = fetcher.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.NoError(t, syscall.Kill(pid, syscall.Signal(0)), "browser alive while in use")

	require.NoError(t, fetcher.Close())

	// Signal 0 fails once the process is gone.
	require.Eventually(t, func() bool {
		return syscall.Kill(pid, syscall.Signal(0)) != nil
	}, 2*time.Second, 50*time.Millisecond)
}
