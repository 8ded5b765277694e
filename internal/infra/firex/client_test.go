//go:build unit

package firex

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ffytmanager-droid/otp-bot/internal/engine"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/config"
	"github.com/ffytmanager-droid/otp-bot/internal/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log/slog"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.FirexConfig{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	}, slog.New(slog.DiscardHandler))
}

func respond(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}
}

func TestRentNumber(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantPhone string
		wantID    string
		wantErr   error
	}{
		{name: "rented", body: "ACCESS_NUMBER:12345:+919876543210", wantPhone: "+919876543210", wantID: "12345"},
		{name: "alternate access prefix", body: "ACCESS_READY:777:918888877777", wantPhone: "918888877777", wantID: "777"},
		{name: "sold out", body: "NO_NUMBERS", wantErr: engine.ErrVendorNoNumbers},
		{name: "vendor balance empty", body: "NO_BALANCE", wantErr: engine.ErrVendorNoBalance},
		{name: "api error", body: "ERROR_BAD_SERVICE", wantErr: engine.ErrVendorRejected},
		{name: "garbage", body: "whatever", wantErr: engine.ErrVendorRejected},
		{name: "truncated access line", body: "ACCESS_NUMBER:12345", wantErr: engine.ErrVendorRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string][]string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				_, _ = w.Write([]byte(tt.body))
			})

			rental, err := c.RentNumber(context.Background(), "tg", "22")
			if tt.wantErr != nil {
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPhone, rental.PhoneNumber)
			assert.Equal(t, tt.wantID, rental.ActivationID)
			assert.Equal(t, []string{"getNumber"}, gotQuery["action"])
			assert.Equal(t, []string{"test-key"}, gotQuery["api_key"])
		})
	}
}

func TestRentNumberVendorDown(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.RentNumber(context.Background(), "tg", "22")
	assert.True(t, errs.Is(err, engine.ErrVendorUnavailable), "got %v", err)
}

func TestPoll(t *testing.T) {
	tests := []struct {
		name string
		body string
		want engine.PollResult
	}{
		{name: "waiting", body: "STATUS_WAIT_CODE", want: engine.PollResult{Status: engine.PollWaiting}},
		{name: "delivered", body: "STATUS_OK:482913", want: engine.PollResult{Status: engine.PollDelivered, Code: "482913"}},
		{name: "delivered without code is an error", body: "STATUS_OK", want: engine.PollResult{Status: engine.PollError}},
		{name: "cancelled", body: "STATUS_CANCEL", want: engine.PollResult{Status: engine.PollCancelled}},
		{name: "activation gone", body: "NO_ACTIVATION", want: engine.PollResult{Status: engine.PollNotFound}},
		{name: "api error", body: "ERROR_SQL", want: engine.PollResult{Status: engine.PollError}},
		{name: "unknown payload never panics", body: "<html>504</html>", want: engine.PollResult{Status: engine.PollError}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, respond(tt.body))
			got := c.Poll(context.Background(), "12345")
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPollVendorDownClassifiesAsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	got := c.Poll(context.Background(), "12345")
	assert.Equal(t, engine.PollError, got.Status)
}

func TestCancel(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "confirmed", body: "ACCESS_CANCEL", want: true},
		{name: "already done", body: "ACCESS_READY", want: true},
		{name: "activation gone", body: "NO_ACTIVATION", want: false},
		{name: "unexpected", body: "ERROR", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				status = r.URL.Query().Get("status")
				_, _ = w.Write([]byte(tt.body))
			})
			assert.Equal(t, tt.want, c.Cancel(context.Background(), "12345"))
			assert.Equal(t, "8", status)
		})
	}
}

func TestRequestNew(t *testing.T) {
	tests := []struct {
		name string
		body string
		want bool
	}{
		{name: "confirmed", body: "ACCESS_RETRY_GET", want: true},
		{name: "activation gone", body: "NO_ACTIVATION", want: false},
		{name: "api error", body: "ERROR_NO_KEY", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var status string
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				status = r.URL.Query().Get("status")
				_, _ = w.Write([]byte(tt.body))
			})
			assert.Equal(t, tt.want, c.RequestNew(context.Background(), "12345"))
			assert.Equal(t, "3", status)
		})
	}
}
