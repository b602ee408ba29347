package claim

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seallabs/lixi/config"
	types "github.com/seallabs/lixi/types/v1"
)

type countingTripper struct {
	calls int
	next  http.RoundTripper
}

func (c *countingTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	c.calls++
	return c.next.RoundTrip(req)
}

func liveClient(endpoint string, opts ...Option) *Client {
	return NewClient(config.ClaimConf{Endpoint: endpoint, TimeoutMs: 2000}, nil, opts...)
}

func TestSubmitClaimEmptyIdentifierSkipsNetwork(t *testing.T) {
	tripper := &countingTripper{next: http.DefaultTransport}
	c := liveClient("http://example.invalid/claim", WithHTTPClient(&http.Client{Transport: tripper}))

	for _, id := range []string{"", "   ", "\t\n"} {
		res := c.SubmitClaim(context.Background(), id)
		assert.Equal(t, types.StatusInvalidCode, res.Status)
		assert.NotEmpty(t, res.Message)
		assert.False(t, res.Status.Claimable())
	}
	assert.Zero(t, tripper.calls, "validation failures must not reach the wire")
}

func TestSubmitClaimEmptyIdentifierSkipsSimulationDelay(t *testing.T) {
	sim := NewSimulator(config.SimulateConf{DelayMs: 5000, Seed: 1, Denominations: []int64{100}})
	c := NewClient(config.ClaimConf{}, sim)

	start := time.Now()
	res := c.SubmitClaim(context.Background(), "  ")
	assert.Equal(t, types.StatusInvalidCode, res.Status)
	assert.Less(t, time.Since(start), time.Second, "no artificial delay for local validation")
}

func TestSubmitClaimNormalizesBackendShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.Header.Get("Content-Type"), "text/plain")
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var req types.ClaimRequest
		require.NoError(t, json.Unmarshal(body, &req))
		require.Equal(t, "SEAL01", req.Code)

		w.Write([]byte(`{"status":"success","amount":100000,"receipt_id":"R1"}`))
	}))
	defer srv.Close()

	start := time.Now().UTC().Truncate(time.Second)
	res := liveClient(srv.URL).SubmitClaim(context.Background(), "SEAL01")

	assert.Equal(t, types.StatusSuccess, res.Status)
	assert.Equal(t, int64(100000), res.Amount)
	assert.Equal(t, "R1", res.ReceiptID)
	assert.Equal(t, "SEAL01", res.Identifier)

	ts, err := time.Parse(time.RFC3339, res.Timestamp)
	require.NoError(t, err, "client-filled timestamp must be RFC3339")
	assert.False(t, ts.Before(start), "filled timestamp must not predate the call")
}

func TestSubmitClaimReceiptIDFallbackOrder(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"camelCase", `{"status":"SUCCESS","amount":1,"receiptId":"CAMEL"}`, "CAMEL"},
		{"snake_case", `{"status":"SUCCESS","amount":1,"receipt_id":"SNAKE"}`, "SNAKE"},
		{"camel wins over snake", `{"status":"SUCCESS","amount":1,"receiptId":"CAMEL","receipt_id":"SNAKE"}`, "CAMEL"},
		{"neither", `{"status":"SUCCESS","amount":1}`, UnknownReceiptID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			res := liveClient(srv.URL).SubmitClaim(context.Background(), "SEAL01")
			assert.Equal(t, tc.want, res.ReceiptID)
		})
	}
}

func TestSubmitClaimUnknownStatusIsNotClaimable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"pending_review","amount":0}`))
	}))
	defer srv.Close()

	res := liveClient(srv.URL).SubmitClaim(context.Background(), "SEAL01")
	assert.Equal(t, types.Status("PENDING_REVIEW"), res.Status)
	assert.False(t, res.Status.Claimable())
}

func TestSubmitClaimNeverTrustsEchoedIdentifier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"SUCCESS","amount":1,"receiptId":"R","employee_code":"SOMEONE_ELSE","email":"stale@seallabs.xyz"}`))
	}))
	defer srv.Close()

	res := liveClient(srv.URL).SubmitClaim(context.Background(), "SEAL01")
	assert.Equal(t, "SEAL01", res.Identifier)
}

func TestSubmitClaimRejectsMissingMandatoryFields(t *testing.T) {
	for name, body := range map[string]string{
		"no status":       `{"amount":100}`,
		"blank status":    `{"status":"  ","amount":100}`,
		"no amount":       `{"status":"SUCCESS"}`,
		"float amount":    `{"status":"SUCCESS","amount":10.5}`,
		"negative amount": `{"status":"SUCCESS","amount":-1}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(body))
			}))
			defer srv.Close()

			res := liveClient(srv.URL).SubmitClaim(context.Background(), "SEAL01")
			assert.Equal(t, types.StatusError, res.Status)
			assert.NotEmpty(t, res.Message)
		})
	}
}

func TestSubmitClaimTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	res := liveClient(srv.URL).SubmitClaim(context.Background(), "SEAL01")
	assert.Equal(t, types.StatusError, res.Status)
	assert.Equal(t, int64(0), res.Amount)
	assert.Empty(t, res.ReceiptID)
	assert.NotEmpty(t, res.Message)
	assert.Equal(t, "SEAL01", res.Identifier)
}

func TestSubmitClaimUnparseableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>502 bad gateway</html>"))
	}))
	defer srv.Close()

	res := liveClient(srv.URL).SubmitClaim(context.Background(), "SEAL01")
	assert.Equal(t, types.StatusError, res.Status)
	assert.NotEmpty(t, res.Message)
}
