package api

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	apierrors "github.com/diogo/falconmcp/internal/errors"
)

// tokenPath is the OAuth2 client-credentials endpoint, relative to the base URL.
const tokenPath = "/oauth2/token"

// expiryMargin is subtracted from the advertised token lifetime so a token is
// treated as expired slightly before the remote side would reject it. Covers
// clock skew and in-flight request latency.
const expiryMargin = 60 * time.Second

// tokenSource caches one bearer token for the lifetime of the process,
// re-authenticating only when the cached token is absent or expired.
//
// The mutex protects the cached fields, not the exchange itself: a burst of
// callers arriving with an expired token may each trigger an independent
// authentication call. That is tolerated, the exchange is idempotent.
type tokenSource struct {
	http     Doer
	tokenURL string
	id       string
	secret   string
	now      func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func newTokenSource(httpClient Doer, baseURL, id, secret string) *tokenSource {
	return &tokenSource{
		http:     httpClient,
		tokenURL: baseURL + tokenPath,
		id:       id,
		secret:   secret,
		now:      time.Now,
	}
}

// bearer returns a currently-valid bearer token, performing one
// client-credentials exchange if the cache is empty or past its expiry.
func (ts *tokenSource) bearer(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Before(ts.expiry) {
		return ts.token, nil
	}

	token, lifetime, err := ts.exchange(ctx)
	if err != nil {
		return "", err
	}

	ts.token = token
	ts.expiry = ts.now().Add(lifetime - expiryMargin)
	return ts.token, nil
}

// exchange performs the client-credentials grant. Credentials travel as HTTP
// Basic auth; the form body carries only the grant type.
func (ts *tokenSource) exchange(ctx context.Context) (string, time.Duration, error) {
	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, apierrors.NewAuthError(0, "create token request: "+err.Error())
	}
	req.SetBasicAuth(ts.id, ts.secret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := ts.http.Do(req)
	if err != nil {
		return "", 0, apierrors.NewAuthError(0, "token exchange: "+err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, apierrors.NewAuthError(resp.StatusCode, "read token response: "+err.Error())
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", 0, apierrors.NewAuthError(resp.StatusCode, remoteMessage(body, resp.StatusCode))
	}

	token := gjson.GetBytes(body, "access_token").String()
	if token == "" {
		return "", 0, apierrors.NewAuthError(resp.StatusCode, "token response missing access_token")
	}

	lifetime := time.Duration(gjson.GetBytes(body, "expires_in").Int()) * time.Second
	return token, lifetime, nil
}
