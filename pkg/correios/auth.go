package correios

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// loginTimeLayout is the timestamp format the carrier's login endpoint
// validates the signature against.
const loginTimeLayout = "2006-01-02 15:04:05"

// brazilTime is the fixed reference timezone for login timestamps. The
// carrier validates against UTC-3 year-round, so no tzdata lookup is needed.
var brazilTime = time.FixedZone("-03", -3*60*60)

// loginRequest is the signed body sent to the carrier's login endpoint.
type loginRequest struct {
	RequestToken string `json:"requestToken"`
	Data         string `json:"data"`
	Sign         string `json:"sign"`
}

// loginResponse carries the short-lived bearer token for one tracking request.
type loginResponse struct {
	Token string `json:"token"`
}

// signLogin computes the keyed digest the carrier checks server-side:
// hex(md5(requestToken + timestamp)). MD5 is mandated by the carrier's
// validation; a different digest is rejected.
func signLogin(requestToken, timestamp string) string {
	sum := md5.Sum([]byte(requestToken + timestamp))
	return hex.EncodeToString(sum[:])
}

// login performs the handshake and returns a token valid for exactly one
// subsequent tracking request. Tokens are never reused across lookups.
func (c *Client) login(ctx context.Context) (string, error) {
	timestamp := c.now().In(brazilTime).Format(loginTimeLayout)

	body, err := json.Marshal(loginRequest{
		RequestToken: encodedRequestToken,
		Data:         timestamp,
		Sign:         signLogin(encodedRequestToken, timestamp),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.loginURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("User-Agent", randomUserAgent())
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("login returned status: %d", resp.StatusCode)
	}

	var login loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&login); err != nil {
		return "", fmt.Errorf("failed to decode login response: %w", err)
	}
	if login.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}

	return login.Token, nil
}
