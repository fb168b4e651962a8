package correios

import (
	"encoding/base64"
	"math/rand"
)

// Endpoint and credential material is kept base64-encoded so the plain
// URLs and tokens never appear in source. The values are configuration,
// nothing is computed from them beyond decoding at call time.
const (
	encodedTrackingURL     = "aHR0cHM6Ly9wcm94eWFwcC5jb3JyZWlvcy5jb20uYnIvdjEvc3JvLXJhc3Ryby8="
	encodedAuthTrackingURL = "aHR0cHM6Ly9wcm94eWFwcC5jb3JyZWlvcy5jb20uYnIvdjMvc3JvLXJhc3Ryby8="
	encodedLoginURL        = "aHR0cHM6Ly9wcm94eWFwcC5jb3JyZWlvcy5jb20uYnIvdjMvYXBwLXZhbGlkYXRpb24="

	// encodedRequestToken is the fixed constant the carrier expects in the
	// login body; it is signed together with the login timestamp.
	encodedRequestToken = "YW5kcm9pZDtici5jb20uY29ycmVpb3MucHJlYXRlbmRpbWVudG87RjBFMkIxRDIzNzRDMjY1RTE1RDg3RTdEODJCMzFDMzY="
)

// userAgentPool holds a handful of realistic browser signatures, also
// encoded at rest. One is picked at random per request.
var userAgentPool = []string{
	"TW96aWxsYS81LjAgKFdpbmRvd3MgTlQgMTAuMDsgV2luNjQ7IHg2NCkgQXBwbGVXZWJLaXQvNTM3LjM2IChLSFRNTCwgbGlrZSBHZWNrbykgQ2hyb21lLzk3LjAuNDY5Mi45OSBTYWZhcmkvNTM3LjM2",
	"TW96aWxsYS81LjAgKFdpbmRvd3MgTlQgMTAuMDsgV2luNjQ7IHg2NDsgcnY6OTUuMCkgR2Vja28vMjAxMDAxMDEgRmlyZWZveC85NS4w",
	"TW96aWxsYS81LjAgKFdpbmRvd3MgTlQgMTAuMDsgV2luNjQ7IHg2NCkgQXBwbGVXZWJLaXQvNTM3LjM2IChLSFRNTCwgbGlrZSBHZWNrbykgQ2hyb21lLzkwLjAuNDQzMC45MyBTYWZhcmkvNTM3LjM2",
	"TW96aWxsYS81LjAgKFdpbmRvd3MgTlQgMTAuMDsgV2luNjQ7IHg2NCkgQXBwbGVXZWJLaXQvNTM3LjM2IChLSFRNTCwgbGlrZSBHZWNrbykgQ2hyb21lLzk2LjAuNDY2NC4xMTAgU2FmYXJpLzUzNy4zNiBFZGcvOTYuMC4xMDU0LjYy",
	"TW96aWxsYS81LjAgKFdpbmRvd3MgTlQgMTAuMDsgV2luNjQ7IHg2NDsgcnY6OTQuMCkgR2Vja28vMjAxMDAxMDEgRmlyZWZveC85NC4w",
}

func decode(value string) string {
	raw, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return ""
	}
	return string(raw)
}

func randomUserAgent() string {
	return decode(userAgentPool[rand.Intn(len(userAgentPool))])
}
