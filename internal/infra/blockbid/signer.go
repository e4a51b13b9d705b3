package blockbid

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"blockbid_go/internal/domain"
	"blockbid_go/internal/infra"
)

// SignedRequest is the authenticated request envelope handed to transport.
type SignedRequest struct {
	URL     string
	Method  string
	Headers map[string]string
	Body    []byte
}

// Signer builds request envelopes for the exchange. For private calls it
// attaches authentication per the configured scheme: the HMAC header triple
// or the bearer-style pair (historical API revisions used either).
type Signer struct {
	baseURL string
	apiKey  string
	secret  string
	scheme  string
	nonce   *NonceSource
}

// NewSigner creates a new Signer instance.
func NewSigner(baseURL, apiKey, secret, scheme string) *Signer {
	return &Signer{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		secret:  secret,
		scheme:  scheme,
		nonce:   &NonceSource{},
	}
}

// Sign builds the envelope for a path template like "orders/{id}".
// Parameters consumed by path placeholders are substituted into the URL;
// the remainder becomes the query string for GET/DELETE or the JSON body
// otherwise. Private calls without both key and secret fail before any
// request could be made.
func (s *Signer) Sign(method, path string, params map[string]any, private bool) (*SignedRequest, error) {
	imploded, remaining := implodeParams(path, params)
	headers := make(map[string]string)

	if private {
		if s.apiKey == "" || s.secret == "" {
			return nil, domain.ErrCredentialsMissing
		}
		nonce := strconv.FormatInt(s.nonce.Next(), 10)
		switch s.scheme {
		case infra.AuthSchemeBearer:
			headers["Authorization"] = "Bearer " + s.apiKey
			headers["nonce"] = nonce
		default:
			raw := toBase64(s.apiKey) + toBase64(nonce)
			headers["X-Blockbid-Signature"] = computeHmacSha384(raw, s.secret)
			headers["X-Blockbid-Nonce"] = nonce
			headers["X-Blockbid-Api-Key"] = s.apiKey
		}
	}

	reqURL := s.baseURL + "/" + imploded
	var body []byte

	if method == http.MethodGet || method == http.MethodDelete {
		if len(remaining) > 0 {
			reqURL += "?" + encodeQuery(remaining)
		}
	} else {
		headers["Content-type"] = "application/json; charset=UTF-8"
		b, err := json.Marshal(remaining)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = b
	}

	return &SignedRequest{
		URL:     reqURL,
		Method:  method,
		Headers: headers,
		Body:    body,
	}, nil
}

// implodeParams substitutes {name} placeholders in the path template and
// returns the path plus the parameters not consumed by it.
func implodeParams(path string, params map[string]any) (string, map[string]any) {
	remaining := make(map[string]any, len(params))
	for k, v := range params {
		remaining[k] = v
	}
	for k, v := range params {
		placeholder := "{" + k + "}"
		if strings.Contains(path, placeholder) {
			path = strings.ReplaceAll(path, placeholder, fmt.Sprint(v))
			delete(remaining, k)
		}
	}
	return path, remaining
}

func encodeQuery(params map[string]any) string {
	values := url.Values{}
	for k, v := range params {
		values.Set(k, fmt.Sprint(v))
	}
	return values.Encode()
}

func toBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

func computeHmacSha384(message, secret string) string {
	h := hmac.New(sha512.New384, []byte(secret))
	h.Write([]byte(message))
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}
