package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spacesedan/blogpulse/config"
	"github.com/spacesedan/blogpulse/internal/models"
)

const (
	defaultBaseURL    = "https://graph.facebook.com"
	defaultAPIVersion = "v18.0"

	graphTimeout = 20 * time.Second
)

// Client wraps the Facebook Graph API. Every call is a single synchronous
// request with a fixed timeout; there are no retries and failures come back
// as *Error values, never panics.
type Client struct {
	cfg  config.GraphConfig
	http *http.Client
}

func NewClient(cfg config.GraphConfig) *Client {
	if cfg.APIVersion == "" {
		cfg.APIVersion = defaultAPIVersion
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: graphTimeout},
	}
}

func (c *Client) endpoint(path string) string {
	return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.APIVersion, path)
}

// CreatePagePost publishes a message to the page's feed. A non-empty link
// makes the platform render a preview for it. Returns the created post id.
func (c *Client) CreatePagePost(ctx context.Context, pageID, pageToken, message, link string) (string, error) {
	form := url.Values{}
	form.Set("message", message)
	form.Set("access_token", pageToken)
	if link != "" {
		form.Set("link", link)
	}

	return c.postForm(ctx, "CreatePagePost", pageID+"/feed", form)
}

// PostComment attaches a comment to an existing post. Requires a page token
// with pages_manage_engagement. Returns the created comment id.
func (c *Client) PostComment(ctx context.Context, postID, pageToken, message string) (string, error) {
	form := url.Values{}
	form.Set("message", message)
	form.Set("access_token", pageToken)

	return c.postForm(ctx, "PostComment", postID+"/comments", form)
}

// ExchangePageToken lists the pages the user token manages and returns a
// page access token: the target page's token when targetPageID is set, the
// first page's otherwise. Tokens are never cached; every call re-fetches.
func (c *Client) ExchangePageToken(ctx context.Context, userToken, targetPageID string) (string, error) {
	const op = "ExchangePageToken"

	q := url.Values{}
	q.Set("access_token", userToken)

	body, status, err := c.get(ctx, op, "me/accounts", q)
	if err != nil {
		return "", err
	}

	var accounts models.GraphAccountsResponse
	if err := json.Unmarshal(body, &accounts); err != nil {
		return "", &Error{Kind: KindProtocol, Op: op, Msg: "Non-JSON response: " + string(body)}
	}

	if status >= 400 {
		return "", remoteError(op, accounts.Error, body)
	}

	if len(accounts.Data) == 0 {
		return "", &Error{Kind: KindEmpty, Op: op, Msg: "No managed pages found for this user token"}
	}

	if targetPageID != "" {
		for _, p := range accounts.Data {
			if p.ID == targetPageID {
				return p.AccessToken, nil
			}
		}
		return "", &Error{Kind: KindEmpty, Op: op,
			Msg: fmt.Sprintf("User token does not grant access to page id %s", targetPageID)}
	}

	return accounts.Data[0].AccessToken, nil
}

// DebugToken inspects an access token via the token-introspection endpoint.
// When appToken is empty it is synthesized as "app_id|app_secret" from the
// configured credentials, failing fast when those are absent.
func (c *Client) DebugToken(ctx context.Context, token, appToken string) (json.RawMessage, error) {
	const op = "DebugToken"

	if appToken == "" {
		if c.cfg.AppID == "" || c.cfg.AppSecret == "" {
			return nil, &Error{Kind: KindEmpty, Op: op,
				Msg: "no app token provided and FB_APP_ID/FB_APP_SECRET not configured"}
		}
		appToken = c.cfg.AppID + "|" + c.cfg.AppSecret
	}

	q := url.Values{}
	q.Set("input_token", token)
	q.Set("access_token", appToken)

	body, status, err := c.get(ctx, op, "debug_token", q)
	if err != nil {
		return nil, err
	}

	var parsed models.GraphResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, &Error{Kind: KindProtocol, Op: op, Msg: "Non-JSON response: " + string(body)}
	}

	if status >= 400 {
		return nil, remoteError(op, parsed.Error, body)
	}

	return json.RawMessage(body), nil
}

// postForm issues a form POST and decodes the standard Graph response
// shape: an id on success, a structured error object on failure.
func (c *Client) postForm(ctx context.Context, op, path string, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path), strings.NewReader(form.Encode()))
	if err != nil {
		return "", &Error{Kind: KindTransport, Op: op, Msg: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &Error{Kind: KindTransport, Op: op, Msg: "Network error when calling Graph API", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{Kind: KindTransport, Op: op, Msg: "failed to read response body", Err: err}
	}

	var parsed models.GraphResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", &Error{Kind: KindProtocol, Op: op, Msg: "Non-JSON response: " + string(body)}
	}

	if resp.StatusCode >= 400 {
		return "", remoteError(op, parsed.Error, body)
	}

	// Success responses carry the created resource id. Fall back to the
	// whole body if the field is missing; it should not happen in practice.
	if parsed.ID == "" {
		return string(body), nil
	}
	return parsed.ID, nil
}

func (c *Client) get(ctx context.Context, op, path string, query url.Values) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path)+"?"+query.Encode(), nil)
	if err != nil {
		return nil, 0, &Error{Kind: KindTransport, Op: op, Msg: "failed to build request", Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, &Error{Kind: KindTransport, Op: op, Msg: "Network error when calling Graph API", Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, &Error{Kind: KindTransport, Op: op, Msg: "failed to read response body", Err: err}
	}

	return body, resp.StatusCode, nil
}

// remoteError surfaces the structured remote error payload verbatim,
// falling back to the raw body when the error object is absent.
func remoteError(op string, errPayload json.RawMessage, body []byte) *Error {
	payload := errPayload
	if len(payload) == 0 {
		payload = body
	}
	return &Error{Kind: KindRemote, Op: op, Msg: "Graph API error: " + string(payload)}
}
