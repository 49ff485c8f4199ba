package models

import "encoding/json"

// GraphResponse covers both success and error payloads of post/comment
// calls. The error object, when present, looks like
// {"message":..., "type":..., "code":..., "error_subcode":...}; it is kept
// raw so failures surface the remote payload verbatim.
type GraphResponse struct {
	ID    string          `json:"id"`
	Error json.RawMessage `json:"error,omitempty"`
}

// GraphPage is one entry of the /me/accounts listing.
type GraphPage struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	AccessToken string `json:"access_token"`
}

// GraphAccountsResponse is the /me/accounts response body.
type GraphAccountsResponse struct {
	Data  []GraphPage     `json:"data"`
	Error json.RawMessage `json:"error,omitempty"`
}

// PublishResult reports the identifiers created by a publish flow.
// CommentID is empty when no comment was requested or attached.
type PublishResult struct {
	PostID    string `json:"post_id"`
	CommentID string `json:"comment_id,omitempty"`
}
