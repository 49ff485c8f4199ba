package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spacesedan/blogpulse/internal/composer"
	"github.com/spacesedan/blogpulse/internal/models"
)

// PublishRequest describes one link-post-plus-comment flow.
type PublishRequest struct {
	PageID    string
	PageToken string
	Link      string
	Topics    []string
	Excerpt   string

	// CommentText skips composition when set; otherwise the composer
	// writes the comment.
	CommentText string

	// IncludeCommentInPost puts the comment text in the post body so it
	// shows alongside the link preview.
	IncludeCommentInPost bool

	// PostAsComment additionally attaches the comment to the created post.
	PostAsComment bool
}

// PublishWithComment runs the full flow: obtain comment text, create the
// page post, and optionally attach the comment to it. A comment failure
// after the post was created returns a *PartialError carrying the post id;
// the result's PostID is valid in that case too.
func (c *Client) PublishWithComment(ctx context.Context, comp composer.Composer, req PublishRequest) (models.PublishResult, error) {
	var result models.PublishResult

	commentText := req.CommentText
	if commentText == "" {
		if comp == nil {
			return result, &Error{Kind: KindEmpty, Op: "PublishWithComment",
				Msg: "Failed to generate comment: no composer available"}
		}
		text, err := comp.Compose(ctx, composer.Request{
			URL:     req.Link,
			Topics:  req.Topics,
			Excerpt: req.Excerpt,
		})
		if err != nil {
			return result, fmt.Errorf("Failed to generate comment: %w", err)
		}
		commentText = text
	}

	message := buildPostMessage(commentText, req.Topics, req.IncludeCommentInPost)

	postID, err := c.CreatePagePost(ctx, req.PageID, req.PageToken, message, req.Link)
	if err != nil {
		return result, fmt.Errorf("Failed to create page post: %w", err)
	}
	result.PostID = postID
	slog.Info("[Publisher] Page post created", slog.String("post_id", postID))

	if req.PostAsComment && commentText != "" {
		commentID, err := c.PostComment(ctx, postID, req.PageToken, commentText)
		if err != nil {
			return result, &PartialError{PostID: postID, Err: err}
		}
		result.CommentID = commentID
		slog.Info("[Publisher] Comment posted", slog.String("comment_id", commentID))
	}

	return result, nil
}

// buildPostMessage assembles the post body. With the comment included, a
// trailing topics line is appended when topics exist; without it a generic
// share line mentions the topics instead.
func buildPostMessage(commentText string, topics []string, includeComment bool) string {
	if includeComment && commentText != "" {
		if len(topics) > 0 {
			return fmt.Sprintf("%s\n\nTopics: %s", commentText, strings.Join(topics, ", "))
		}
		return commentText
	}
	return "Sharing an interesting article about: " + strings.Join(topics, ", ")
}
