package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spacesedan/blogpulse/config"
	"github.com/spacesedan/blogpulse/internal/composer"
	"github.com/spacesedan/blogpulse/internal/logging"
	"github.com/spacesedan/blogpulse/internal/publisher"
)

func main() {
	link := flag.String("link", "", "article URL to share (required unless -debug-token)")
	topicsFlag := flag.String("topics", "", "comma-separated topics for the post")
	excerpt := flag.String("excerpt", "", "article excerpt fed to the comment composer")
	comment := flag.String("comment", "", "comment text; generated by the composer when empty")
	includeComment := flag.Bool("include-comment", true, "include the comment text in the post body")
	asComment := flag.Bool("as-comment", true, "also attach the comment to the created post")
	debugToken := flag.String("debug-token", "", "inspect this access token and exit")
	flag.Parse()

	config.LoadEnv()
	logging.InitLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	graphCfg := config.GraphFromEnv()
	client := publisher.NewClient(graphCfg)

	if *debugToken != "" {
		info, err := client.DebugToken(ctx, *debugToken, "")
		if err != nil {
			slog.Error("[Post] Token inspection failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Println(string(info))
		return
	}

	if *link == "" {
		flag.Usage()
		os.Exit(2)
	}

	pageToken := graphCfg.PageToken
	if pageToken == "" && graphCfg.UserToken != "" {
		token, err := client.ExchangePageToken(ctx, graphCfg.UserToken, graphCfg.PageID)
		if err != nil {
			slog.Error("[Post] Page token exchange failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		pageToken = token
	}
	if graphCfg.PageID == "" || pageToken == "" {
		slog.Error("[Post] Missing page credentials: set FB_PAGE_ID and FB_PAGE_TOKEN (or FB_USER_TOKEN)")
		os.Exit(1)
	}

	var comp composer.Composer
	if *comment == "" {
		c, err := composer.NewOpenAI(config.OpenAIFromEnv())
		if err != nil {
			slog.Error("[Post] Composer unavailable and no -comment given", slog.String("error", err.Error()))
			os.Exit(1)
		}
		comp = c
	}

	var topics []string
	for _, t := range strings.Split(*topicsFlag, ",") {
		if t = strings.TrimSpace(t); t != "" {
			topics = append(topics, t)
		}
	}

	result, err := client.PublishWithComment(ctx, comp, publisher.PublishRequest{
		PageID:               graphCfg.PageID,
		PageToken:            pageToken,
		Link:                 *link,
		Topics:               topics,
		Excerpt:              *excerpt,
		CommentText:          *comment,
		IncludeCommentInPost: *includeComment,
		PostAsComment:        *asComment,
	})
	if err != nil {
		var partial *publisher.PartialError
		if errors.As(err, &partial) {
			slog.Error("[Post] Post created but comment failed",
				slog.String("post_id", partial.PostID),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		slog.Error("[Post] Publish failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("post_id=%s", result.PostID)
	if result.CommentID != "" {
		fmt.Printf(" comment_id=%s", result.CommentID)
	}
	fmt.Println()
}
