package tweetgraph

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// createdAtLayout is the timestamp format of the GraphQL "legacy" objects.
const createdAtLayout = "Mon Jan 02 15:04:05 +0000 2006"

// ParseSearchTimeline decodes an X GraphQL SearchTimeline response into posts.
func ParseSearchTimeline(body []byte) ([]Post, error) {
	var raw struct {
		Data struct {
			SearchByRawQuery struct {
				SearchTimeline struct {
					Timeline timelineObj `json:"timeline"`
				} `json:"search_timeline"`
			} `json:"search_by_raw_query"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal search timeline: %w", err)
	}
	return postsFromTimeline(raw.Data.SearchByRawQuery.SearchTimeline.Timeline, ""), nil
}

// ParseUserTweets decodes an X GraphQL UserTweets response into posts.
// author is used for entries that do not embed their user.
func ParseUserTweets(body []byte, author string) ([]Post, error) {
	var raw struct {
		Data struct {
			User struct {
				Result struct {
					Timeline struct {
						Timeline timelineObj `json:"timeline"`
					} `json:"timeline"`
					TimelineV2 struct {
						Timeline timelineObj `json:"timeline"`
					} `json:"timeline_v2"`
				} `json:"result"`
			} `json:"user"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("unmarshal user tweets: %w", err)
	}
	tl := raw.Data.User.Result.Timeline.Timeline
	if len(tl.Instructions) == 0 {
		tl = raw.Data.User.Result.TimelineV2.Timeline
	}
	return postsFromTimeline(tl, author), nil
}

// --- Timeline types ---

type timelineObj struct {
	Instructions []timelineInstruction `json:"instructions"`
}

type timelineInstruction struct {
	Type    string          `json:"type"`
	Entries []timelineEntry `json:"entries"`
	Entry   *timelineEntry  `json:"entry"`
}

type timelineEntry struct {
	EntryID string `json:"entryId"`
	Content struct {
		ItemContent json.RawMessage `json:"itemContent"`
	} `json:"content"`
}

type tweetResult struct {
	TypeName string `json:"__typename"`
	RestID   string `json:"rest_id"`
	Core     struct {
		UserResults struct {
			Result struct {
				Legacy struct {
					ScreenName string `json:"screen_name"`
				} `json:"legacy"`
			} `json:"result"`
		} `json:"user_results"`
	} `json:"core"`
	Legacy struct {
		FullText  string `json:"full_text"`
		CreatedAt string `json:"created_at"`
	} `json:"legacy"`
	// TweetWithVisibilityResults wraps the real tweet one level down.
	Tweet *tweetResult `json:"tweet"`
}

func postsFromTimeline(tl timelineObj, defaultAuthor string) []Post {
	posts := []Post{}
	for _, instruction := range tl.Instructions {
		entries := instruction.Entries
		if instruction.Entry != nil {
			entries = append(entries, *instruction.Entry)
		}
		for _, entry := range entries {
			if entry.Content.ItemContent == nil {
				continue
			}
			var item struct {
				TypeName     string `json:"__typename"`
				TweetResults struct {
					Result tweetResult `json:"result"`
				} `json:"tweet_results"`
			}
			if err := json.Unmarshal(entry.Content.ItemContent, &item); err != nil {
				slog.Debug("skip undecodable entry", slog.String("entry", entry.EntryID), slog.Any("error", err))
				continue
			}
			if item.TypeName != "TimelineTweet" {
				continue
			}
			p, err := parseTweetResult(item.TweetResults.Result, defaultAuthor)
			if err != nil {
				slog.Debug("skip tweet parse error", slog.String("entry", entry.EntryID), slog.Any("error", err))
				continue
			}
			posts = append(posts, p)
		}
	}
	return posts
}

func parseTweetResult(r tweetResult, defaultAuthor string) (Post, error) {
	if r.Tweet != nil {
		r = *r.Tweet
	}
	if r.RestID == "" {
		return Post{}, fmt.Errorf("empty tweet rest_id (typename=%s)", r.TypeName)
	}
	id, err := strconv.ParseInt(r.RestID, 10, 64)
	if err != nil {
		return Post{}, fmt.Errorf("tweet rest_id %q: %w", r.RestID, err)
	}

	author := r.Core.UserResults.Result.Legacy.ScreenName
	if author == "" {
		author = defaultAuthor
	}
	if author == "" {
		return Post{}, fmt.Errorf("tweet %s has no author", r.RestID)
	}

	ts, err := time.Parse(createdAtLayout, r.Legacy.CreatedAt)
	if err != nil {
		return Post{}, fmt.Errorf("tweet %s created_at: %w", r.RestID, err)
	}

	return Post{
		ID:        id,
		Author:    author,
		Text:      r.Legacy.FullText,
		Timestamp: ts.UTC(),
	}, nil
}
