package lookup

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ttsMaxChars is the longest text the speech endpoint accepts per request.
const ttsMaxChars = 200

// ShortenURL shortens a URL via TinyURL. The response body is the short link.
func (c *Client) ShortenURL(ctx context.Context, longURL string) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/api-create.php?url=%s", c.shortenBase, url.QueryEscape(longURL)))
	if err != nil {
		return "", err
	}

	short := strings.TrimSpace(string(body))
	if short == "" {
		return "", fmt.Errorf("url shortener returned an empty response")
	}

	return short, nil
}

// Paste uploads text to Hastebin and returns the paste URL.
func (c *Client) Paste(ctx context.Context, text string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		fmt.Sprintf("%s/documents", c.pasteBase), strings.NewReader(text))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	body, err := c.do(req)
	if err != nil {
		return "", err
	}

	var data struct {
		Key string `json:"key"`
	}
	if err := json.Unmarshal(body, &data); err != nil {
		return "", fmt.Errorf("decode paste response: %w", err)
	}
	if data.Key == "" {
		return "", fmt.Errorf("paste service returned no key")
	}

	return fmt.Sprintf("%s/%s", c.pasteBase, data.Key), nil
}

// Translate translates text into the target language via the public translate
// endpoint. The response is a nested array whose first element holds the
// translated segments.
func (c *Client) Translate(ctx context.Context, lang, text string) (string, error) {
	endpoint := fmt.Sprintf("%s/translate_a/single?client=gtx&sl=auto&tl=%s&dt=t&q=%s",
		c.translateBase, url.QueryEscape(lang), url.QueryEscape(text))

	var payload []json.RawMessage
	if err := c.getJSON(ctx, endpoint, &payload); err != nil {
		return "", err
	}
	if len(payload) == 0 {
		return "", fmt.Errorf("translate returned an empty payload")
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("decode translate segments: %w", err)
	}

	var b strings.Builder
	for _, segment := range segments {
		if len(segment) == 0 {
			continue
		}
		var piece string
		if err := json.Unmarshal(segment[0], &piece); err != nil {
			continue
		}
		b.WriteString(piece)
	}

	if b.Len() == 0 {
		return "", fmt.Errorf("translate returned no text")
	}

	return b.String(), nil
}

// VideoInfo fetches video metadata via the YouTube oEmbed endpoint.
func (c *Client) VideoInfo(ctx context.Context, videoURL string) (string, error) {
	var data struct {
		Title      string `json:"title"`
		AuthorName string `json:"author_name"`
		AuthorURL  string `json:"author_url"`
	}

	endpoint := fmt.Sprintf("%s/oembed?url=%s&format=json", c.oembedBase, url.QueryEscape(videoURL))
	if err := c.getJSON(ctx, endpoint, &data); err != nil {
		return "", err
	}

	if data.Title == "" {
		return "", fmt.Errorf("no video found at %q", videoURL)
	}

	return fmt.Sprintf("🎥 *%s*\n👤 *Channel:* %s\n🔗 %s",
		data.Title, orNA(data.AuthorName), videoURL,
	), nil
}

// Speech synthesizes text to MP3 audio via the translate TTS endpoint.
func (c *Client) Speech(ctx context.Context, lang, text string) ([]byte, error) {
	if len(text) > ttsMaxChars {
		return nil, fmt.Errorf("text exceeds the %d character limit", ttsMaxChars)
	}

	endpoint := fmt.Sprintf("%s/translate_tts?ie=UTF-8&client=tw-ob&tl=%s&q=%s",
		c.ttsBase, url.QueryEscape(lang), url.QueryEscape(text))

	audio, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("tts returned no audio")
	}

	return audio, nil
}
