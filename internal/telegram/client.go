package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultBaseURL is the production Bot API endpoint.
const DefaultBaseURL = "https://api.telegram.org"

// Client calls the Telegram Bot API.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
}

func NewClient(httpClient *http.Client, baseURL, token string) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
	}
}

type sendMessageRequest struct {
	ChatID      int64                 `json:"chat_id"`
	Text        string                `json:"text"`
	ReplyMarkup *InlineKeyboardMarkup `json:"reply_markup,omitempty"`
}

type editMessageReplyMarkupRequest struct {
	ChatID      int64                `json:"chat_id"`
	MessageID   int64                `json:"message_id"`
	ReplyMarkup InlineKeyboardMarkup `json:"reply_markup"`
}

type setWebhookRequest struct {
	URL string `json:"url"`
}

type apiResponse struct {
	OK          bool   `json:"ok"`
	ErrorCode   int    `json:"error_code,omitempty"`
	Description string `json:"description,omitempty"`
}

// SendMessage sends text with an optional inline keyboard to a chat.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, replyMarkup *InlineKeyboardMarkup) error {
	return c.post(ctx, "sendMessage", sendMessageRequest{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: replyMarkup,
	})
}

// EditMessageReplyMarkup replaces the message's inline keyboard with an
// empty one, i.e. removes it.
func (c *Client) EditMessageReplyMarkup(ctx context.Context, chatID, messageID int64) error {
	return c.post(ctx, "editMessageReplyMarkup", editMessageReplyMarkupRequest{
		ChatID:      chatID,
		MessageID:   messageID,
		ReplyMarkup: InlineKeyboardMarkup{InlineKeyboard: [][]InlineKeyboardButton{}},
	})
}

// SetWebhook registers url as the bot's webhook endpoint.
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	return c.post(ctx, "setWebhook", setWebhookRequest{URL: url})
}

// SendDocument uploads the file at path as a document to a chat.
func (c *Client) SendDocument(ctx context.Context, chatID int64, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = file.Close() }()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if err = writer.WriteField("chat_id", fmt.Sprintf("%d", chatID)); err != nil {
		return fmt.Errorf("write chat_id field: %w", err)
	}
	var part io.Writer
	if part, err = writer.CreateFormFile("document", filepath.Base(path)); err != nil {
		return fmt.Errorf("create document part: %w", err)
	}
	if _, err = io.Copy(part, file); err != nil {
		return fmt.Errorf("copy document: %w", err)
	}
	if err = writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendDocument", c.baseURL, c.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, "sendDocument")
}

func (c *Client) post(ctx context.Context, method string, payload any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}
	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, method)
}

func (c *Client) do(req *http.Request, method string) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	raw, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("telegram %s: http %d: %s", method, resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	var out apiResponse
	if err = json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if !out.OK {
		return fmt.Errorf("telegram %s: ok=false code=%d: %s", method, out.ErrorCode, out.Description)
	}
	return nil
}

// LogValue keeps the bot token out of log output.
func (c *Client) LogValue() slog.Value {
	return slog.GroupValue(slog.String("baseURL", c.baseURL))
}
