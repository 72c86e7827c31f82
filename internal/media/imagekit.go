package media

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const defaultUploadEndpoint = "https://upload.imagekit.io/api/v1/files/upload"

// Client talks to the ImageKit REST API. The surface used here is one
// multipart upload call, a delete call and URL-string transformations.
type Client struct {
	publicKey   string
	privateKey  string
	urlEndpoint string

	uploadEndpoint string
	apiEndpoint    string
	http           *http.Client
}

type UploadResult struct {
	FileID   string `json:"fileId"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	FilePath string `json:"filePath"`
}

func New(publicKey, privateKey, urlEndpoint string) *Client {
	return &Client{
		publicKey:      publicKey,
		privateKey:     privateKey,
		urlEndpoint:    strings.TrimRight(urlEndpoint, "/"),
		uploadEndpoint: defaultUploadEndpoint,
		apiEndpoint:    "https://api.imagekit.io",
		http:           &http.Client{Timeout: 60 * time.Second},
	}
}

// WithEndpoints overrides the API hosts, used by tests.
func (c *Client) WithEndpoints(upload, api string) *Client {
	c.uploadEndpoint = upload
	c.apiEndpoint = api
	return c
}

// Upload streams a local file to the media host. fileName keeps the
// client-supplied name; the host still uniquifies it server side.
func (c *Client) Upload(ctx context.Context, localPath, fileName, folder string) (*UploadResult, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)

	go func() {
		part, err := mw.CreateFormFile("file", fileName)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, f); err != nil {
			pw.CloseWithError(err)
			return
		}
		_ = mw.WriteField("fileName", fileName)
		_ = mw.WriteField("folder", folder)
		_ = mw.WriteField("useUniqueFileName", "true")
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uploadEndpoint, pr)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("media upload failed: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var out UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Delete removes a hosted file. Callers treat failures as best-effort.
func (c *Client) Delete(ctx context.Context, fileID string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.apiEndpoint+"/v1/files/"+fileID, nil)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.privateKey, "")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNoContent && resp.StatusCode != http.StatusOK {
		return fmt.Errorf("media delete failed: %s", resp.Status)
	}
	return nil
}

// Transform is a subset of ImageKit's URL transformation parameters.
type Transform struct {
	Height  int
	Width   int
	Crop    string // "at_max" (fit), "maintain_ratio" (fill)
	Format  string
	Quality int

	OverlayText        string
	OverlayTextSize    int
	OverlayTextColor   string
	OverlayBackground  string
	OverlayTextPadding int
}

func (t Transform) encode() string {
	var parts []string
	add := func(k string, v int) {
		if v > 0 {
			parts = append(parts, k+"-"+strconv.Itoa(v))
		}
	}
	adds := func(k, v string) {
		if v != "" {
			parts = append(parts, k+"-"+v)
		}
	}
	add("h", t.Height)
	add("w", t.Width)
	adds("c", t.Crop)
	adds("f", t.Format)
	add("q", t.Quality)
	if t.OverlayText != "" {
		parts = append(parts, "ot-"+url.PathEscape(t.OverlayText))
		add("ots", t.OverlayTextSize)
		adds("otc", t.OverlayTextColor)
		adds("obg", t.OverlayBackground)
		add("otp", t.OverlayTextPadding)
	}
	return strings.Join(parts, ",")
}

// URL builds a delivery URL for a hosted file path with the given
// transformation applied. An empty transform returns the plain URL.
func (c *Client) URL(filePath string, t Transform) string {
	if !strings.HasPrefix(filePath, "/") {
		filePath = "/" + filePath
	}
	tr := t.encode()
	if tr == "" {
		return c.urlEndpoint + filePath
	}
	return c.urlEndpoint + "/tr:" + tr + filePath
}
