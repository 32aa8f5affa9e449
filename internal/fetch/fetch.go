package fetch

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"net/url"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/PuerkitoBio/goquery"
)

// Image is a downloaded menu sheet, ready to hand to the vision model.
type Image struct {
	Data []byte
	// Format is the decoded image format ("jpeg", "png", "gif"),
	// used as the inline-data MIME subtype for the model request.
	Format string
}

// Fetcher downloads menu images over HTTP.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a new Fetcher.
func NewFetcher() *Fetcher {
	return &Fetcher{
		httpClient: &http.Client{},
	}
}

// Fetch retrieves the image at rawURL. When the URL serves an HTML page
// instead of an image (cafeteria sites often link a page around the sheet),
// the actual image URL is resolved from the page and fetched instead.
func (f *Fetcher) Fetch(rawURL string) (Image, error) {
	body, contentType, err := f.get(rawURL)
	if err != nil {
		return Image{}, err
	}

	if strings.Contains(contentType, "text/html") {
		imageURL, err := resolveImageURL(rawURL, body)
		if err != nil {
			return Image{}, err
		}
		body, _, err = f.get(imageURL)
		if err != nil {
			return Image{}, err
		}
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(body))
	if err != nil {
		return Image{}, fmt.Errorf("failed to decode image from %s: %w", rawURL, err)
	}

	return Image{Data: body, Format: format}, nil
}

func (f *Fetcher) get(rawURL string) ([]byte, string, error) {
	resp, err := f.httpClient.Get(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch %s: status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read response from %s: %w", rawURL, err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// resolveImageURL finds the menu image referenced by an HTML page,
// preferring the og:image meta tag over the first inline <img>.
func resolveImageURL(pageURL string, html []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML from %s: %w", pageURL, err)
	}

	candidate, _ := doc.Find(`meta[property="og:image"]`).Attr("content")
	if candidate == "" {
		candidate, _ = doc.Find("img").First().Attr("src")
	}
	if candidate == "" {
		return "", fmt.Errorf("no image found on page %s", pageURL)
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("invalid page URL %s: %w", pageURL, err)
	}
	ref, err := url.Parse(candidate)
	if err != nil {
		return "", fmt.Errorf("invalid image URL %s on page %s: %w", candidate, pageURL, err)
	}

	return base.ResolveReference(ref).String(), nil
}
