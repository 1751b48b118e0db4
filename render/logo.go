package render

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	logoFetchTimeout = 3 * time.Second
	logoMaxBytes     = 2 << 20
)

type logoResult struct {
	data   []byte
	format string
	err    error
}

// fetchLogoAsync starts the single best-effort asset fetch of a render
// call. The result channel is buffered so the fetch never blocks past its
// timeout even if the assembler aborts early. A failure is reported, not
// retried; the assembler substitutes the text fallback.
func fetchLogoAsync(ctx context.Context, url string) <-chan logoResult {
	ch := make(chan logoResult, 1)
	go func() {
		ch <- fetchLogo(ctx, url)
	}()
	return ch
}

func fetchLogo(ctx context.Context, url string) logoResult {
	if url == "" {
		return logoResult{err: fmt.Errorf("render: no logo configured")}
	}

	ctx, cancel := context.WithTimeout(ctx, logoFetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return logoResult{err: fmt.Errorf("render: logo request: %w", err)}
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return logoResult{err: fmt.Errorf("render: fetch logo: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return logoResult{err: fmt.Errorf("render: fetch logo: status %d", resp.StatusCode)}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, logoMaxBytes))
	if err != nil {
		return logoResult{err: fmt.Errorf("render: read logo: %w", err)}
	}

	return logoResult{data: data, format: logoFormat(resp.Header.Get("Content-Type"), url)}
}

// logoFormat maps a content type or URL extension to gofpdf's image type
// names.
func logoFormat(contentType, url string) string {
	switch {
	case strings.Contains(contentType, "png"):
		return "PNG"
	case strings.Contains(contentType, "jpeg"), strings.Contains(contentType, "jpg"):
		return "JPG"
	}
	lower := strings.ToLower(url)
	if strings.HasSuffix(lower, ".jpg") || strings.HasSuffix(lower, ".jpeg") {
		return "JPG"
	}
	return "PNG"
}
