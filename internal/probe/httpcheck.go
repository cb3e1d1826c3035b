package probe

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"go.uber.org/zap"
)

// checkEndpoint issues a HEAD request against url. A 405 response or a
// non-timeout transport error falls back to a single GET; timeouts never
// retry since the GET would just burn another full timeout.
func (p *Prober) checkEndpoint(ctx context.Context, url string) (bool, string) {
	resp, err := p.do(ctx, http.MethodHead, url)
	if err != nil {
		if isTimeout(err) {
			return false, "HTTP timeout"
		}
		p.logger.Debug("HEAD failed, retrying with GET",
			zap.String("url", url), zap.Error(err))
		return p.fetchViaGet(ctx, url)
	}
	resp.Body.Close()

	if resp.StatusCode == http.StatusMethodNotAllowed {
		return p.fetchViaGet(ctx, url)
	}
	return summarizeStatus(resp.StatusCode)
}

// fetchViaGet is the fallback path; any transport error here is final.
func (p *Prober) fetchViaGet(ctx context.Context, url string) (bool, string) {
	resp, err := p.do(ctx, http.MethodGet, url)
	if err != nil {
		if isTimeout(err) {
			return false, "HTTP timeout"
		}
		p.logger.Debug("GET failed", zap.String("url", url), zap.Error(err))
		return false, "HTTP error"
	}
	resp.Body.Close()

	return summarizeStatus(resp.StatusCode)
}

func (p *Prober) do(ctx context.Context, method, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	return p.client.Do(req)
}

// summarizeStatus classifies a status code: 2xx and 3xx count as reachable.
func summarizeStatus(code int) (bool, string) {
	return code >= 200 && code < 400, fmt.Sprintf("HTTP %d", code)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}
