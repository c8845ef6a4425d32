// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package inp

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gogpu/puppetview"
)

// ErrFetchStatus is returned when the asset server answers with a
// non-OK status.
var ErrFetchStatus = errors.New("inp: unexpected response status")

// Fetch retrieves a puppet asset over HTTP. It is a startup-phase
// operation invoked once per viewer run; failures are fatal to startup
// and are not retried.
func Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("inp: fetch %s: %w", url, err)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("inp: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("inp: fetch %s: %w: %s", url, ErrFetchStatus, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("inp: fetch %s: %w", url, err)
	}

	puppetview.Logger().Debug("fetched asset", "url", url, "bytes", len(data))
	return data, nil
}
