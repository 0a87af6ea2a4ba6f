// Package identity verifies credentials issued by the identity provider's
// popup sign-in.
package identity

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/marqueehq/marquee/pkg/config"
	"github.com/marqueehq/marquee/pkg/errcodes"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
)

// Identity is the profile the provider vouches for.
type Identity struct {
	UID         string
	DisplayName *string
	PhotoURL    *string
}

type tokenInfo struct {
	Sub     string `json:"sub"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Aud     string `json:"aud"`
}

type Provider struct {
	http         *http.Client
	tokenInfoURL string
	clientID     string
}

func New(cfg *config.Config) *Provider {
	return &Provider{
		http:         &http.Client{Timeout: 10 * time.Second},
		tokenInfoURL: cfg.IdentityTokenInfoURL,
		clientID:     cfg.IdentityClientID,
	}
}

// Exchange trades a credential for the identity it was issued to. Credentials
// the provider rejects, or that were issued to another client, are
// unauthorized.
func (p *Provider) Exchange(ctx context.Context, credential string) (*Identity, error) {
	log := logger.FromContext(ctx)

	u, err := url.Parse(p.tokenInfoURL)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	q := u.Query()
	q.Set("id_token", credential)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "token info request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Info("credential rejected by identity provider", logger.Data{"status": resp.StatusCode})
		return nil, errcodes.Unauthorized("Sign-in failed.")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1024*1024))
	if err != nil {
		return nil, errors.WithStack(err)
	}

	info := tokenInfo{}
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, errors.WithStack(err)
	}
	if info.Sub == "" {
		return nil, errcodes.Unauthorized("Sign-in failed.")
	}
	if p.clientID != "" && info.Aud != p.clientID {
		log.Warn("credential issued to another client", logger.Data{"aud": info.Aud})
		return nil, errcodes.Unauthorized("Sign-in failed.")
	}

	return &Identity{
		UID:         info.Sub,
		DisplayName: optional(info.Name),
		PhotoURL:    optional(info.Picture),
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
