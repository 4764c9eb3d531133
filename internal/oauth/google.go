package oauth

import (
	"context"
	"fmt"
	"net/url"

	"github.com/go-resty/resty/v2"

	"github.com/haeun-dev/memo-server/internal/config"
	"github.com/haeun-dev/memo-server/models"
)

const (
	defaultGoogleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	defaultGoogleTokenURL    = "https://oauth2.googleapis.com/token"
	defaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v1/userinfo"
	defaultGoogleRevokeURL   = "https://oauth2.googleapis.com/revoke"
)

// GoogleEndpoints holds the Google OAuth endpoint URLs. The zero value
// selects the production endpoints; tests point them at a local server.
type GoogleEndpoints struct {
	AuthURL     string
	TokenURL    string
	UserInfoURL string
	RevokeURL   string
}

type googleClient struct {
	cfg       config.OAuthClient
	endpoints GoogleEndpoints
	http      *resty.Client
}

// NewGoogleClient constructs the Google authorization-code flow client.
func NewGoogleClient(cfg config.OAuthClient, endpoints GoogleEndpoints) Client {
	if endpoints.AuthURL == "" {
		endpoints.AuthURL = defaultGoogleAuthURL
	}
	if endpoints.TokenURL == "" {
		endpoints.TokenURL = defaultGoogleTokenURL
	}
	if endpoints.UserInfoURL == "" {
		endpoints.UserInfoURL = defaultGoogleUserInfoURL
	}
	if endpoints.RevokeURL == "" {
		endpoints.RevokeURL = defaultGoogleRevokeURL
	}

	return &googleClient{
		cfg:       cfg,
		endpoints: endpoints,
		http:      newRestyClient(0),
	}
}

func (g *googleClient) Provider() models.Provider {
	return models.ProviderGoogle
}

func (g *googleClient) AuthorizationURL(state string) string {
	params := url.Values{
		"response_type": {"code"},
		"client_id":     {g.cfg.ClientID},
		"redirect_uri":  {g.cfg.RedirectURL},
		"scope":         {"openid email profile"},
		"state":         {state},
	}
	return g.endpoints.AuthURL + "?" + params.Encode()
}

// googleUserInfo is the userinfo payload; "id" is the stable subject id.
type googleUserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (g *googleClient) Exchange(ctx context.Context, code string) (Identity, error) {
	var token tokenResponse
	resp, err := g.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     g.cfg.ClientID,
			"client_secret": g.cfg.ClientSecret,
			"redirect_uri":  g.cfg.RedirectURL,
			"grant_type":    "authorization_code",
		}).
		SetResult(&token).
		Post(g.endpoints.TokenURL)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	if resp.IsError() || token.AccessToken == "" {
		return Identity{}, fmt.Errorf("%w: status %d", ErrTokenExchange, resp.StatusCode())
	}

	var info googleUserInfo
	resp, err = g.http.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&info).
		Get(g.endpoints.UserInfoURL)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUserInfoFetch, err)
	}
	if resp.IsError() || info.ID == "" {
		return Identity{}, fmt.Errorf("%w: status %d", ErrUserInfoFetch, resp.StatusCode())
	}

	return Identity{
		Provider:    models.ProviderGoogle,
		SubjectID:   info.ID,
		Email:       info.Email,
		DisplayName: info.Name,
		AccessToken: token.AccessToken,
	}, nil
}

func (g *googleClient) Unlink(ctx context.Context, accessToken string) error {
	resp, err := g.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetQueryParam("token", accessToken).
		Post(g.endpoints.RevokeURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnlink, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrUnlink, resp.StatusCode())
	}

	return nil
}

// compile-time interface check
var _ Client = (*googleClient)(nil)
