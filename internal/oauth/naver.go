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
	defaultNaverAuthURL     = "https://nid.naver.com/oauth2.0/authorize"
	defaultNaverTokenURL    = "https://nid.naver.com/oauth2.0/token"
	defaultNaverUserInfoURL = "https://openapi.naver.com/v1/nid/me"
)

// NaverEndpoints holds the Naver OAuth endpoint URLs. The zero value
// selects the production endpoints. Naver has no separate unlink
// endpoint; revocation goes through the token endpoint.
type NaverEndpoints struct {
	AuthURL     string
	TokenURL    string
	UserInfoURL string
}

type naverClient struct {
	cfg       config.OAuthClient
	endpoints NaverEndpoints
	http      *resty.Client
}

// NewNaverClient constructs the Naver authorization-code flow client.
func NewNaverClient(cfg config.OAuthClient, endpoints NaverEndpoints) Client {
	if endpoints.AuthURL == "" {
		endpoints.AuthURL = defaultNaverAuthURL
	}
	if endpoints.TokenURL == "" {
		endpoints.TokenURL = defaultNaverTokenURL
	}
	if endpoints.UserInfoURL == "" {
		endpoints.UserInfoURL = defaultNaverUserInfoURL
	}

	return &naverClient{
		cfg:       cfg,
		endpoints: endpoints,
		http:      newRestyClient(0),
	}
}

func (n *naverClient) Provider() models.Provider {
	return models.ProviderNaver
}

func (n *naverClient) AuthorizationURL(state string) string {
	params := url.Values{
		"response_type": {"code"},
		"client_id":     {n.cfg.ClientID},
		"redirect_uri":  {n.cfg.RedirectURL},
		"state":         {state},
	}
	return n.endpoints.AuthURL + "?" + params.Encode()
}

// naverUserInfo is the /v1/nid/me payload; the profile sits under "response".
type naverUserInfo struct {
	Response struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"response"`
}

func (n *naverClient) Exchange(ctx context.Context, code string) (Identity, error) {
	var token tokenResponse
	resp, err := n.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     n.cfg.ClientID,
			"client_secret": n.cfg.ClientSecret,
			"redirect_uri":  n.cfg.RedirectURL,
			"grant_type":    "authorization_code",
		}).
		SetResult(&token).
		Post(n.endpoints.TokenURL)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	if resp.IsError() || token.AccessToken == "" {
		return Identity{}, fmt.Errorf("%w: status %d", ErrTokenExchange, resp.StatusCode())
	}

	var info naverUserInfo
	resp, err = n.http.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&info).
		Get(n.endpoints.UserInfoURL)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUserInfoFetch, err)
	}
	if resp.IsError() || info.Response.ID == "" {
		return Identity{}, fmt.Errorf("%w: status %d", ErrUserInfoFetch, resp.StatusCode())
	}

	return Identity{
		Provider:    models.ProviderNaver,
		SubjectID:   info.Response.ID,
		Email:       info.Response.Email,
		DisplayName: info.Response.Name,
		AccessToken: token.AccessToken,
	}, nil
}

func (n *naverClient) Unlink(ctx context.Context, accessToken string) error {
	resp, err := n.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type":    "delete",
			"client_id":     n.cfg.ClientID,
			"client_secret": n.cfg.ClientSecret,
			"access_token":  accessToken,
		}).
		Post(n.endpoints.TokenURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnlink, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrUnlink, resp.StatusCode())
	}

	return nil
}

// compile-time interface check
var _ Client = (*naverClient)(nil)
