// Package oauth implements the authorization-code flow clients for the
// supported social identity providers (Google, Kakao, Naver).
//
// Every provider normalizes its token and userinfo responses into an
// [Identity] so the identity reconciliation service never sees a
// provider-specific payload shape. Clients are registered per provider tag
// in a [Clients] set; an unconfigured provider is simply absent from it.
package oauth

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/haeun-dev/memo-server/internal/config"
	"github.com/haeun-dev/memo-server/models"
)

// Identity is the normalized result of a completed authorization-code
// exchange: the stable subject id the provider assigns to the account, the
// account email, the display name (may be empty) and the access token kept
// in the session for a later unlink call.
type Identity struct {
	Provider    models.Provider
	SubjectID   string
	Email       string
	DisplayName string
	AccessToken string
}

// Client is the authorization-code flow surface of one identity provider.
type Client interface {
	// Provider returns the tag this client serves.
	Provider() models.Provider

	// AuthorizationURL builds the provider's consent page URL carrying the
	// given anti-forgery state parameter.
	AuthorizationURL(state string) string

	// Exchange trades the authorization code for an access token, fetches
	// the user info and returns the normalized identity.
	Exchange(ctx context.Context, code string) (Identity, error)

	// Unlink revokes the social link using the access token captured at
	// login time. Best-effort: callers log failures and move on.
	Unlink(ctx context.Context, accessToken string) error
}

// Clients is the provider tag → client registry handed to the services.
type Clients map[models.Provider]Client

// Get returns the client registered for the given provider tag.
func (c Clients) Get(provider models.Provider) (Client, bool) {
	client, ok := c[provider]
	return client, ok
}

// NewClients builds the registry from application settings. Providers with
// no client id configured are left out of the set.
func NewClients(cfg config.OAuth) Clients {
	clients := Clients{}
	if cfg.Google.ClientID != "" {
		clients[models.ProviderGoogle] = NewGoogleClient(cfg.Google, GoogleEndpoints{})
	}
	if cfg.Kakao.ClientID != "" {
		clients[models.ProviderKakao] = NewKakaoClient(cfg.Kakao, KakaoEndpoints{})
	}
	if cfg.Naver.ClientID != "" {
		clients[models.ProviderNaver] = NewNaverClient(cfg.Naver, NaverEndpoints{})
	}
	return clients
}

// newRestyClient builds the HTTP client shared by a provider's endpoints.
func newRestyClient(timeout time.Duration) *resty.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return resty.New().SetTimeout(timeout)
}

// tokenResponse is the common shape of the token endpoint answer across all
// three providers.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
