package oauth

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/haeun-dev/memo-server/internal/config"
	"github.com/haeun-dev/memo-server/models"
)

const (
	defaultKakaoAuthURL     = "https://kauth.kakao.com/oauth/authorize"
	defaultKakaoTokenURL    = "https://kauth.kakao.com/oauth/token"
	defaultKakaoUserInfoURL = "https://kapi.kakao.com/v2/user/me"
	defaultKakaoUnlinkURL   = "https://kapi.kakao.com/v1/user/unlink"
)

// KakaoEndpoints holds the Kakao OAuth endpoint URLs. The zero value
// selects the production endpoints.
type KakaoEndpoints struct {
	AuthURL     string
	TokenURL    string
	UserInfoURL string
	UnlinkURL   string
}

type kakaoClient struct {
	cfg       config.OAuthClient
	endpoints KakaoEndpoints
	http      *resty.Client
}

// NewKakaoClient constructs the Kakao authorization-code flow client.
func NewKakaoClient(cfg config.OAuthClient, endpoints KakaoEndpoints) Client {
	if endpoints.AuthURL == "" {
		endpoints.AuthURL = defaultKakaoAuthURL
	}
	if endpoints.TokenURL == "" {
		endpoints.TokenURL = defaultKakaoTokenURL
	}
	if endpoints.UserInfoURL == "" {
		endpoints.UserInfoURL = defaultKakaoUserInfoURL
	}
	if endpoints.UnlinkURL == "" {
		endpoints.UnlinkURL = defaultKakaoUnlinkURL
	}

	return &kakaoClient{
		cfg:       cfg,
		endpoints: endpoints,
		http:      newRestyClient(0),
	}
}

func (k *kakaoClient) Provider() models.Provider {
	return models.ProviderKakao
}

func (k *kakaoClient) AuthorizationURL(state string) string {
	params := url.Values{
		"response_type": {"code"},
		"client_id":     {k.cfg.ClientID},
		"redirect_uri":  {k.cfg.RedirectURL},
		"state":         {state},
	}
	return k.endpoints.AuthURL + "?" + params.Encode()
}

// kakaoUserInfo is the /v2/user/me payload. The account id is numeric,
// the nickname lives under properties and the email under kakao_account.
type kakaoUserInfo struct {
	ID         int64 `json:"id"`
	Properties struct {
		Nickname string `json:"nickname"`
	} `json:"properties"`
	KakaoAccount struct {
		Email string `json:"email"`
	} `json:"kakao_account"`
}

func (k *kakaoClient) Exchange(ctx context.Context, code string) (Identity, error) {
	var token tokenResponse
	resp, err := k.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"code":          code,
			"client_id":     k.cfg.ClientID,
			"client_secret": k.cfg.ClientSecret,
			"redirect_uri":  k.cfg.RedirectURL,
			"grant_type":    "authorization_code",
		}).
		SetResult(&token).
		Post(k.endpoints.TokenURL)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrTokenExchange, err)
	}
	if resp.IsError() || token.AccessToken == "" {
		return Identity{}, fmt.Errorf("%w: status %d", ErrTokenExchange, resp.StatusCode())
	}

	var info kakaoUserInfo
	resp, err = k.http.R().
		SetContext(ctx).
		SetAuthToken(token.AccessToken).
		SetResult(&info).
		Get(k.endpoints.UserInfoURL)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrUserInfoFetch, err)
	}
	if resp.IsError() || info.ID == 0 {
		return Identity{}, fmt.Errorf("%w: status %d", ErrUserInfoFetch, resp.StatusCode())
	}

	return Identity{
		Provider:    models.ProviderKakao,
		SubjectID:   strconv.FormatInt(info.ID, 10),
		Email:       info.KakaoAccount.Email,
		DisplayName: info.Properties.Nickname,
		AccessToken: token.AccessToken,
	}, nil
}

func (k *kakaoClient) Unlink(ctx context.Context, accessToken string) error {
	resp, err := k.http.R().
		SetContext(ctx).
		SetAuthToken(accessToken).
		Post(k.endpoints.UnlinkURL)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnlink, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: status %d", ErrUnlink, resp.StatusCode())
	}

	return nil
}

// compile-time interface check
var _ Client = (*kakaoClient)(nil)
