package models

// Provider is the tagged set of supported social identity providers.
// All provider-specific dispatch in the application goes through this type
// and the [User] accessors below, so a newly added provider surfaces as a
// compile-time gap instead of a silent runtime fallthrough.
type Provider string

const (
	ProviderGoogle Provider = "google"
	ProviderKakao  Provider = "kakao"
	ProviderNaver  Provider = "naver"
)

// Providers lists every supported provider in a stable order.
var Providers = []Provider{ProviderGoogle, ProviderKakao, ProviderNaver}

// Valid reports whether p is one of the supported providers.
func (p Provider) Valid() bool {
	switch p {
	case ProviderGoogle, ProviderKakao, ProviderNaver:
		return true
	}
	return false
}

func (p Provider) String() string {
	return string(p)
}

// ProviderID returns the subject id stored for the given provider, or an
// empty string when the user has no such link or the provider is unknown.
func (u *User) ProviderID(p Provider) string {
	switch p {
	case ProviderGoogle:
		return u.GoogleID
	case ProviderKakao:
		return u.KakaoID
	case ProviderNaver:
		return u.NaverID
	}
	return ""
}

// SetProviderID stores the subject id for the given provider. Unknown
// providers are ignored.
func (u *User) SetProviderID(p Provider, id string) {
	switch p {
	case ProviderGoogle:
		u.GoogleID = id
	case ProviderKakao:
		u.KakaoID = id
	case ProviderNaver:
		u.NaverID = id
	}
}
