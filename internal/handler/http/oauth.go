package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/haeun-dev/memo-server/internal/logger"
	"github.com/haeun-dev/memo-server/internal/oauth"
	"github.com/haeun-dev/memo-server/internal/session"
	"github.com/haeun-dev/memo-server/internal/utils"
	"github.com/haeun-dev/memo-server/models"
)

// providerClient maps the {provider} URL segment to its configured client.
func (h *Handler) providerClient(r *http.Request) (oauth.Client, models.Provider, error) {
	provider := models.Provider(chi.URLParam(r, "provider"))
	if !provider.Valid() {
		return nil, "", ErrUnknownProvider
	}

	client, ok := h.providers.Get(provider)
	if !ok {
		return nil, "", ErrUnknownProvider
	}

	return client, provider, nil
}

// oauthLogin starts the authorization-code flow: a fresh anti-forgery state
// is stored in the session cookie and carried to the provider's consent
// page, to be compared on callback.
func (h *Handler) oauthLogin(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	client, provider, err := h.providerClient(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	state := uuid.NewString()
	if err := h.sessions.Issue(w, session.Session{State: state}); err != nil {
		log.Err(err).Msg("issuing state session failed")
		writeError(w, r, err)
		return
	}

	log.Debug().Str("provider", provider.String()).Msg("redirecting to provider consent page")

	http.Redirect(w, r, client.AuthorizationURL(state), http.StatusFound)
}

// oauthCallback completes the flow: the state is checked against the session
// cookie, the code is exchanged for a normalized identity, the identity is
// reconciled into a canonical user and a social session is issued.
func (h *Handler) oauthCallback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	client, provider, err := h.providerClient(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	sess, _ := utils.GetSessionFromContext(ctx)
	state := r.URL.Query().Get("state")
	if state == "" || state != sess.State {
		log.Error().Str("provider", provider.String()).Msg("oauth state mismatch")
		writeError(w, r, ErrStateMismatch)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, r, ErrMissingCode)
		return
	}

	identity, err := client.Exchange(ctx, code)
	if err != nil {
		writeError(w, r, err)
		return
	}

	reconciled, created, err := h.services.IdentityService.ReconcileSocial(ctx, identity)
	if err != nil {
		writeError(w, r, err)
		return
	}

	err = h.sessions.Issue(w, session.Session{
		Provider:    identity.Provider,
		SubjectID:   identity.SubjectID,
		AccessToken: identity.AccessToken,
	})
	if err != nil {
		log.Err(err).Msg("issuing session cookie failed")
		writeError(w, r, err)
		return
	}

	log.Info().
		Int64("user_id", reconciled.UserID).
		Str("provider", provider.String()).
		Bool("created", created).
		Msg("social login completed")

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.WriteJSON(w, reconciled, status)
}
