package github

import (
	"context"
	"errors"
	"fmt"

	gh "github.com/google/go-github/v73/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"
)

// AuthResult carries what the callback handler needs from a completed
// login: the canonical GitHub login and the bearer token for API calls.
type AuthResult struct {
	Login string
	Token string
}

// Authenticator runs the GitHub OAuth login handshake.
type Authenticator interface {
	// AuthCodeURL returns the GitHub authorization URL for the given state.
	AuthCodeURL(state string) string

	// Exchange trades the authorization code for a token and resolves the
	// authenticated user's login.
	Exchange(ctx context.Context, code string) (*AuthResult, error)
}

// OAuth implements Authenticator against github.com.
type OAuth struct {
	log     *zap.SugaredLogger
	cfg     *oauth2.Config
	baseURL string
}

// NewOAuth builds the OAuth provider from app credentials. baseURL
// overrides the API endpoint used to resolve the user, empty means
// api.github.com.
func NewOAuth(log *zap.SugaredLogger, clientID, clientSecret, redirectURL, baseURL string) (*OAuth, error) {
	if clientID == "" || clientSecret == "" || redirectURL == "" {
		return nil, errors.New("github oauth config missing required fields")
	}

	return &OAuth{
		log: log.Named("gateway.github.oauth"),
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     oauthgithub.Endpoint,
			Scopes:       []string{"read:user"},
		},
		baseURL: baseURL,
	}, nil
}

// AuthCodeURL returns the GitHub authorization URL for the given state.
func (o *OAuth) AuthCodeURL(state string) string {
	return o.cfg.AuthCodeURL(state)
}

// Exchange trades the authorization code for an access token and fetches
// the authenticated user's login.
func (o *OAuth) Exchange(ctx context.Context, code string) (*AuthResult, error) {
	token, err := o.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("github token exchange failed: %w", err)
	}

	api := gh.NewClient(nil).WithAuthToken(token.AccessToken)
	if o.baseURL != "" {
		api, err = api.WithEnterpriseURLs(o.baseURL, o.baseURL)
		if err != nil {
			return nil, fmt.Errorf("github api base url: %w", err)
		}
	}

	user, _, err := api.Users.Get(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("fetch authenticated user: %w", err)
	}
	if user.GetLogin() == "" {
		return nil, errors.New("github returned user without login")
	}

	o.log.Infow("github login verified", "login", user.GetLogin())

	return &AuthResult{Login: user.GetLogin(), Token: token.AccessToken}, nil
}
