package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// Endpoint is Strava's OAuth 2 endpoint.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://www.strava.com/oauth/authorize",
	TokenURL: "https://www.strava.com/oauth/token",
}

const callbackAddr = ":8080"

// Authenticator runs the OAuth code flow and persists tokens between runs.
type Authenticator struct {
	cfg        *oauth2.Config
	tokensFile string
	log        *zap.Logger
}

func NewAuthenticator(clientID, clientSecret, tokensFile string, log *zap.Logger) *Authenticator {
	return &Authenticator{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     Endpoint,
			RedirectURL:  "http://localhost:8080/exchange_token",
			Scopes:       []string{"activity:read_all"},
		},
		tokensFile: tokensFile,
		log:        log,
	}
}

// Token returns a valid token, refreshing or running the interactive flow
// as needed. The refreshed token is written back to disk.
func (a *Authenticator) Token(ctx context.Context) (*oauth2.Token, error) {
	if a.cfg.ClientID == "" || a.cfg.ClientSecret == "" {
		return nil, fmt.Errorf("STRAVA_CLIENT_ID and STRAVA_CLIENT_SECRET must be set")
	}

	tok, err := a.loadToken()
	if err != nil {
		return nil, err
	}
	if tok == nil {
		tok, err = a.interactiveFlow(ctx)
		if err != nil {
			return nil, err
		}
		return tok, a.saveToken(tok)
	}

	// TokenSource refreshes expired tokens transparently.
	fresh, err := a.cfg.TokenSource(ctx, tok).Token()
	if err != nil {
		return nil, fmt.Errorf("refresh strava token: %w", err)
	}
	if fresh.AccessToken != tok.AccessToken {
		a.log.Info("refreshed strava access token")
		if err := a.saveToken(fresh); err != nil {
			return nil, err
		}
	}
	return fresh, nil
}

// Client returns an HTTP client that injects and refreshes the token.
func (a *Authenticator) Client(ctx context.Context, tok *oauth2.Token) *httpDoer {
	return &httpDoer{inner: a.cfg.Client(ctx, tok)}
}

// interactiveFlow prints the authorize URL and waits for Strava to redirect
// the browser to a short-lived local callback server.
func (a *Authenticator) interactiveFlow(ctx context.Context) (*oauth2.Token, error) {
	codeCh := make(chan string, 1)

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/exchange_token", func(c *fiber.Ctx) error {
		code := c.Query("code")
		if code == "" {
			return c.Status(fiber.StatusBadRequest).SendString("missing code parameter")
		}
		select {
		case codeCh <- code:
		default:
		}
		return c.SendString("Authorization successful! You can close this window.")
	})

	go func() {
		if err := app.Listen(callbackAddr); err != nil {
			a.log.Error("callback server stopped", zap.Error(err))
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			a.log.Warn("callback server shutdown", zap.Error(err))
		}
	}()

	authURL := a.cfg.AuthCodeURL("", oauth2.SetAuthURLParam("approval_prompt", "force"))
	a.log.Info("open this URL in your browser to authorize", zap.String("url", authURL))
	fmt.Println(authURL)

	var code string
	select {
	case code = <-codeCh:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	tok, err := a.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchange strava code: %w", err)
	}
	return tok, nil
}

func (a *Authenticator) loadToken() (*oauth2.Token, error) {
	raw, err := os.ReadFile(a.tokensFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read tokens file: %w", err)
	}

	tok := &oauth2.Token{}
	if err := json.Unmarshal(raw, tok); err != nil {
		return nil, fmt.Errorf("parse tokens file: %w", err)
	}
	return tok, nil
}

func (a *Authenticator) saveToken(tok *oauth2.Token) error {
	raw, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	// Token grants activity read access; keep it private.
	if err := os.WriteFile(a.tokensFile, raw, 0o600); err != nil {
		return fmt.Errorf("write tokens file: %w", err)
	}
	return nil
}
