package github

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const apiBaseURL = "https://api.github.com"

// Client talks to the GitHub App installation API to list repositories an
// installation can see. Results are projections only; nothing is persisted.
type Client struct {
	appId      string
	privateKey *rsa.PrivateKey
	baseURL    string
	httpClient *http.Client
}

func NewClient(appId string, privateKeyPEM []byte) (*Client, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM(privateKeyPEM)
	if err != nil {
		return nil, fmt.Errorf("failed to parse GitHub App private key: %w", err)
	}
	return &Client{
		appId:      appId,
		privateKey: key,
		baseURL:    apiBaseURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}, nil
}

// appJWT mints the short-lived RS256 token GitHub requires for app-level
// endpoints. Issued-at is backdated a minute to absorb clock drift.
func (c *Client) appJWT() (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    c.appId,
		IssuedAt:  jwt.NewNumericDate(now.Add(-time.Minute)),
		ExpiresAt: jwt.NewNumericDate(now.Add(9 * time.Minute)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	return token.SignedString(c.privateKey)
}

type accessTokenResponse struct {
	Token string `json:"token"`
}

func (c *Client) installationToken(ctx context.Context, installationId uint) (string, error) {
	appToken, err := c.appJWT()
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/app/installations/%d/access_tokens", c.baseURL, installationId)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+appToken)
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("installation token request failed: %s: %s", resp.Status, string(body))
	}

	var tokenResp accessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tokenResp); err != nil {
		return "", err
	}
	return tokenResp.Token, nil
}

// Repository mirrors the subset of GitHub's repository object the import
// flow projects.
type Repository struct {
	Id            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Size          int64  `json:"size"`
	Language      string `json:"language"`
	HtmlUrl       string `json:"html_url"`
	Homepage      string `json:"homepage"`
	DefaultBranch string `json:"default_branch"`
	Private       bool   `json:"private"`
	Fork          bool   `json:"fork"`
	IsTemplate    bool   `json:"is_template"`
	Archived      bool   `json:"archived"`
	License       *struct {
		SpdxId string `json:"spdx_id"`
	} `json:"license"`
}

type listRepositoriesResponse struct {
	Repositories []Repository `json:"repositories"`
}

// ListInstallationRepositories fetches every repository the installation
// grants access to, following page links until exhausted.
func (c *Client) ListInstallationRepositories(ctx context.Context, installationId uint) ([]Repository, error) {
	token, err := c.installationToken(ctx, installationId)
	if err != nil {
		return nil, err
	}

	var all []Repository
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/installation/repositories?per_page=100&page=%d", c.baseURL, page)
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Accept", "application/vnd.github+json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusOK {
			body, _ := io.ReadAll(resp.Body)
			resp.Body.Close()
			return nil, fmt.Errorf("repository listing failed: %s: %s", resp.Status, string(body))
		}

		var pageResp listRepositoriesResponse
		err = json.NewDecoder(resp.Body).Decode(&pageResp)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		all = append(all, pageResp.Repositories...)
		if len(pageResp.Repositories) < 100 {
			break
		}
	}

	return all, nil
}
