// Package apiclient implementa el cliente de la API con su session store:
// guarda el token en memoria y como cookie (auth_token), lo adjunta como
// Bearer en cada request y ante un 401 limpia la sesión y notifica a los
// suscriptores para que redirijan al login.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"
)

// ErrSessionEnded indica que el servidor respondió 401: la sesión terminó
// (token expirado, inválido o usuario eliminado).
var ErrSessionEnded = errors.New("sesión terminada")

// TokenCookie nombre de la cookie durable que guarda el token crudo.
const TokenCookie = "auth_token"

// User copia local del perfil, con los campos que consume la UI.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Status    string `json:"status"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client consume la API y mantiene la sesión actual.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	session *Session
}

// New construye el cliente contra baseURL (ej. http://localhost:8080).
// El jar de cookies es la copia durable del token dentro del proceso.
func New(baseURL string) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("base URL inválida: %w", err)
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: u,
		http:    &http.Client{Jar: jar, Timeout: 15 * time.Second},
		session: NewSession(),
	}, nil
}

// Session expone el session store para gatear navegación y suscribirse
// al fin de sesión.
func (c *Client) Session() *Session {
	return c.session
}

// Login envía credenciales; en éxito guarda token + usuario y persiste la
// cookie auth_token.
func (c *Client) Login(ctx context.Context, email, password string) (*User, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": password})
	resp, err := c.do(ctx, http.MethodPost, "/api/auth/login", body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	var out loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decodificar login: %w", err)
	}
	c.session.Set(out.AccessToken, &out.User)
	c.storeCookie(out.AccessToken)
	return &out.User, nil
}

// FetchProfile refresca el usuario de la sesión desde /api/auth/profile.
// Un 401 limpia la sesión y devuelve ErrSessionEnded.
func (c *Client) FetchProfile(ctx context.Context) (*User, error) {
	resp, err := c.do(ctx, http.MethodGet, "/api/auth/profile", nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.endSession()
		return nil, ErrSessionEnded
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeError(resp)
	}
	var u User
	if err := json.NewDecoder(resp.Body).Decode(&u); err != nil {
		return nil, fmt.Errorf("decodificar perfil: %w", err)
	}
	c.session.SetUser(&u)
	return &u, nil
}

// Logout limpia token, usuario y cookie, y notifica a los suscriptores.
func (c *Client) Logout() {
	c.endSession()
}

// InitFromCookie restaura la sesión desde la cookie durable (arranque de la
// app) y valida el token refrescando el perfil.
func (c *Client) InitFromCookie(ctx context.Context) error {
	for _, ck := range c.http.Jar.Cookies(c.baseURL) {
		if ck.Name == TokenCookie && ck.Value != "" {
			c.session.Set(ck.Value, nil)
			_, err := c.FetchProfile(ctx)
			return err
		}
	}
	return nil
}

// do arma el request, adjunta el Bearer si hay token y ejecuta.
func (c *Client) do(ctx context.Context, method, path string, body []byte) (*http.Response, error) {
	u := c.baseURL.JoinPath(path)
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.session.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return c.http.Do(req)
}

func (c *Client) storeCookie(token string) {
	c.http.Jar.SetCookies(c.baseURL, []*http.Cookie{{
		Name:  TokenCookie,
		Value: token,
		Path:  "/",
	}})
}

func (c *Client) endSession() {
	c.session.Clear()
	c.storeCookie("")
}

func decodeError(resp *http.Response) error {
	var e apiError
	if err := json.NewDecoder(resp.Body).Decode(&e); err != nil || e.Message == "" {
		return fmt.Errorf("API respondió %d", resp.StatusCode)
	}
	return fmt.Errorf("%s: %s", e.Code, e.Message)
}
