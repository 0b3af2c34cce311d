package client

import "context"

// SignUp registers a new account. Registration does not sign the caller
// in; follow with SignIn.
func (c *Client) SignUp(ctx context.Context, name, email, password string) error {
	in := map[string]string{"name": name, "email": email, "password": password}
	return c.doJSON(ctx, "POST", "/signup", in, nil, false)
}

// SignIn authenticates and establishes a session, persisting the token
// when a local store is configured.
func (c *Client) SignIn(ctx context.Context, email, password string) (*Identity, error) {
	in := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
		ID    string `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := c.doJSON(ctx, "POST", "/signin", in, &out, false); err != nil {
		return nil, err
	}
	if err := c.session.establish(out.Token); err != nil {
		return nil, err
	}
	return &Identity{ID: out.ID, Name: out.Name, Email: out.Email}, nil
}

// SignOut drops the current session.
func (c *Client) SignOut() error {
	return c.session.SignOut()
}
