package gauth

import (
	"context"
	"fmt"
	"net/http"

	goauth2 "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// ProfileScopes are the scopes UserInfo needs besides the data scopes.
var ProfileScopes = []string{goauth2.UserinfoProfileScope, goauth2.UserinfoEmailScope}

// Profile is the signed-in user's public profile.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	GivenName string `json:"given_name"`
	Picture   string `json:"picture"`
}

// UserInfo fetches the profile of the user that client is authorized for.
func UserInfo(ctx context.Context, client *http.Client) (Profile, error) {
	svc, err := goauth2.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return Profile{}, fmt.Errorf("failed to create oauth2 service: %w", err)
	}

	info, err := svc.Userinfo.Get().Context(ctx).Do()
	if err != nil {
		return Profile{}, fmt.Errorf("failed to get user info: %w", err)
	}

	return Profile{
		ID:        info.Id,
		Email:     info.Email,
		Name:      info.Name,
		GivenName: info.GivenName,
		Picture:   info.Picture,
	}, nil
}
