package views

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/popx/internal/client/models"
	"github.com/dmitrijs2005/popx/internal/client/router"
	"github.com/dmitrijs2005/popx/internal/client/services"
	"github.com/dmitrijs2005/popx/internal/common"
)

// MsgEditProfile is what the UI shows for the edit placeholder.
const MsgEditProfile = "Edit profile functionality can be implemented here"

const joinedLayout = "Jan 2, 2006"

// ProfileView shows the current user.
type ProfileView struct {
	auth services.AuthService
	user *models.User
}

// NewProfileView builds the view from the current auth state. User is nil
// when nobody is logged in; the router never renders the view then.
func NewProfileView(auth services.AuthService) *ProfileView {
	return &ProfileView{auth: auth, user: auth.State().User}
}

func (v *ProfileView) User() *models.User {
	return v.user
}

// Initial is the avatar letter: the first letter of the full name in upper
// case, or "U".
func (v *ProfileView) Initial() string {
	if v.user == nil {
		return "U"
	}
	for _, r := range strings.TrimSpace(v.user.FullName) {
		return string(unicode.ToUpper(r))
	}
	return "U"
}

// Joined is the formatted signup date, empty when unknown.
func (v *ProfileView) Joined() string {
	if v.user == nil || v.user.CreatedAt.IsZero() {
		return ""
	}
	return v.user.CreatedAt.Local().Format(joinedLayout)
}

// Details are the label/value rows under the name.
func (v *ProfileView) Details() [][2]string {
	if v.user == nil {
		return nil
	}
	rows := [][2]string{
		{"Phone", v.user.PhoneNumber},
		{"Company", v.user.CompanyName},
		{"Agency", string(v.user.IsAgency)},
	}
	if joined := v.Joined(); joined != "" {
		rows = append(rows, [2]string{"Joined", joined})
	}
	return rows
}

// Logout ends the session and goes back to the landing page.
func (v *ProfileView) Logout(ctx context.Context) (Outcome, error) {
	if err := v.auth.Logout(ctx); err != nil {
		return Outcome{}, fmt.Errorf("logout: %w", err)
	}
	v.user = nil
	return Outcome{Next: router.PathLanding}, nil
}

// EditProfile is not available yet.
func (v *ProfileView) EditProfile() error {
	return common.ErrNotImplemented
}

// Home goes back to the landing page. The guard sends an authenticated user
// straight back to the profile.
func (v *ProfileView) Home() Outcome {
	return Outcome{Next: router.PathLanding}
}
