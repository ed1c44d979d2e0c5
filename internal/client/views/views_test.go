package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/popx/internal/client/forms"
	"github.com/dmitrijs2005/popx/internal/client/models"
	"github.com/dmitrijs2005/popx/internal/client/router"
	"github.com/dmitrijs2005/popx/internal/client/services"
	"github.com/dmitrijs2005/popx/internal/client/storage"
	"github.com/dmitrijs2005/popx/internal/common"
	"github.com/dmitrijs2005/popx/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth is a scripted services.AuthService.
type fakeAuth struct {
	state services.AuthState

	loginUser  *models.User
	loginErr   error
	signupErr  error
	logoutErr  error
	loginCalls int
	signups    []models.User
}

func (f *fakeAuth) Initialize(context.Context) error {
	f.state.Status = services.StatusResolved
	return nil
}

func (f *fakeAuth) Signup(_ context.Context, c models.User) (*models.User, error) {
	f.signups = append(f.signups, c)
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	c.ID = "u1"
	f.state.User, f.state.Authenticated = &c, true
	return &c, nil
}

func (f *fakeAuth) Login(context.Context, string, string) (*models.User, error) {
	f.loginCalls++
	if f.loginErr != nil || f.loginUser == nil {
		return nil, f.loginErr
	}
	f.state.User, f.state.Authenticated = f.loginUser, true
	return f.loginUser, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	if f.logoutErr != nil {
		return f.logoutErr
	}
	f.state.User, f.state.Authenticated = nil, false
	return nil
}

func (f *fakeAuth) Reset(context.Context) error {
	f.state.User, f.state.Authenticated = nil, false
	return nil
}

func (f *fakeAuth) State() services.AuthState { return f.state }

func (f *fakeAuth) RegisteredUsers(context.Context) ([]models.User, error) { return nil, nil }

func fillSignup(t *testing.T, v *SignupView) {
	t.Helper()
	for field, value := range map[string]string{
		forms.FieldFullName:    "Ann Lee",
		forms.FieldPhoneNumber: "9876543210",
		forms.FieldEmail:       "ann@x.com",
		forms.FieldPassword:    "secret1",
		forms.FieldCompanyName: "Acme",
		forms.FieldIsAgency:    "Yes",
	} {
		require.NoError(t, v.Set(field, value))
	}
}

// ---- pause ----

func TestPause(t *testing.T) {
	require.NoError(t, pause(context.Background(), 0))
	require.NoError(t, pause(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, pause(ctx, time.Hour), context.Canceled)
}

// ---- landing ----

func TestLanding(t *testing.T) {
	l := NewLanding()
	assert.Equal(t, "Welcome to PopX", l.Title)
	assert.Equal(t, []Action{
		{Label: "Create Account", Target: router.PathSignup},
		{Label: "Already Registered? Login", Target: router.PathLogin},
	}, l.Actions)
}

// ---- login ----

func TestLoginView_ValidationStopsSubmit(t *testing.T) {
	auth := &fakeAuth{}
	v := NewLoginView(auth, logging.Discard(), 0)
	require.NoError(t, v.Set(forms.FieldEmail, "ann"))
	require.NoError(t, v.Set(forms.FieldPassword, "abc"))

	out, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Next)
	assert.Equal(t, forms.MsgEmailInvalid, v.Errors.Email)
	assert.Equal(t, forms.MsgPasswordTooShort, v.Errors.Password)
	assert.Zero(t, auth.loginCalls)
}

func TestLoginView_SetClearsFieldError(t *testing.T) {
	v := NewLoginView(&fakeAuth{}, logging.Discard(), 0)
	v.Errors = forms.LoginErrors{Email: forms.MsgEmailInvalid, Password: forms.MsgPasswordRequired}

	require.NoError(t, v.Set(forms.FieldEmail, "ann@x.com"))
	assert.Empty(t, v.Errors.Email)
	assert.Equal(t, forms.MsgPasswordRequired, v.Errors.Password)

	require.ErrorIs(t, v.Set("phone", "1"), forms.ErrUnknownField)
}

func TestLoginView_UnregisteredEmailShowsBanner(t *testing.T) {
	auth := &fakeAuth{}
	v := NewLoginView(auth, logging.Discard(), 0)
	require.NoError(t, v.Set(forms.FieldEmail, "nobody@x.com"))
	require.NoError(t, v.Set(forms.FieldPassword, "secret1"))

	out, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Next)
	assert.Equal(t, BannerInvalidCredentials, v.Banner)
	assert.False(t, auth.State().Authenticated)
	assert.False(t, v.Submitting)
}

func TestLoginView_StorageErrorShowsGenericBanner(t *testing.T) {
	auth := &fakeAuth{loginErr: errors.New("disk on fire")}
	v := NewLoginView(auth, logging.Discard(), 0)
	v.Form = forms.Login{Email: "ann@x.com", Password: "secret1"}

	out, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Next)
	assert.Equal(t, BannerLoginFailed, v.Banner)
}

func TestLoginView_Success(t *testing.T) {
	auth := &fakeAuth{loginUser: &models.User{ID: "u1", Email: "ann@x.com"}}
	v := NewLoginView(auth, logging.Discard(), time.Millisecond)
	v.Form = forms.Login{Email: "ann@x.com", Password: "secret1"}
	v.Banner = BannerInvalidCredentials

	out, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, router.PathProfile, out.Next)
	assert.Empty(t, v.Banner)
	assert.Equal(t, forms.Login{}, v.Form)
}

func TestLoginView_CancelledDuringDelay(t *testing.T) {
	auth := &fakeAuth{loginUser: &models.User{ID: "u1"}}
	v := NewLoginView(auth, logging.Discard(), time.Hour)
	v.Form = forms.Login{Email: "ann@x.com", Password: "secret1"}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := v.Submit(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Zero(t, auth.loginCalls)
	assert.False(t, v.Submitting)
}

func TestLoginView_Ready(t *testing.T) {
	v := NewLoginView(&fakeAuth{}, logging.Discard(), 0)
	assert.False(t, v.Ready())
	v.Form = forms.Login{Email: "ann@x.com", Password: "secret1"}
	assert.True(t, v.Ready())
	v.Submitting = true
	assert.False(t, v.Ready())
}

// ---- signup ----

func TestSignupView_DuplicateEmailIsFieldError(t *testing.T) {
	auth := &fakeAuth{signupErr: fmt.Errorf("signup: %w", common.ErrDuplicateEmail)}
	v := NewSignupView(auth, logging.Discard(), 0)
	fillSignup(t, v)

	out, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Next)
	assert.Equal(t, MsgEmailTaken, v.Errors.Email)
	assert.Empty(t, v.Banner)
	assert.Equal(t, "Ann Lee", v.Form.FullName, "form is kept for correction")
}

func TestSignupView_OtherErrorIsBanner(t *testing.T) {
	auth := &fakeAuth{signupErr: errors.New("boom")}
	v := NewSignupView(auth, logging.Discard(), 0)
	fillSignup(t, v)

	_, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, BannerSignupFailed, v.Banner)
	assert.False(t, v.Errors.Any())
}

func TestSignupView_ValidationStopsSubmit(t *testing.T) {
	auth := &fakeAuth{}
	v := NewSignupView(auth, logging.Discard(), 0)
	fillSignup(t, v)
	require.NoError(t, v.Set(forms.FieldPhoneNumber, "12345"))
	v.Banner = BannerSignupFailed

	out, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out.Next)
	assert.Equal(t, forms.MsgPhoneInvalid, v.Errors.PhoneNumber)
	assert.Empty(t, v.Banner)
	assert.Empty(t, auth.signups)
}

func TestSignupView_Success(t *testing.T) {
	auth := &fakeAuth{}
	v := NewSignupView(auth, logging.Discard(), 0)
	fillSignup(t, v)
	assert.True(t, v.Ready())

	out, err := v.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, router.PathProfile, out.Next)
	require.Len(t, auth.signups, 1)
	assert.Equal(t, models.AgencyYes, auth.signups[0].IsAgency)
	assert.Equal(t, forms.Signup{}, v.Form)
}

// ---- profile ----

func TestProfileView(t *testing.T) {
	joined := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	auth := &fakeAuth{state: services.AuthState{
		User: &models.User{
			FullName: "ann lee", Email: "ann@x.com", PhoneNumber: "9876543210",
			CompanyName: "Acme", IsAgency: models.AgencyNo, CreatedAt: joined,
		},
		Authenticated: true,
		Status:        services.StatusResolved,
	}}
	v := NewProfileView(auth)

	assert.Equal(t, "A", v.Initial())
	assert.Equal(t, joined.Local().Format(joinedLayout), v.Joined())
	assert.Equal(t, [][2]string{
		{"Phone", "9876543210"},
		{"Company", "Acme"},
		{"Agency", "No"},
		{"Joined", v.Joined()},
	}, v.Details())

	require.ErrorIs(t, v.EditProfile(), common.ErrNotImplemented)
	assert.Equal(t, Outcome{Next: router.PathLanding}, v.Home())

	out, err := v.Logout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, router.PathLanding, out.Next)
	assert.Nil(t, v.User())
	assert.False(t, auth.State().Authenticated)
}

func TestProfileView_InitialFallback(t *testing.T) {
	v := NewProfileView(&fakeAuth{state: services.AuthState{User: &models.User{FullName: "  "}}})
	assert.Equal(t, "U", v.Initial())
	assert.Empty(t, v.Joined())

	v = NewProfileView(&fakeAuth{})
	assert.Equal(t, "U", v.Initial())
	assert.Nil(t, v.Details())
}

func TestProfileView_LogoutError(t *testing.T) {
	auth := &fakeAuth{logoutErr: errors.New("locked")}
	v := NewProfileView(auth)
	_, err := v.Logout(context.Background())
	require.ErrorContains(t, err, "locked")
}

// ---- end to end over the real auth service ----

func TestAnnLeeScenario(t *testing.T) {
	ctx := context.Background()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := storage.Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	auth := services.NewAuthService(db, logging.Discard())
	require.NoError(t, auth.Initialize(ctx))

	signup := NewSignupView(auth, logging.Discard(), 0)
	fillSignup(t, signup)
	out, err := signup.Submit(ctx)
	require.NoError(t, err)
	require.Equal(t, router.PathProfile, out.Next)

	d, path, err := router.Navigate(out.Next, auth.State())
	require.NoError(t, err)
	require.Equal(t, router.ViewProfile, d.View)
	require.Equal(t, router.PathProfile, path)

	profile := NewProfileView(auth)
	assert.Equal(t, "A", profile.Initial())
	assert.Equal(t, "Ann Lee", profile.User().FullName)
	assert.Equal(t, "ann@x.com", profile.User().Email)
	assert.NotEmpty(t, profile.Joined())

	out, err = profile.Logout(ctx)
	require.NoError(t, err)
	d, path, err = router.Navigate(out.Next, auth.State())
	require.NoError(t, err)
	assert.Equal(t, router.ViewLanding, d.View)
	assert.Equal(t, router.PathLanding, path)

	d, _, err = router.Navigate(router.PathProfile, auth.State())
	require.NoError(t, err)
	assert.Equal(t, router.ViewLogin, d.View)

	login := NewLoginView(auth, logging.Discard(), 0)
	require.NoError(t, login.Set(forms.FieldEmail, "ann@x.com"))
	require.NoError(t, login.Set(forms.FieldPassword, "secret1"))
	out, err = login.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, router.PathProfile, out.Next)
	assert.True(t, auth.State().Authenticated)

	again := NewSignupView(auth, logging.Discard(), 0)
	fillSignup(t, again)
	_, err = again.Submit(ctx)
	require.NoError(t, err)
	assert.Equal(t, MsgEmailTaken, again.Errors.Email)
}
