package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/portalauth/internal/client/services"
	"github.com/dmitrijs2005/portalauth/internal/client/ui"
	"github.com/dmitrijs2005/portalauth/internal/common"
	"github.com/dmitrijs2005/portalauth/internal/kv"
	"github.com/dmitrijs2005/portalauth/internal/logging"
	"github.com/dmitrijs2005/portalauth/internal/session"
	"github.com/dmitrijs2005/portalauth/internal/transport"
	"github.com/dmitrijs2005/portalauth/internal/users"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const strongPassword = "Abcdef12!"

type testApp struct {
	*App
	out        *bytes.Buffer
	persistent *kv.MemoryStore
	volatile   *kv.MemoryStore
}

// newTestApp wires a real service stack over in-memory tiers with no
// simulated latency. now may be nil.
func newTestApp(t *testing.T, input string, now func() time.Time) *testApp {
	t.Helper()
	return newTestAppOver(t, input, kv.NewMemoryStore(), kv.NewMemoryStore(), now)
}

// newTestAppOver is newTestApp over existing tiers, as after a restart.
func newTestAppOver(t *testing.T, input string, persistent, volatile *kv.MemoryStore, now func() time.Time) *testApp {
	t.Helper()

	out := &bytes.Buffer{}
	presenter := ui.NewTerminalPresenter(out)

	opts := []session.Option{}
	if now != nil {
		opts = append(opts, session.WithClock(now))
	}
	sessions := session.NewStore(persistent, volatile, opts...)
	dir := users.NewDirectory(persistent, nil)

	return &testApp{
		App: &App{
			authService: services.NewAuthService(dir, sessions, transport.NewSimulator(0), presenter, nil),
			nav:         presenter,
			log:         logging.Discard(),
			reader:      bufio.NewReader(strings.NewReader(input)),
			out:         out,
		},
		out:        out,
		persistent: persistent,
		volatile:   volatile,
	}
}

// stubPasswords feeds the given passwords to getPassword in order.
func stubPasswords(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(_ io.Writer, _ string) (string, error) {
		require.NotEmpty(t, pws, "unexpected password prompt")
		pw := pws[0]
		pws = pws[1:]
		return pw, nil
	}
	t.Cleanup(func() { getPassword = orig })
}

func (ta *testApp) sessionIn(t *testing.T, store *kv.MemoryStore) bool {
	t.Helper()
	v, err := store.Get(context.Background(), common.SessionKey)
	require.NoError(t, err)
	return v != nil
}

func TestSignUpLoginRememberedLogout(t *testing.T) {
	ctx := context.Background()
	input := strings.Join([]string{
		"Ada", "Lovelace", "ada@example.com", "555-0100", "y", // signup
		"ada@example.com", "y", // login
	}, "\n") + "\n"

	ta := newTestApp(t, input, nil)
	stubPasswords(t, strongPassword, strongPassword, strongPassword)

	require.NoError(t, ta.SignUp(ctx))
	assert.Contains(t, ta.out.String(), "Account created successfully! Please log in.")
	assert.False(t, ta.isLoggedIn(), "sign-up must not log in")

	require.NoError(t, ta.Login(ctx))
	assert.True(t, ta.isLoggedIn())
	assert.Equal(t, "(ada@example.com)", ta.getStatus())
	assert.True(t, ta.sessionIn(t, ta.persistent))
	assert.False(t, ta.sessionIn(t, ta.volatile))

	ta.out.Reset()
	require.NoError(t, ta.WhoAmI(ctx))
	assert.Contains(t, ta.out.String(), "Ada Lovelace <ada@example.com>")
	assert.Contains(t, ta.out.String(), "remembered")

	require.NoError(t, ta.Logout(ctx))
	assert.False(t, ta.isLoggedIn())
	assert.Empty(t, ta.getStatus())
	assert.False(t, ta.sessionIn(t, ta.persistent))
	assert.False(t, ta.sessionIn(t, ta.volatile))
}

func TestLogin_NotRememberedUsesVolatileTier(t *testing.T) {
	ctx := context.Background()
	input := "Ada\nLovelace\nada@example.com\n\ny\nada@example.com\nn\n"

	ta := newTestApp(t, input, nil)
	stubPasswords(t, strongPassword, strongPassword, strongPassword)

	require.NoError(t, ta.SignUp(ctx))
	require.NoError(t, ta.Login(ctx))

	assert.False(t, ta.sessionIn(t, ta.persistent))
	assert.True(t, ta.sessionIn(t, ta.volatile))
}

func TestLogin_WrongPassword(t *testing.T) {
	ta := newTestApp(t, "nobody@example.com\nn\n", nil)
	stubPasswords(t, "whatever")

	err := ta.Login(context.Background())
	require.ErrorIs(t, err, services.ErrInvalidCredentials)
	assert.Contains(t, ta.out.String(), "Invalid email or password. Please try again.")
	assert.False(t, ta.isLoggedIn())
}

func TestSignUp_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		agree   string
		pws     []string
		wantErr error
		banner  string
	}{
		{"mismatch", "y", []string{strongPassword, "Abcdef12?"}, services.ErrPasswordMismatch, "Passwords do not match."},
		{"weak", "y", []string{"abc", "abc"}, services.ErrWeakPassword, "Password is too weak."},
		{"terms", "n", []string{strongPassword, strongPassword}, services.ErrTermsNotAgreed, "Please agree to the Terms of Service"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ta := newTestApp(t, "A\nB\na@b.com\n\n"+tc.agree+"\n", nil)
			stubPasswords(t, tc.pws...)

			err := ta.SignUp(context.Background())
			require.ErrorIs(t, err, tc.wantErr)
			require.ErrorIs(t, err, common.ErrValidation)
			assert.Contains(t, ta.out.String(), tc.banner)

			v, gerr := ta.persistent.Get(context.Background(), common.UsersKey)
			require.NoError(t, gerr)
			assert.Nil(t, v, "no user must be stored")
		})
	}
}

func TestWhoAmI_ExpiredSessionIsDropped(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	clock := func() time.Time { return now }

	ta := newTestApp(t, "A\nB\na@b.com\n\ny\na@b.com\nn\n", clock)
	stubPasswords(t, strongPassword, strongPassword, strongPassword)

	require.NoError(t, ta.SignUp(ctx))
	require.NoError(t, ta.Login(ctx))
	require.True(t, ta.isLoggedIn())

	now = now.Add(session.DefaultSessionTTL)

	ta.out.Reset()
	require.NoError(t, ta.WhoAmI(ctx))
	assert.Contains(t, ta.out.String(), "Not signed in.")
	assert.False(t, ta.isLoggedIn())
	assert.False(t, ta.sessionIn(t, ta.volatile))
}

func TestStrength(t *testing.T) {
	tests := []struct {
		pw   string
		want string
	}{
		{"abc", "Strength: weak (1/5)"},
		{"abcdefgh1", "Strength: medium (3/5)"},
		{strongPassword, "Strength: strong (5/5)"},
	}
	for _, tc := range tests {
		t.Run(tc.pw, func(t *testing.T) {
			ta := newTestApp(t, "", nil)
			stubPasswords(t, tc.pw)

			require.NoError(t, ta.Strength(context.Background()))
			assert.Contains(t, ta.out.String(), tc.want)
		})
	}
}

func TestForgot(t *testing.T) {
	ta := newTestApp(t, "\n", nil)
	err := ta.Forgot(context.Background())
	require.ErrorIs(t, err, services.ErrEmailRequired)
	assert.Contains(t, ta.out.String(), "Please enter your email address first.")

	ta = newTestApp(t, "a@b.com\n", nil)
	require.NoError(t, ta.Forgot(context.Background()))
	assert.Contains(t, ta.out.String(), "Password reset instructions have been sent to your email.")
}

func TestContact(t *testing.T) {
	ta := newTestApp(t, "Ada\nada@example.com\nHello\nline one\nline two\n\n", nil)

	require.NoError(t, ta.Contact(context.Background()))
	assert.Contains(t, ta.out.String(), "Thank you for your message!")
}

func TestCommands_InputErrorsPropagate(t *testing.T) {
	ta := newTestApp(t, "", nil)
	assert.Error(t, ta.SignUp(context.Background()))
	assert.Error(t, ta.Login(context.Background()))
	assert.Error(t, ta.Forgot(context.Background()))
	assert.Error(t, ta.Contact(context.Background()))
}
