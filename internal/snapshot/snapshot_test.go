package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArnautVasile/asana-go/internal/write"
	"github.com/ArnautVasile/asana-go/pkg/asana"
)

type fakeAPI struct {
	workspaces []asana.Workspace
	err        error
	teamCalls  atomic.Int32
	listCalls  atomic.Int32
}

func (f *fakeAPI) ListWorkspaces(context.Context) ([]asana.Workspace, error) {
	f.listCalls.Add(1)
	return f.workspaces, f.err
}

func (f *fakeAPI) ListUsers(_ context.Context, ws string) ([]asana.User, error) {
	return []asana.User{{GID: "u-" + ws, Name: "Alice"}}, nil
}

func (f *fakeAPI) ListProjects(_ context.Context, ws string) ([]asana.Project, error) {
	return []asana.Project{{GID: "p-" + ws, Name: "Launch"}}, nil
}

func (f *fakeAPI) ListTeams(_ context.Context, ws *asana.Workspace) ([]asana.Team, error) {
	f.teamCalls.Add(1)
	return []asana.Team{{GID: "t-" + ws.GID, Name: "Platform"}}, nil
}

func (f *fakeAPI) ListTags(context.Context, string) ([]asana.Tag, error) {
	return []asana.Tag{}, nil
}

func newWriter(t *testing.T) (*write.Writer, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	w, err := write.New(fs, "json")
	require.NoError(t, err)
	return w, fs
}

func TestOnce_WritesPerWorkspace(t *testing.T) {
	api := &fakeAPI{workspaces: []asana.Workspace{
		{GID: "1", Name: "Acme Corp", IsOrganization: true},
		{GID: "2", Name: "***"},
	}}
	w, fs := newWriter(t)

	require.NoError(t, New(api, w, "out", nil).Once(context.Background()))

	for _, f := range []string{
		"out/acme-corp/users.json",
		"out/acme-corp/projects.json",
		"out/acme-corp/teams.json",
		"out/acme-corp/tags.json",
		"out/2/users.json",
		"out/2/projects.json",
		"out/2/tags.json",
	} {
		ok, err := afero.Exists(fs, f)
		require.NoError(t, err)
		assert.True(t, ok, f)
	}

	ok, err := afero.Exists(fs, "out/2/teams.json")
	require.NoError(t, err)
	assert.False(t, ok, "personal workspaces have no teams")
	assert.Equal(t, int32(1), api.teamCalls.Load())

	b, err := afero.ReadFile(fs, "out/acme-corp/users.json")
	require.NoError(t, err)
	var users []asana.User
	require.NoError(t, json.Unmarshal(b, &users))
	assert.Equal(t, []asana.User{{GID: "u-1", Name: "Alice"}}, users)

	b, err = afero.ReadFile(fs, "out/acme-corp/tags.json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(b))
}

func TestOnce_WorkspacesError(t *testing.T) {
	apiErr := &asana.APIError{StatusCode: http.StatusUnauthorized, Message: "Not Authorized"}
	w, _ := newWriter(t)

	err := New(&fakeAPI{err: apiErr}, w, "out", nil).Once(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apiErr)
	assert.EqualError(t, err, "workspaces: API Error: Not Authorized")
}

func TestRun_SingleShot(t *testing.T) {
	api := &fakeAPI{workspaces: []asana.Workspace{{GID: "1", Name: "Acme"}}}
	w, _ := newWriter(t)

	require.NoError(t, New(api, w, "out", nil).Run(context.Background(), 0))
	assert.Equal(t, int32(1), api.listCalls.Load())
}

func TestRun_SingleShotReturnsError(t *testing.T) {
	w, _ := newWriter(t)
	err := New(&fakeAPI{err: errors.New("boom")}, w, "out", nil).Run(context.Background(), 0)
	assert.EqualError(t, err, "workspaces: boom")
}

func TestRun_LoopsUntilCanceled(t *testing.T) {
	api := &fakeAPI{err: errors.New("boom")}
	w, _ := newWriter(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- New(api, w, "out", nil).Run(ctx, 5*time.Millisecond) }()

	assert.Eventually(t, func() bool { return api.listCalls.Load() >= 3 }, time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}

func TestOnce_CanceledContext(t *testing.T) {
	api := &fakeAPI{workspaces: []asana.Workspace{{GID: "1", Name: "Acme"}}}
	w, fs := newWriter(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(api, w, "out", nil).Once(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	ok, _ := afero.DirExists(fs, "out/acme")
	assert.False(t, ok)
}
