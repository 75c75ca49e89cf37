package snapshot

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/ArnautVasile/asana-go/internal/write"
	"github.com/ArnautVasile/asana-go/pkg/asana"
)

// API is the part of *asana.Client a snapshot reads from.
type API interface {
	ListWorkspaces(ctx context.Context) ([]asana.Workspace, error)
	ListUsers(ctx context.Context, workspaceID string) ([]asana.User, error)
	ListProjects(ctx context.Context, workspaceID string) ([]asana.Project, error)
	ListTeams(ctx context.Context, ws *asana.Workspace) ([]asana.Team, error)
	ListTags(ctx context.Context, workspaceID string) ([]asana.Tag, error)
}

type Snapshotter struct {
	api    API
	out    *write.Writer
	outDir string
	log    hclog.Logger
}

func New(api API, out *write.Writer, outDir string, log hclog.Logger) *Snapshotter {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Snapshotter{api: api, out: out, outDir: outDir, log: log}
}

// Run takes a snapshot immediately and then once per interval until ctx is
// done. A zero interval means a single snapshot.
func (s *Snapshotter) Run(ctx context.Context, interval time.Duration) error {
	// immediate run
	if err := s.Once(ctx); err != nil {
		if interval <= 0 {
			return err
		}
		// log and continue; allow graceful stop on next select
		s.log.Error("snapshot failed", "error", err)
	}
	if interval <= 0 {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			start := time.Now()
			if err := s.Once(ctx); err != nil {
				s.log.Error("snapshot failed", "error", err)
			}
			s.log.Info("cycle finished", "took", time.Since(start), "interval", interval)
		}
	}
}

// Once writes users, projects, teams and tags for every workspace.
func (s *Snapshotter) Once(ctx context.Context) error {
	workspaces, err := s.api.ListWorkspaces(ctx)
	if err != nil {
		return fmt.Errorf("workspaces: %w", err)
	}

	for i := range workspaces {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.workspace(ctx, &workspaces[i]); err != nil {
			return err
		}
	}
	return nil
}

func (s *Snapshotter) workspace(ctx context.Context, ws *asana.Workspace) error {
	wsDir := filepath.Join(s.outDir, write.SafeDirName(ws.Name, ws.GID))
	log := s.log.With("workspace", ws.Name, "gid", ws.GID)

	users, err := s.api.ListUsers(ctx, ws.GID)
	if err != nil {
		return fmt.Errorf("users %s: %w", ws.GID, err)
	}
	if err := s.save(wsDir, "users", users); err != nil {
		return err
	}

	projects, err := s.api.ListProjects(ctx, ws.GID)
	if err != nil {
		return fmt.Errorf("projects %s: %w", ws.GID, err)
	}
	if err := s.save(wsDir, "projects", projects); err != nil {
		return err
	}

	// teams only exist in organizations
	var teams []asana.Team
	if ws.IsOrganization {
		teams, err = s.api.ListTeams(ctx, ws)
		if err != nil {
			return fmt.Errorf("teams %s: %w", ws.GID, err)
		}
		if err := s.save(wsDir, "teams", teams); err != nil {
			return err
		}
	}

	tags, err := s.api.ListTags(ctx, ws.GID)
	if err != nil {
		return fmt.Errorf("tags %s: %w", ws.GID, err)
	}
	if err := s.save(wsDir, "tags", tags); err != nil {
		return err
	}

	log.Info("wrote workspace",
		"users", len(users), "projects", len(projects),
		"teams", len(teams), "tags", len(tags), "dir", wsDir)
	return nil
}

func (s *Snapshotter) save(dir, name string, v any) error {
	path, err := s.out.Write(dir, name, v)
	if err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	s.log.Debug("wrote file", "path", path)
	return nil
}
