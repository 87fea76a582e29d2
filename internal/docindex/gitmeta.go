package docindex

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"

	"git.home.luguber.info/inful/navbuilder/internal/logfields"
)

// gitMeta resolves per-file last-change metadata from the surrounding git
// work tree. All lookups are best-effort; a content root outside any
// repository simply yields no metadata.
type gitMeta struct {
	repo     *git.Repository
	workRoot string
}

func openGitMeta(root string) *gitMeta {
	repo, err := git.PlainOpenWithOptions(root, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil
	}
	return &gitMeta{repo: repo, workRoot: wt.Filesystem.Root()}
}

// lastChange returns the author time and name of the most recent commit
// touching the given file.
func (g *gitMeta) lastChange(path string) (time.Time, string, bool) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return time.Time{}, "", false
	}
	rel, err := filepath.Rel(g.workRoot, abs)
	if err != nil {
		return time.Time{}, "", false
	}
	rel = filepath.ToSlash(rel)

	log, err := g.repo.Log(&git.LogOptions{
		FileName: &rel,
		Order:    git.LogOrderCommitterTime,
	})
	if err != nil {
		slog.Debug("git log failed", logfields.File(rel), logfields.Error(err))
		return time.Time{}, "", false
	}
	defer log.Close()

	commit, err := log.Next()
	if err != nil {
		return time.Time{}, "", false
	}
	return commit.Author.When, commit.Author.Name, true
}
