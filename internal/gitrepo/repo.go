// Package gitrepo implements the version-control backend over a go-git
// working tree. The repository handle is opened once at startup; push and
// pull are the only operations that leave the local filesystem.
package gitrepo

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	gitcfg "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
)

// Repo wraps one repository and its worktree.
type Repo struct {
	repo   *git.Repository
	wt     *git.Worktree
	path   string
	logger *common.Logger
}

// Open opens the repository containing the configured path, walking up to
// the enclosing .git directory the way the git CLI does. Bare repositories
// are rejected: every tool here operates on a worktree.
func Open(cfg config.GitConfig, logger *common.Logger) (*Repo, error) {
	if logger == nil {
		logger = common.NewSilentLogger()
	}

	repo, err := git.PlainOpenWithOptions(cfg.RepoPath, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open repository at %s: %w", cfg.RepoPath, err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("repository at %s has no worktree: %w", cfg.RepoPath, err)
	}

	logger.Info().Str("path", cfg.RepoPath).Msg("Opened git repository")
	return &Repo{repo: repo, wt: wt, path: cfg.RepoPath, logger: logger}, nil
}

// Path returns the configured repository path.
func (r *Repo) Path() string { return r.path }

// Status reports the current branch and pending changes, sorted by path.
func (r *Repo) Status() (*interfaces.StatusInfo, error) {
	st, err := r.wt.Status()
	if err != nil {
		return nil, err
	}

	info := &interfaces.StatusInfo{}
	head, err := r.repo.Head()
	switch {
	case err == nil:
		if head.Name().IsBranch() {
			info.Branch = head.Name().Short()
		} else {
			info.Branch = head.Hash().String()[:7]
			info.Detached = true
		}
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// Unborn branch: HEAD names a branch with no commits yet.
		if ref, rerr := r.repo.Reference(plumbing.HEAD, false); rerr == nil && ref.Type() == plumbing.SymbolicReference {
			info.Branch = ref.Target().Short()
		}
	default:
		return nil, err
	}

	paths := make([]string, 0, len(st))
	for p, fs := range st {
		if fs.Staging == git.Unmodified && fs.Worktree == git.Unmodified {
			continue
		}
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, p := range paths {
		fs := st[p]
		info.Changes = append(info.Changes, interfaces.Change{
			Staging:  string(fs.Staging),
			Worktree: string(fs.Worktree),
			Path:     p,
		})
	}
	return info, nil
}

// Log returns up to maxCount commits reachable from HEAD, newest first.
func (r *Repo) Log(maxCount int) ([]interfaces.CommitInfo, error) {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, errors.New("no commits yet")
		}
		return nil, err
	}

	iter, err := r.repo.Log(&git.LogOptions{From: head.Hash()})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var commits []interfaces.CommitInfo
	err = iter.ForEach(func(c *object.Commit) error {
		if maxCount > 0 && len(commits) >= maxCount {
			return storer.ErrStop
		}
		commits = append(commits, interfaces.CommitInfo{
			Hash:    c.Hash.String(),
			Author:  c.Author.Name,
			Email:   c.Author.Email,
			When:    c.Author.When,
			Subject: firstLine(c.Message),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return commits, nil
}

func firstLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return message[:i]
	}
	return message
}

// Branches returns local branches sorted by name.
func (r *Repo) Branches() ([]interfaces.BranchInfo, error) {
	var current string
	if head, err := r.repo.Head(); err == nil && head.Name().IsBranch() {
		current = head.Name().Short()
	}

	iter, err := r.repo.Branches()
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var branches []interfaces.BranchInfo
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		branches = append(branches, interfaces.BranchInfo{
			Name:    name,
			Hash:    ref.Hash().String(),
			Current: name == current,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(branches, func(i, j int) bool { return branches[i].Name < branches[j].Name })
	return branches, nil
}

// CreateBranch points a new branch at HEAD. The worktree stays where it is.
func (r *Repo) CreateBranch(name string) error {
	head, err := r.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return errors.New("cannot create a branch before the first commit")
		}
		return err
	}

	refName := plumbing.NewBranchReferenceName(name)
	if _, err := r.repo.Reference(refName, false); err == nil {
		return fmt.Errorf("branch %q already exists", name)
	}
	return r.repo.Storer.SetReference(plumbing.NewHashReference(refName, head.Hash()))
}

// DeleteBranch removes a local branch. The checked-out branch is refused.
func (r *Repo) DeleteBranch(name string) error {
	if head, err := r.repo.Head(); err == nil && head.Name().IsBranch() && head.Name().Short() == name {
		return fmt.Errorf("cannot delete the checked-out branch %q", name)
	}

	refName := plumbing.NewBranchReferenceName(name)
	if _, err := r.repo.Reference(refName, false); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("branch %q not found", name)
		}
		return err
	}
	return r.repo.Storer.RemoveReference(refName)
}

// Checkout switches the worktree to an existing local branch.
func (r *Repo) Checkout(branch string) error {
	refName := plumbing.NewBranchReferenceName(branch)
	if _, err := r.repo.Reference(refName, false); err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return fmt.Errorf("branch %q not found", branch)
		}
		return err
	}
	return r.wt.Checkout(&git.CheckoutOptions{Branch: refName})
}

// Add stages pathspecs. "." stages everything like git add -A; specs with
// glob metacharacters match by pattern; anything else is a literal path.
func (r *Repo) Add(pathspecs []string) error {
	for _, spec := range pathspecs {
		switch {
		case spec == ".":
			if err := r.wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
				return fmt.Errorf("failed to stage %q: %w", spec, err)
			}
		case strings.ContainsAny(spec, "*?["):
			if err := r.wt.AddWithOptions(&git.AddOptions{Glob: spec}); err != nil {
				return fmt.Errorf("failed to stage %q: %w", spec, err)
			}
		default:
			if _, err := r.wt.Add(spec); err != nil {
				return fmt.Errorf("failed to stage %q: %w", spec, err)
			}
		}
	}
	return nil
}

// Commit records the staged changes. Author and committer come from git
// config; an empty index is an error rather than an empty commit.
func (r *Repo) Commit(message string) (string, error) {
	hash, err := r.wt.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", err
	}
	return hash.String(), nil
}

// Push sends a branch to a remote. An empty branch means the current one.
func (r *Repo) Push(ctx context.Context, remote, branch string) (bool, error) {
	if branch == "" {
		var err error
		branch, err = r.CurrentBranch()
		if err != nil {
			return false, err
		}
	}

	refSpec := gitcfg.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", branch, branch))
	err := r.repo.PushContext(ctx, &git.PushOptions{
		RemoteName: remote,
		RefSpecs:   []gitcfg.RefSpec{refSpec},
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// Pull fetches and merges a remote branch into the worktree. An empty
// branch means the current one.
func (r *Repo) Pull(ctx context.Context, remote, branch string) (bool, error) {
	if branch == "" {
		var err error
		branch, err = r.CurrentBranch()
		if err != nil {
			return false, err
		}
	}

	err := r.wt.PullContext(ctx, &git.PullOptions{
		RemoteName:    remote,
		ReferenceName: plumbing.NewBranchReferenceName(branch),
	})
	if errors.Is(err, git.NoErrAlreadyUpToDate) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}

// CurrentBranch returns the branch HEAD points at.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", err
	}
	if !head.Name().IsBranch() {
		return "", errors.New("HEAD is detached")
	}
	return head.Name().Short(), nil
}
