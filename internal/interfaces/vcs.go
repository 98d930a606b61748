package interfaces

import (
	"context"
	"time"
)

// Change is one path with pending changes, with single-letter staging and
// worktree codes in the porcelain style ("M", "A", "D", "?").
type Change struct {
	Staging  string
	Worktree string
	Path     string
}

// StatusInfo reports the current branch and pending changes of a worktree.
type StatusInfo struct {
	Branch   string
	Detached bool
	Changes  []Change
}

// Clean reports whether the worktree has no pending changes.
func (s *StatusInfo) Clean() bool { return len(s.Changes) == 0 }

// CommitInfo is one entry of the commit history.
type CommitInfo struct {
	Hash    string
	Author  string
	Email   string
	When    time.Time
	Subject string
}

// BranchInfo is one local branch and whether it is checked out.
type BranchInfo struct {
	Name    string
	Hash    string
	Current bool
}

// GitRepository is the version-control backend contract over one working
// tree. Local operations work on the repository handle opened at startup;
// push and pull talk to a remote and honor the caller's context.
type GitRepository interface {
	Status() (*StatusInfo, error)
	Log(maxCount int) ([]CommitInfo, error)
	// Diff renders a unified diff: index against worktree, or HEAD
	// against index when cached is true.
	Diff(cached bool) (string, error)
	Branches() ([]BranchInfo, error)
	CreateBranch(name string) error
	DeleteBranch(name string) error
	Checkout(branch string) error
	// Add stages the given pathspecs. "." stages everything; glob
	// patterns are honored.
	Add(pathspecs []string) error
	Commit(message string) (hash string, err error)
	// Push reports upToDate=true when the remote already had everything.
	Push(ctx context.Context, remote, branch string) (upToDate bool, err error)
	// Pull reports upToDate=true when the worktree already had everything.
	Pull(ctx context.Context, remote, branch string) (upToDate bool, err error)
	CurrentBranch() (string, error)
}
