package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

func handleStatus(repo interfaces.GitRepository) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		status, err := repo.Status()
		if err != nil {
			return "", fmt.Errorf("failed to read status: %w", err)
		}
		return formatStatus(status), nil
	}
}

func handleLog(repo interfaces.GitRepository) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		commits, err := repo.Log(args.GetInt("max_count", 10))
		if err != nil {
			return "", err
		}
		return formatLog(commits), nil
	}
}

func handleDiff(repo interfaces.GitRepository) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		cached := args.GetBool("cached", false)
		diff, err := repo.Diff(cached)
		if err != nil {
			return "", fmt.Errorf("failed to compute diff: %w", err)
		}
		if diff == "" {
			if cached {
				return "No staged changes", nil
			}
			return "No changes", nil
		}
		return diff, nil
	}
}

// handleBranch multiplexes the three branch sub-actions. create and
// delete need a branch name; that check runs before any repository
// access so a bad call has zero effects.
func handleBranch(repo interfaces.GitRepository) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		action := args.GetString("action", "")
		if action == "list" {
			branches, err := repo.Branches()
			if err != nil {
				return "", fmt.Errorf("failed to list branches: %w", err)
			}
			return formatBranches(branches), nil
		}

		if !args.Has("branch_name") {
			return "", fmt.Errorf("missing required argument %q for action %q", "branch_name", action)
		}
		name := args.GetString("branch_name", "")

		switch action {
		case "create":
			if err := repo.CreateBranch(name); err != nil {
				return "", err
			}
			return fmt.Sprintf("Created branch %q", name), nil
		case "delete":
			if err := repo.DeleteBranch(name); err != nil {
				return "", err
			}
			return fmt.Sprintf("Deleted branch %q", name), nil
		default:
			return "", fmt.Errorf("unknown action %q", action)
		}
	}
}

func handleCheckout(repo interfaces.GitRepository) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		branch := args.GetString("branch", "")
		if err := repo.Checkout(branch); err != nil {
			return "", err
		}
		return fmt.Sprintf("Switched to branch %q", branch), nil
	}
}

func handleAdd(repo interfaces.GitRepository) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		pathspecs := strings.Fields(args.GetString("files", ""))
		if len(pathspecs) == 0 {
			return "", errors.New("nothing specified, nothing staged")
		}
		if err := repo.Add(pathspecs); err != nil {
			return "", err
		}
		return fmt.Sprintf("Staged %s", common.Pluralize(len(pathspecs), "pathspec")), nil
	}
}

func handleCommit(repo interfaces.GitRepository) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		message := args.GetString("message", "")
		hash, err := repo.Commit(message)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("Committed %s: %s", shortHash(hash), subjectLine(message)), nil
	}
}

func handlePush(repo interfaces.GitRepository) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		remote := args.GetString("remote", "origin")
		branch, err := resolveBranch(repo, args)
		if err != nil {
			return "", err
		}
		upToDate, err := repo.Push(ctx, remote, branch)
		if err != nil {
			return "", fmt.Errorf("push failed: %w", err)
		}
		if upToDate {
			return "Already up to date", nil
		}
		return fmt.Sprintf("Pushed %q to %q", branch, remote), nil
	}
}

func handlePull(repo interfaces.GitRepository) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		remote := args.GetString("remote", "origin")
		branch, err := resolveBranch(repo, args)
		if err != nil {
			return "", err
		}
		upToDate, err := repo.Pull(ctx, remote, branch)
		if err != nil {
			return "", fmt.Errorf("pull failed: %w", err)
		}
		if upToDate {
			return "Already up to date", nil
		}
		return fmt.Sprintf("Pulled %q from %q", branch, remote), nil
	}
}

// resolveBranch returns the branch argument, falling back to the
// checked-out branch so the response can name what was synced.
func resolveBranch(repo interfaces.GitRepository, args toolkit.Args) (string, error) {
	if branch := args.GetString("branch", ""); branch != "" {
		return branch, nil
	}
	return repo.CurrentBranch()
}

func handleGetVersion(cfg *config.Config) toolkit.Handler {
	return func(ctx context.Context, args toolkit.Args) (string, error) {
		return fmt.Sprintf("%s\nVersion: %s\nBackend: git (%s)\nStatus: OK",
			cfg.Server.Name, config.GetFullVersion(), cfg.Git.RepoPath), nil
	}
}
