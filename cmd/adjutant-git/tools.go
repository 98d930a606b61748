package main

import (
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

// registerTools declares the git tool surface and binds each tool to its
// handler. The repository itself is the safety boundary here: deleting
// the checked-out branch and committing an empty index are refused by the
// adapter, so no tool carries a gate.
func registerTools(reg *toolkit.Registry, repo interfaces.GitRepository, cfg *config.Config) error {
	return reg.RegisterAll(
		toolkit.Registration{
			Descriptor: statusDescriptor(),
			Handler:    handleStatus(repo),
		},
		toolkit.Registration{
			Descriptor: logDescriptor(),
			Handler:    handleLog(repo),
		},
		toolkit.Registration{
			Descriptor: diffDescriptor(),
			Handler:    handleDiff(repo),
		},
		toolkit.Registration{
			Descriptor: branchDescriptor(),
			Handler:    handleBranch(repo),
		},
		toolkit.Registration{
			Descriptor: checkoutDescriptor(),
			Handler:    handleCheckout(repo),
		},
		toolkit.Registration{
			Descriptor: addDescriptor(),
			Handler:    handleAdd(repo),
		},
		toolkit.Registration{
			Descriptor: commitDescriptor(),
			Handler:    handleCommit(repo),
		},
		toolkit.Registration{
			Descriptor: pushDescriptor(),
			Handler:    handlePush(repo),
		},
		toolkit.Registration{
			Descriptor: pullDescriptor(),
			Handler:    handlePull(repo),
		},
		toolkit.Registration{
			Descriptor: versionDescriptor(),
			Handler:    handleGetVersion(cfg),
		},
	)
}

func statusDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "git_status",
		Description: "Show the current branch and pending changes in porcelain style, or a clean-tree message.",
	}
}

func logDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "git_log",
		Description: "Show recent commits, newest first: short hash, date, author, and subject line.",
		Fields: []toolkit.FieldSpec{
			{Name: "max_count", Type: toolkit.TypeNumber, Default: 10.0, Description: "Maximum number of commits to show"},
		},
	}
}

func diffDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "git_diff",
		Description: "Show a unified diff of unstaged changes (index against worktree), or staged changes (HEAD against index) when cached is true.",
		Fields: []toolkit.FieldSpec{
			{Name: "cached", Type: toolkit.TypeBoolean, Default: false, Description: "Diff staged changes instead of unstaged"},
		},
	}
}

func branchDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "git_branch",
		Description: "List local branches, create a branch at HEAD, or delete a branch. create and delete require branch_name; deleting the checked-out branch is refused.",
		Fields: []toolkit.FieldSpec{
			{Name: "action", Type: toolkit.TypeEnum, Required: true, Enum: []string{"list", "create", "delete"}, Description: "Branch operation to perform"},
			{Name: "branch_name", Type: toolkit.TypeString, Description: "Branch name (required for create and delete)"},
		},
	}
}

func checkoutDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "git_checkout",
		Description: "Switch the working tree to an existing local branch.",
		Fields: []toolkit.FieldSpec{
			{Name: "branch", Type: toolkit.TypeString, Required: true, Description: "Branch to check out"},
		},
	}
}

func addDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "git_add",
		Description: "Stage files for commit. Accepts whitespace-separated pathspecs; \".\" stages everything and glob patterns are honored.",
		Fields: []toolkit.FieldSpec{
			{Name: "files", Type: toolkit.TypeString, Required: true, Description: "Whitespace-separated pathspecs to stage"},
		},
	}
}

func commitDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "git_commit",
		Description: "Commit the staged changes. Author and committer come from git config; an empty index is an error.",
		Fields: []toolkit.FieldSpec{
			{Name: "message", Type: toolkit.TypeString, Required: true, Description: "Commit message"},
		},
	}
}

func pushDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "git_push",
		Description: "Push a branch to a remote. Defaults to the current branch and origin; an already up-to-date remote is a normal result.",
		Fields: []toolkit.FieldSpec{
			{Name: "remote", Type: toolkit.TypeString, Default: "origin", Description: "Remote name"},
			{Name: "branch", Type: toolkit.TypeString, Description: "Branch to push (defaults to the current branch)"},
		},
	}
}

func pullDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "git_pull",
		Description: "Pull a branch from a remote into the working tree. Defaults to the current branch and origin; an already up-to-date tree is a normal result.",
		Fields: []toolkit.FieldSpec{
			{Name: "remote", Type: toolkit.TypeString, Default: "origin", Description: "Remote name"},
			{Name: "branch", Type: toolkit.TypeString, Description: "Branch to pull (defaults to the current branch)"},
		},
	}
}

func versionDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "get_version",
		Description: "Get the Adjutant-Git server version and backend status. Use this to verify connectivity.",
	}
}
