package main

import (
	"strings"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
)

// formatStatus renders the branch header and porcelain-style XY change
// lines, or the clean-tree message.
func formatStatus(status *interfaces.StatusInfo) string {
	var sb strings.Builder
	if status.Detached {
		sb.WriteString("HEAD detached at ")
	} else {
		sb.WriteString("On branch ")
	}
	sb.WriteString(status.Branch)

	if status.Clean() {
		sb.WriteString("\nnothing to commit, working tree clean")
		return sb.String()
	}

	for _, c := range status.Changes {
		sb.WriteString("\n")
		sb.WriteString(c.Staging)
		sb.WriteString(c.Worktree)
		sb.WriteString(" ")
		sb.WriteString(c.Path)
	}
	return sb.String()
}

func formatLog(commits []interfaces.CommitInfo) string {
	rows := make([][]string, 0, len(commits))
	for _, c := range commits {
		rows = append(rows, []string{
			shortHash(c.Hash),
			c.When.Format("2006-01-02"),
			c.Author,
			c.Subject,
		})
	}

	var sb strings.Builder
	sb.WriteString(common.MarkdownTable([]string{"hash", "date", "author", "subject"}, rows))
	sb.WriteString("\n")
	sb.WriteString(common.Pluralize(len(commits), "commit"))
	return sb.String()
}

// formatBranches lists branches the way the git CLI does, marking the
// checked-out branch with an asterisk.
func formatBranches(branches []interfaces.BranchInfo) string {
	if len(branches) == 0 {
		return "No branches"
	}

	var sb strings.Builder
	for _, b := range branches {
		if b.Current {
			sb.WriteString("* ")
		} else {
			sb.WriteString("  ")
		}
		sb.WriteString(b.Name)
		sb.WriteString(" ")
		sb.WriteString(shortHash(b.Hash))
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// shortHash trims a full object hash to the 7-character form.
func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

// subjectLine returns the first line of a commit message.
func subjectLine(message string) string {
	if i := strings.IndexByte(message, '\n'); i >= 0 {
		return strings.TrimSpace(message[:i])
	}
	return strings.TrimSpace(message)
}
