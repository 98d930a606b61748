package main

import (
	"strings"

	"github.com/adjutant-mcp/adjutant/internal/common"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
)

// formatContainerList renders containers as a markdown table with a count
// line. The empty-list message reflects whether stopped containers were
// included in the listing.
func formatContainerList(containers []interfaces.ContainerInfo, all bool) string {
	if len(containers) == 0 {
		if all {
			return "No containers found"
		}
		return "No running containers"
	}

	rows := make([][]string, 0, len(containers))
	for _, c := range containers {
		rows = append(rows, []string{
			shortID(c.ID),
			c.Image,
			c.State,
			c.Status,
			strings.Join(c.Names, ", "),
		})
	}

	var sb strings.Builder
	sb.WriteString(common.MarkdownTable([]string{"id", "image", "state", "status", "names"}, rows))
	sb.WriteString("\n")
	sb.WriteString(common.Pluralize(len(containers), "container"))
	return sb.String()
}

// shortID trims a full container id to the 12-character form the docker
// CLI shows. Names and already-short ids pass through unchanged.
func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}
