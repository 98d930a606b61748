package main

import (
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

// registerTools declares the container tool surface and binds each tool
// to its handler. None of these carry a gate: the lifecycle tools act on
// one named container and the daemon enforces its own permissions.
func registerTools(reg *toolkit.Registry, runtime interfaces.ContainerRuntime, cfg *config.Config) error {
	return reg.RegisterAll(
		toolkit.Registration{
			Descriptor: listContainersDescriptor(),
			Handler:    handleListContainers(runtime),
		},
		toolkit.Registration{
			Descriptor: startContainerDescriptor(),
			Handler:    handleStartContainer(runtime),
		},
		toolkit.Registration{
			Descriptor: stopContainerDescriptor(),
			Handler:    handleStopContainer(runtime),
		},
		toolkit.Registration{
			Descriptor: restartContainerDescriptor(),
			Handler:    handleRestartContainer(runtime),
		},
		toolkit.Registration{
			Descriptor: versionDescriptor(),
			Handler:    handleGetVersion(cfg),
		},
	)
}

func listContainersDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "list_containers",
		Description: "List containers as a table of id, image, state, status, and names. Shows running containers only unless all is true.",
		Fields: []toolkit.FieldSpec{
			{Name: "all", Type: toolkit.TypeBoolean, Default: false, Description: "Include stopped containers"},
		},
	}
}

func startContainerDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "start_container",
		Description: "Start a stopped container.",
		Fields: []toolkit.FieldSpec{
			{Name: "id_or_name", Type: toolkit.TypeString, Required: true, Description: "Container id or name"},
		},
	}
}

func stopContainerDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "stop_container",
		Description: "Stop a running container, waiting timeout_seconds before the daemon force-kills it.",
		Fields: []toolkit.FieldSpec{
			{Name: "id_or_name", Type: toolkit.TypeString, Required: true, Description: "Container id or name"},
			{Name: "timeout_seconds", Type: toolkit.TypeNumber, Default: 10.0, Description: "Seconds to wait before force kill"},
		},
	}
}

func restartContainerDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "restart_container",
		Description: "Restart a container, waiting timeout_seconds for it to stop before the daemon force-kills it.",
		Fields: []toolkit.FieldSpec{
			{Name: "id_or_name", Type: toolkit.TypeString, Required: true, Description: "Container id or name"},
			{Name: "timeout_seconds", Type: toolkit.TypeNumber, Default: 10.0, Description: "Seconds to wait before force kill"},
		},
	}
}

func versionDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "get_version",
		Description: "Get the Adjutant-Docker server version and backend status. Use this to verify connectivity.",
	}
}
