package main

import (
	"github.com/adjutant-mcp/adjutant/internal/config"
	"github.com/adjutant-mcp/adjutant/internal/interfaces"
	"github.com/adjutant-mcp/adjutant/internal/toolkit"
)

// registerTools declares the key-value tool surface and binds each tool
// to its handler. Absent keys are reported as normal results, so none of
// these carry a gate.
func registerTools(reg *toolkit.Registry, store interfaces.KeyValueStore, cfg *config.Config) error {
	return reg.RegisterAll(
		toolkit.Registration{
			Descriptor: getDescriptor(),
			Handler:    handleGet(store),
		},
		toolkit.Registration{
			Descriptor: setDescriptor(),
			Handler:    handleSet(store),
		},
		toolkit.Registration{
			Descriptor: delDescriptor(),
			Handler:    handleDel(store),
		},
		toolkit.Registration{
			Descriptor: listKeysDescriptor(),
			Handler:    handleListKeys(store),
		},
		toolkit.Registration{
			Descriptor: versionDescriptor(),
			Handler:    handleGetVersion(cfg),
		},
	)
}

func getDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "get",
		Description: "Get the value stored at a key. A key that does not exist is reported, not treated as an error.",
		Fields: []toolkit.FieldSpec{
			{Name: "key", Type: toolkit.TypeString, Required: true, Description: "Key to read"},
		},
	}
}

func setDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "set",
		Description: "Set a key to a string value, creating or overwriting it.",
		Fields: []toolkit.FieldSpec{
			{Name: "key", Type: toolkit.TypeString, Required: true, Description: "Key to write"},
			{Name: "value", Type: toolkit.TypeString, Required: true, Description: "Value to store"},
		},
	}
}

func delDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "del",
		Description: "Delete a key. The response says whether the key existed; deleting an absent key is not an error.",
		Fields: []toolkit.FieldSpec{
			{Name: "key", Type: toolkit.TypeString, Required: true, Description: "Key to delete"},
		},
	}
}

func listKeysDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "list_keys",
		Description: "List the keys matching a glob pattern, sorted.",
		Fields: []toolkit.FieldSpec{
			{Name: "pattern", Type: toolkit.TypeString, Default: "*", Description: "Glob pattern to match keys against"},
		},
	}
}

func versionDescriptor() toolkit.Descriptor {
	return toolkit.Descriptor{
		Name:        "get_version",
		Description: "Get the Adjutant-KV server version and backend status. Use this to verify connectivity.",
	}
}
