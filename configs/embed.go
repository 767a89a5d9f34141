// Package configs bundles the JSON schemas shipped with the binaries.
package configs

import "embed"

// Schemas holds every file under schemas/, addressed as "schemas/<name>"
//
//go:embed schemas/*.json
var Schemas embed.FS

// ItemSchemaName is the path of the item record schema inside Schemas
const ItemSchemaName = "schemas/item.schema.json"
