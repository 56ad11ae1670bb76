/*
PURPOSE:
  Embeds starter files shipped inside the binary.
  Currently just the annotated default config for `config init`.

REQUIREMENTS:
  User-specified:
  - `yule-runner config init` must work offline, from the binary alone.

  Implementation-discovered:
  - go:embed needs the files to live under this package directory.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli/configcmd.go

ERROR HANDLING:
  - N/A; embedding is checked at compile time.

IMPLEMENTATION RULES:
  - Keep the embedded config in sync with config.DefaultConfig().

USAGE:
  data, err := fs.ReadFile(assets.Starter, "yule_runner.yaml")

SELF-HEALING INSTRUCTIONS:
  - If the file is renamed, update the go:embed directive and configcmd.go.

RELATED FILES:
  - internal/cli/configcmd.go
  - internal/config/config.go

MAINTENANCE:
  - Update the embedded YAML whenever a config field is added.
*/

package assets

import "embed"

// Starter holds the annotated default configuration file.
//
//go:embed yule_runner.yaml
var Starter embed.FS
