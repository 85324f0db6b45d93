// Package reportcfg loads the YAML configuration the `report` CLI
// subcommand uses to decide which sections to render, via
// gopkg.in/yaml.v3. Load also decodes group_mode, thresholds and permute,
// but the `report` subcommand reads only sections; its grouping and
// thresholds come from the command-line flags.
package reportcfg
