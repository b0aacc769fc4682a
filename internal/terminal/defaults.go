package terminal

import "time"

// Default reveal delays. Longer output uses a shorter delay so the reveal
// stays snappy.
const (
	defaultDelay = 60 * time.Millisecond
	fastDelay    = 35 * time.Millisecond
)

const helpOutput = `Available commands:

  help                 Show this overview
  about                What Shuriken CLI is
  shuriken new         Scaffold a new Shuriken application
  shuriken package     How packages are discovered and registered
  ui-kit setup         Install the UI kit package into an app
  migrate run          Apply pending migrations
  migrate status       Show migration state
  docs                 Where to read the full documentation
  version              Show the framework version
  clear                Clear the transcript`

const aboutOutput = `Shuriken CLI is a batteries-included framework for building modular
command-line applications. Features ship as packages: each package bundles
its commands, services and migrations, and the framework wires them together
through a dependency injection container. Add a package, and its commands
appear; remove it, and they are gone. No glue code.`

const newOutput = `$ shuriken new my-app

  ✔ created my-app/
  ✔ created my-app/shuriken.yaml
  ✔ created my-app/packages/
  ✔ registered core package (12 commands)
  ✔ initialized migration ledger

Done. Run "cd my-app && shuriken list" to see your commands.`

const packageOutput = `A package is a self-contained feature module. On startup the framework scans
the packages/ directory, loads each manifest, and registers the package with
the container:

  packages/
    billing/
      package.yaml     name, version, dependencies
      commands/        CLI commands this package contributes
      migrations/      schema and data migrations

Dependencies between packages are resolved topologically, so a package can
inject services from any package it declares a dependency on.`

const uiKitOutput = `$ shuriken package add ui-kit

  ✔ resolved ui-kit 2.4.1
  ✔ dependencies satisfied: core >= 1.0
  ✔ registered 7 commands
  ✔ queued 2 migrations

Run "migrate run" to apply pending migrations.`

const migrateRunOutput = `$ shuriken migrate run

  → 0012_ui_kit_theme_table        applied in 18ms
  → 0013_ui_kit_default_palette    applied in 4ms

2 migrations applied, 0 skipped. Ledger is up to date.`

const migrateStatusOutput = `$ shuriken migrate status

  0011_core_settings            applied  2026-08-19
  0012_ui_kit_theme_table       applied  2026-08-25
  0013_ui_kit_default_palette   applied  2026-08-25

No pending migrations.`

const docsOutput = `Full documentation lives in this tool as well:

  shuriken-tour docs             list all pages
  shuriken-tour docs packages    the package architecture
  shuriken-tour docs commands    command dispatch
  shuriken-tour docs migrations  the migration runner`

const versionOutput = `shuriken 2.4.1 (ui-kit 2.4.1, core 1.8.0)`

// DefaultScript returns the canned command table the playground ships with.
// Declaration order is the precedence order for prefix matches.
func DefaultScript() *Script {
	return NewScript(
		Entry{Trigger: "help", Output: helpOutput, RevealDelay: fastDelay},
		Entry{Trigger: "about", Output: aboutOutput, RevealDelay: fastDelay},
		Entry{Trigger: "shuriken new", Output: newOutput, RevealDelay: defaultDelay},
		Entry{Trigger: "shuriken package", Output: packageOutput, RevealDelay: fastDelay},
		Entry{Trigger: "ui-kit setup", Output: uiKitOutput, RevealDelay: defaultDelay},
		Entry{Trigger: "migrate run", Output: migrateRunOutput, RevealDelay: defaultDelay},
		Entry{Trigger: "migrate status", Output: migrateStatusOutput, RevealDelay: defaultDelay},
		Entry{Trigger: "docs", Output: docsOutput, RevealDelay: fastDelay},
		Entry{Trigger: "version", Output: versionOutput, RevealDelay: defaultDelay},
	)
}
