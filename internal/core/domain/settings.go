package domain

// DefaultPackageManager is where a local cargo build leaves the meow binary.
const DefaultPackageManager = "target/release/meow"

// Settings carries the runtime options that shape how adapters are built.
type Settings struct {
	// PackageManager is the path to the meow binary used for sync and self-install.
	PackageManager string

	// Escalation is the command prefix used to gain superuser privilege.
	// Empty means commands run as the current user.
	Escalation []string

	// DryRun logs privileged operations instead of performing them.
	DryRun bool

	// JSONLogs switches the logger to JSON output.
	JSONLogs bool

	// Journal is a file that receives every step status update as JSON lines.
	// Empty disables the journal.
	Journal string
}

// DefaultSettings returns the settings used when no flags are given.
func DefaultSettings() Settings {
	return Settings{
		PackageManager: DefaultPackageManager,
		Escalation:     []string{"sudo"},
	}
}
