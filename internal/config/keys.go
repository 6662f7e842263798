package config

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Install configuration
	KeyTPLPrefix = "TPL_PREFIX" // Install root for TPLs and host configs
	KeyTPLSpec   = "TPL_SPEC"   // Dependency spec passed to uberenv

	// Uberenv configuration
	KeyUberenvPath = "UBERENV_PATH" // Path to the uberenv.py orchestrator
	KeyPythonBin   = "PYTHON_BIN"   // Python interpreter used to run uberenv

	// Permission configuration
	KeyTPLGroup = "TPL_GROUP" // Unix group that owns the install tree

	// System configuration
	KeyConfigVersion = "CONFIG_VERSION"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyTPLSpec:       "@develop",
	KeyUberenvPath:   "../uberenv.py",
	KeyPythonBin:     "python",
	KeyTPLGroup:      "toolkitd",
	KeyConfigVersion: "1",
}
