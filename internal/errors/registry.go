package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
	DocURL   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Configuration Errors (E101-E119)
	// ============================================

	"E101": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No pages.json was found in the working directory or any parent directory.",
	},
	"E102": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "pages.json exists but could not be parsed as JSON.",
	},
	"E103": {
		Category: CategoryConfig,
		Message:  "Unknown driver",
		Detail:   "The configured driver name does not match any registered driver.",
	},
	"E104": {
		Category: CategoryConfig,
		Message:  "Layout and parent file names collide",
		Detail:   "The layout and parent special files share one name; such files are treated as parent files.",
	},

	// ============================================
	// Discovery Errors (E120-E139)
	// ============================================

	"E120": {
		Category: CategoryDiscovery,
		Message:  "Pages root not found",
		Detail:   "A configured pages root does not exist or is not a directory.",
	},
	"E121": {
		Category: CategoryDiscovery,
		Message:  "No pages roots discovered",
		Detail:   "Neither a top-level pages/ directory nor any entrypoints/*/pages directory was found.",
	},
	"E122": {
		Category: CategoryDiscovery,
		Message:  "Failed to enumerate page files",
		Detail:   "A filesystem error occurred while walking a pages root.",
	},

	// ============================================
	// Generation Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryGenerate,
		Message:  "Failed to write generated output",
	},
	"E141": {
		Category: CategoryGenerate,
		Message:  "Duplicate special file",
		Detail:   "A directory contains more than one layout or parent file; the first one found wins.",
	},

	// ============================================
	// CLI Errors (E160-E179)
	// ============================================

	"E160": {
		Category: CategoryCLI,
		Message:  "Development server failed to start",
	},
}
