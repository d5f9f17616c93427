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
	// Navigation Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryNavigation,
		Message:  "Invalid container",
		Detail:   "The engine requires a non-nil container to mount content into. Pass a dom.Container implementation to nav.New().",
		DocURL:   "https://passage.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryRegistry,
		Message:  "Invalid handler",
		Detail:   "Route handlers must be non-nil. A handler receives the merged route parameters and returns renderable content.",
		DocURL:   "https://passage.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryRender,
		Message:  "Unrenderable content",
		Detail:   "Content must be either markup text or a renderable node. The container was left untouched.",
		DocURL:   "https://passage.dev/docs/errors/E003",
	},
	"E004": {
		Category: CategoryNavigation,
		Message:  "Invalid navigation surface",
		Detail:   "The engine requires a non-nil history surface. Pass a history.Surface implementation to nav.New().",
		DocURL:   "https://passage.dev/docs/errors/E004",
	},
	"E005": {
		Category: CategoryNavigation,
		Message:  "Invalid path",
		Detail:   "Navigation paths must not contain backslashes or null bytes.",
		DocURL:   "https://passage.dev/docs/errors/E005",
	},

	// ============================================
	// Handler Errors (E101-E199)
	// ============================================

	"E101": {
		Category: CategoryNavigation,
		Message:  "Handler failed",
		Detail:   "The route handler returned an error. The failure was rendered as error content and the navigation cycle completed.",
		DocURL:   "https://passage.dev/docs/errors/E101",
	},

	// ============================================
	// Config Errors (E201-E299)
	// ============================================

	"E201": {
		Category: CategoryConfig,
		Message:  "Invalid configuration file",
		Detail:   "passage.json could not be parsed. Check for JSON syntax errors.",
		DocURL:   "https://passage.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No passage.json was found in the project directory. Run 'passage init' to create one.",
		DocURL:   "https://passage.dev/docs/errors/E202",
	},
	"E203": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field has an out-of-range or malformed value.",
		DocURL:   "https://passage.dev/docs/errors/E203",
	},

	// ============================================
	// Deploy Errors (E301-E399)
	// ============================================

	"E301": {
		Category: CategoryDeploy,
		Message:  "Deploy failed",
		Detail:   "Uploading the built assets to the configured bucket failed.",
		DocURL:   "https://passage.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryDeploy,
		Message:  "No build output",
		Detail:   "The output directory does not exist or is empty. Run 'passage build' first.",
		DocURL:   "https://passage.dev/docs/errors/E302",
	},
}

// Lookup returns the template for a code, if registered.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
