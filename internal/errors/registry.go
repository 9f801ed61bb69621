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
	// Config Errors (E001-E099)
	// ============================================

	"E001": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No domweave.json was found in the current directory or any parent directory.",
		DocURL:   "https://domweave.dev/docs/errors/E001",
	},
	"E002": {
		Category: CategoryConfig,
		Message:  "Configuration file is not valid JSON",
		Detail:   "domweave.json could not be parsed. Check for trailing commas or unquoted keys.",
		DocURL:   "https://domweave.dev/docs/errors/E002",
	},
	"E003": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field has a value outside its allowed range.",
		DocURL:   "https://domweave.dev/docs/errors/E003",
	},

	// ============================================
	// Schema Errors (E101-E199)
	// ============================================

	"E101": {
		Category: CategorySchema,
		Message:  "Schema file not found",
		Detail:   "The schema path configured for binding generation does not exist.",
		DocURL:   "https://domweave.dev/docs/errors/E101",
	},
	"E102": {
		Category: CategorySchema,
		Message:  "Schema file is not valid YAML",
		Detail:   "The schema table could not be parsed.",
		DocURL:   "https://domweave.dev/docs/errors/E102",
	},
	"E103": {
		Category: CategorySchema,
		Message:  "Duplicate tag in schema",
		Detail:   "Two element rows declare the same tag name. Each tag may appear once.",
		DocURL:   "https://domweave.dev/docs/errors/E103",
	},
	"E104": {
		Category: CategorySchema,
		Message:  "Duplicate Go identifier in schema",
		Detail:   "Two rows would generate the same constructor name. Rename one with the ident field.",
		DocURL:   "https://domweave.dev/docs/errors/E104",
	},
	"E105": {
		Category: CategorySchema,
		Message:  "Unknown attribute kind",
		Detail:   "Attribute rows accept the kinds: string, int, float, bool, flag, list.",
		DocURL:   "https://domweave.dev/docs/errors/E105",
	},
	"E106": {
		Category: CategorySchema,
		Message:  "Identifier is not exported or not valid Go",
		Detail:   "Generated constructor names must be exported Go identifiers.",
		DocURL:   "https://domweave.dev/docs/errors/E106",
	},
	"E107": {
		Category: CategorySchema,
		Message:  "Schema row is missing a required field",
		Detail:   "Element rows need a tag, attribute rows need a name, event rows need an event name.",
		DocURL:   "https://domweave.dev/docs/errors/E107",
	},
	"E108": {
		Category: CategorySchema,
		Message:  "Unsupported schema version",
		Detail:   "This release understands schema version 1.",
		DocURL:   "https://domweave.dev/docs/errors/E108",
	},
	"E109": {
		Category: CategorySchema,
		Message:  "Unknown element namespace",
		Detail:   "Element rows accept the namespaces: html, svg, mathml.",
		DocURL:   "https://domweave.dev/docs/errors/E109",
	},

	// ============================================
	// Codegen Errors (E201-E299)
	// ============================================

	"E201": {
		Category: CategoryCodegen,
		Message:  "Binding template failed to execute",
		Detail:   "An internal template could not render the schema. This is a bug in domweave.",
		DocURL:   "https://domweave.dev/docs/errors/E201",
	},
	"E202": {
		Category: CategoryCodegen,
		Message:  "Generated source failed gofmt",
		Detail:   "The emitted bindings are not syntactically valid Go. This is a bug in domweave; the unformatted output is preserved for inspection.",
		DocURL:   "https://domweave.dev/docs/errors/E202",
	},
	"E203": {
		Category: CategoryCodegen,
		Message:  "Could not write generated file",
		Detail:   "The output directory is missing or not writable.",
		DocURL:   "https://domweave.dev/docs/errors/E203",
	},

	// ============================================
	// Builder Errors (E301-E399)
	// ============================================

	"E301": {
		Category: CategoryBuild,
		Message:  "Close without a matching open element",
		Detail:   "A CloseOp arrived while no element was open. Every CloseOp must pair with an earlier OpenOp.",
		DocURL:   "https://domweave.dev/docs/errors/E301",
	},
	"E302": {
		Category: CategoryBuild,
		Message:  "Operation after the root element was closed",
		Detail:   "The builder is one-shot: once the outermost element closes, the stream has ended.",
		DocURL:   "https://domweave.dev/docs/errors/E302",
	},
	"E303": {
		Category: CategoryBuild,
		Message:  "Attribute with no open element",
		Detail:   "AttrOp and EventOp apply to the innermost open element; none is open here.",
		DocURL:   "https://domweave.dev/docs/errors/E303",
	},
	"E304": {
		Category: CategoryBuild,
		Message:  "Content inside a void element",
		Detail:   "Void elements (br, img, input, ...) cannot have children, text, or raw HTML.",
		DocURL:   "https://domweave.dev/docs/errors/E304",
	},
	"E305": {
		Category: CategoryBuild,
		Message:  "Unsupported event handler type",
		Detail:   "Event handlers must be func(dom.Event) or func().",
		DocURL:   "https://domweave.dev/docs/errors/E305",
	},
	"E306": {
		Category: CategoryBuild,
		Message:  "Raw HTML injection failed",
		Detail:   "The host document rejected the fragment passed to insertAdjacentHTML.",
		DocURL:   "https://domweave.dev/docs/errors/E306",
	},
	"E307": {
		Category: CategoryBuild,
		Message:  "Unknown attribute namespace prefix",
		Detail:   "Prefixed attributes are limited to xlink:, xml:, and xmlns.",
		DocURL:   "https://domweave.dev/docs/errors/E307",
	},
	"E308": {
		Category: CategoryBuild,
		Message:  "Unbuildable node kind",
		Detail:   "The node tree contains a kind the DOM builder does not understand.",
		DocURL:   "https://domweave.dev/docs/errors/E308",
	},

	// ============================================
	// CLI / Publish Errors (E401-E499)
	// ============================================

	"E401": {
		Category: CategoryCLI,
		Message:  "Preview server failed to start",
		Detail:   "The configured address could not be bound. Another process may be using the port.",
		DocURL:   "https://domweave.dev/docs/errors/E401",
	},
	"E402": {
		Category: CategoryCLI,
		Message:  "Publish bucket not configured",
		Detail:   "Set publish.bucket in domweave.json or pass --bucket.",
		DocURL:   "https://domweave.dev/docs/errors/E402",
	},
	"E403": {
		Category: CategoryCLI,
		Message:  "Upload to S3 failed",
		Detail:   "One or more objects could not be written to the publish bucket.",
		DocURL:   "https://domweave.dev/docs/errors/E403",
	},
}

// Register adds a custom error template. Existing codes are overwritten.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}

// Lookup returns the template for a code, if registered.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
