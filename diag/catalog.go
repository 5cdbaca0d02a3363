package diag

// CatalogEntry supplies a code's fixed metadata: its numeric form (an
// "E001"..."E599"/"W0xx" identifier), category, default severity, and
// message template. Message templates use named placeholders
// ("{expected}", "{actual}", "{name}") filled in by New.
type CatalogEntry struct {
	Numeric  string
	Category Category
	Severity Severity
	Template string
	Help     string
}

// Symbolic diagnostic codes. Named (rather than bare numeric) so call
// sites and tests read descriptively, e.g. "ASYNC_WAIT_BEFORE_START".
// Catalog below maps each to its numeric form.
const (
	CodeInvalidUTF8            = "INVALID_UTF8"
	CodeUnterminatedString     = "UNTERMINATED_STRING"
	CodeInvalidNumber          = "INVALID_NUMBER_LITERAL"
	CodeStrayCharacter         = "STRAY_CHARACTER"
	CodeInconsistentIndent     = "INCONSISTENT_INDENT"
	CodeUnexpectedToken        = "UNEXPECTED_TOKEN"
	CodeDuplicateField         = "DUPLICATE_FIELD"
	CodeEmptyEnum              = "EMPTY_ENUM"
	CodeDuplicateVariant       = "DUPLICATE_VARIANT"
	CodeLexiconCollision       = "LEXICON_TRANSLATION_COLLISION"
	CodeUnresolvedName         = "UNRESOLVED_NAME"
	CodeDuplicateDefinition    = "DUPLICATE_DEFINITION"
	CodeShadowedSymbol         = "SHADOWED_SYMBOL"
	CodeTypeVarInconsistent    = "TYPEVAR_INCONSISTENT"
	CodeTypeVarUndeclared      = "TYPE_VAR_UNDECLARED"
	CodeTypeParamUnused        = "TYPE_PARAM_UNUSED"
	CodeTypeVarLikeUndeclared  = "TYPEVAR_LIKE_UNDECLARED"
	CodeTypeAliasCycle         = "TYPE_ALIAS_CYCLE"
	CodeTypeAppArityMismatch   = "TYPE_APP_ARITY_MISMATCH"
	CodeDuplicateEnumVariant   = "DUPLICATE_ENUM_VARIANT"
	CodeEffectNotDeclared      = "EFFECT_NOT_DECLARED"
	CodeEffectOverDeclared     = "EFFECT_OVER_DECLARED"
	CodeEffectVarUndeclared    = "EFFECT_VAR_UNDECLARED"
	CodeEffectParamUnused      = "EFFECT_PARAM_UNUSED"
	CodePIILeak                = "PII_LEAK"
	CodeCapabilityDenied       = "CAPABILITY_DENIED"
	CodeAsyncWaitBeforeStart   = "ASYNC_WAIT_BEFORE_START"
	CodeAsyncDuplicateStart    = "ASYNC_DUPLICATE_START"
	CodeCoreIRVersionMismatch  = "CORE_IR_VERSION_MISMATCH"
)

// Catalog is the closed, numbered set of diagnostic codes this module
// emits. It is a generated-style read-only table, never mutated after
// init.
var Catalog = map[string]CatalogEntry{
	CodeInvalidUTF8: {
		Numeric: "E001", Category: CategorySyntax, Severity: Error,
		Template: "invalid UTF-8 sequence at {pos}; replaced with U+FFFD",
		Help:     "the source file contains bytes that are not valid UTF-8",
	},
	CodeUnterminatedString: {
		Numeric: "E010", Category: CategorySyntax, Severity: Error,
		Template: "unterminated string literal",
		Help:     "every string literal must be closed with a matching quote on the same line",
	},
	CodeInvalidNumber: {
		Numeric: "E011", Category: CategorySyntax, Severity: Error,
		Template: "invalid numeric literal {actual}",
		Help:     "numeric literals must match an integer or floating-point form",
	},
	CodeStrayCharacter: {
		Numeric: "E012", Category: CategorySyntax, Severity: Error,
		Template: "unexpected character {actual}",
		Help:     "this character does not begin any recognized token",
	},
	CodeInconsistentIndent: {
		Numeric: "E013", Category: CategorySyntax, Severity: Error,
		Template: "inconsistent indentation: dedent does not match any enclosing indentation level",
		Help:     "indentation must return to a column that matches an enclosing block",
	},
	CodeUnexpectedToken: {
		Numeric: "E020", Category: CategorySyntax, Severity: Error,
		Template: "unexpected {actual}; expected {expected}",
		Help:     "the parser could not continue from this token",
	},
	CodeDuplicateField: {
		Numeric: "E021", Category: CategorySyntax, Severity: Error,
		Template: "field {name} is declared more than once",
		Help:     "field names must be unique within a Data declaration",
	},
	CodeEmptyEnum: {
		Numeric: "E022", Category: CategorySyntax, Severity: Error,
		Template: "enum {name} declares no variants",
		Help:     "every Enum must declare at least one variant",
	},
	CodeDuplicateVariant: {
		Numeric: "E023", Category: CategorySyntax, Severity: Error,
		Template: "variant {name} is declared more than once in enum {enum}",
		Help:     "variant names must be unique within an Enum declaration",
	},
	CodeLexiconCollision: {
		Numeric: "E024", Category: CategorySyntax, Severity: Error,
		Template: "lexicon registration for {name} collides with an existing registration",
		Help:     "map each localized keyword spelling to one canonical keyword, and register each lexicon name once",
	},
	CodeUnresolvedName: {
		Numeric: "E100", Category: CategoryScope, Severity: Error,
		Template: "undefined name {name}",
		Help:     "this name does not resolve in any enclosing scope",
	},
	CodeDuplicateDefinition: {
		Numeric: "E101", Category: CategoryScope, Severity: Error,
		Template: "{name} is already defined in this scope",
		Help:     "a scope may not declare the same name twice",
	},
	CodeShadowedSymbol: {
		Numeric: "W010", Category: CategoryScope, Severity: Warning,
		Template: "{name} shadows a definition from an enclosing scope",
		Help:     "shadowing across scopes is allowed but may be unintentional",
	},
	CodeTypeVarInconsistent: {
		Numeric: "E200", Category: CategoryType, Severity: Error,
		Template: "type variable {name} was bound to {previous} but is used here as {actual}",
		Help:     "every use of a type variable within one inference context must agree",
	},
	CodeTypeVarUndeclared: {
		Numeric: "E201", Category: CategoryType, Severity: Error,
		Template: "type variable {name} is used but not declared in this function's type parameters",
		Help:     "add {name} to the function's type parameter list",
	},
	CodeTypeParamUnused: {
		Numeric: "W020", Category: CategoryType, Severity: Warning,
		Template: "type parameter {name} is declared but never used",
		Help:     "remove the unused type parameter or use it in a parameter/return type",
	},
	CodeTypeVarLikeUndeclared: {
		Numeric: "E202", Category: CategoryType, Severity: Error,
		Template: "{name} looks like a type variable but is not declared",
		Help:     "single uppercase-led identifiers that are not known types are treated as type variables and must be declared",
	},
	CodeTypeAliasCycle: {
		Numeric: "E203", Category: CategoryType, Severity: Error,
		Template: "type alias {name} expands to itself through a cycle",
		Help:     "break the cycle by introducing a concrete type along the chain",
	},
	CodeTypeAppArityMismatch: {
		Numeric: "E204", Category: CategoryType, Severity: Error,
		Template: "{name} expects {expected} type argument(s) but got {actual}",
		Help:     "generic type applications must supply exactly as many arguments as declared type parameters",
	},
	CodeDuplicateEnumVariant: {
		Numeric: "E205", Category: CategoryType, Severity: Error,
		Template: "duplicate variant name {name}",
		Help:     "variant names must be unique within an Enum declaration",
	},
	CodeEffectNotDeclared: {
		Numeric: "E300", Category: CategoryEffect, Severity: Error,
		Template: "function {name} performs {actual} but only declares {expected}",
		Help:     "add the missing effects to the function's \"It performs\" clause",
	},
	CodeEffectOverDeclared: {
		Numeric: "W030", Category: CategoryEffect, Severity: Warning,
		Template: "function {name} declares {expected} but only performs {actual}",
		Help:     "remove effects from the declared set that the body never actually performs",
	},
	CodeEffectVarUndeclared: {
		Numeric: "E301", Category: CategoryEffect, Severity: Error,
		Template: "effect variable {name} is used but not declared in this function's effect parameters",
		Help:     "add {name} to the function's effect parameter list",
	},
	CodeEffectParamUnused: {
		Numeric: "W031", Category: CategoryEffect, Severity: Warning,
		Template: "effect parameter {name} is declared but never used",
		Help:     "remove the unused effect parameter or use it in a declared effect",
	},
	CodePIILeak: {
		Numeric: "E400", Category: CategoryPII, Severity: Error,
		Template: "personally identifying value {name} flows into an operation without an Io-class effect",
		Help:     "route personally identifying data only through functions that declare an appropriate effect",
	},
	CodeCapabilityDenied: {
		Numeric: "E500", Category: CategoryCapability, Severity: Error,
		Template: "{name} is not permitted to use capability {actual} by the active manifest",
		Help:     "update the capability manifest's allow/deny patterns or remove the offending effect",
	},
	CodeAsyncWaitBeforeStart: {
		Numeric: "E550", Category: CategoryAsync, Severity: Error,
		Template: "Wait for {name} has no Start {name} that dominates it on every path",
		Help:     "every Wait must be preceded by a Start of the same task on all control-flow paths reaching it",
	},
	CodeAsyncDuplicateStart: {
		Numeric: "E551", Category: CategoryAsync, Severity: Error,
		Template: "task {name} is started more than once on some control-flow path",
		Help:     "a task name may be started at most once per reachable path; use distinct names for concurrent tasks",
	},
	CodeCoreIRVersionMismatch: {
		Numeric: "E599", Category: CategorySyntax, Severity: Error,
		Template: "Core IR envelope version {actual} is not supported (expected {expected})",
		Help:     "regenerate the Core IR with a compatible compiler version",
	},
}
