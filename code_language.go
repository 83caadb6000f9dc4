// Defines the code block language enumeration.

package notion

// CodeLanguage is the syntax highlighting language of a code block.
// Reference: https://developers.notion.com/reference/block#code
type CodeLanguage string

// codeLanguages is the accepted set for CodeBlock.Language.
var codeLanguages = map[CodeLanguage]bool{
	"abap": true, "agda": true, "arduino": true, "ascii art": true,
	"assembly": true, "bash": true, "basic": true, "bnf": true, "c": true,
	"c#": true, "c++": true, "clojure": true, "coffeescript": true,
	"coq": true, "css": true, "dart": true, "dhall": true, "diff": true,
	"docker": true, "ebnf": true, "elixir": true, "elm": true,
	"erlang": true, "f#": true, "flow": true, "fortran": true,
	"gherkin": true, "glsl": true, "go": true, "graphql": true,
	"groovy": true, "haskell": true, "hcl": true, "html": true,
	"idris": true, "java": true, "javascript": true, "json": true,
	"julia": true, "kotlin": true, "latex": true, "less": true,
	"lisp": true, "livescript": true, "llvm ir": true, "lua": true,
	"makefile": true, "markdown": true, "markup": true, "matlab": true,
	"mathematica": true, "mermaid": true, "nix": true, "notion formula": true,
	"objective-c": true, "ocaml": true, "pascal": true, "perl": true,
	"php": true, "plain text": true, "powershell": true, "prolog": true,
	"protobuf": true, "purescript": true, "python": true, "r": true,
	"racket": true, "reason": true, "ruby": true, "rust": true,
	"sass": true, "scala": true, "scheme": true, "scss": true,
	"shell": true, "smalltalk": true, "solidity": true, "sql": true,
	"swift": true, "toml": true, "typescript": true, "vb.net": true,
	"verilog": true, "vhdl": true, "visual basic": true,
	"webassembly": true, "xml": true, "yaml": true, "java/c/c++/c#": true,
}

// Commonly referenced languages.
const (
	CodeLanguageBash       CodeLanguage = "bash"
	CodeLanguageGo         CodeLanguage = "go"
	CodeLanguageJavaScript CodeLanguage = "javascript"
	CodeLanguageJSON       CodeLanguage = "json"
	CodeLanguageMarkdown   CodeLanguage = "markdown"
	CodeLanguagePlainText  CodeLanguage = "plain text"
	CodeLanguagePython     CodeLanguage = "python"
	CodeLanguageRust       CodeLanguage = "rust"
	CodeLanguageSQL        CodeLanguage = "sql"
	CodeLanguageTypeScript CodeLanguage = "typescript"
	CodeLanguageYAML       CodeLanguage = "yaml"
)

// Valid reports whether l is a recognized code language. The empty
// string is valid; the API defaults it to "plain text".
func (l CodeLanguage) Valid() bool {
	return l == "" || codeLanguages[l]
}
