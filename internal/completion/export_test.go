package completion

var (
	CompleteAcronyms       = completeAcronyms
	CompleteArguments      = completeArguments
	CompleteCitations      = completeCitations
	CompleteColors         = completeColors
	CompleteCommandSymbols = completeCommandSymbols
	CompleteEntryTypes     = completeEntryTypes
	CompleteFields         = completeFields
	CompleteImports        = completeImports
	CompleteTikzLibraries  = completeTikzLibraries
)
