package rules

// Default returns the standard rule pipeline in its fixed order. Rules that
// do not apply to the active language or options pass the stream through
// unchanged.
func Default() []Rule {
	return []Rule{
		StripComments{},
		CollapseWhitespace{},
		RenameLocals{},
		RemoveRedundantSeparators{},
		MergeStrings{},
	}
}
