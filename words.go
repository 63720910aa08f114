package main

// WordTable maps names to words. It is populated before dispatch begins and
// only read afterwards.
type WordTable map[string]*Word

// Put binds word under its name, replacing any prior binding.
func (wt WordTable) Put(word Word) {
	wt[word.Name] = &word
}

// Get returns the word bound to name, if any.
func (wt WordTable) Get(name string) (*Word, bool) {
	word, defined := wt[name]
	return word, defined
}

// Builtins returns a new table holding every primitive word.
func Builtins() WordTable {
	words := builtinWords()
	wt := make(WordTable, len(words))
	for _, word := range words {
		wt.Put(word)
	}
	return wt
}
