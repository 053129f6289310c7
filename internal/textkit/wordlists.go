package textkit

// CommonWords is a reference list of the most frequent English words. It
// backs the rare-word feature and the proper-noun guard in the variety
// pass (a capitalized word on this list is safe to lowercase).
var CommonWords = map[string]bool{
	"the": true, "be": true, "to": true, "of": true, "and": true, "a": true,
	"in": true, "that": true, "have": true, "it": true, "for": true,
	"not": true, "on": true, "with": true, "he": true, "as": true,
	"you": true, "do": true, "at": true, "this": true, "but": true,
	"his": true, "by": true, "from": true, "they": true, "we": true,
	"say": true, "her": true, "she": true, "or": true, "an": true,
	"will": true, "my": true, "one": true, "all": true, "would": true,
	"there": true, "their": true, "what": true, "so": true, "up": true,
	"out": true, "if": true, "about": true, "who": true, "get": true,
	"which": true, "go": true, "me": true, "when": true, "make": true,
	"can": true, "like": true, "time": true, "no": true, "just": true,
	"him": true, "know": true, "take": true, "people": true, "into": true,
	"year": true, "your": true, "good": true, "some": true, "could": true,
	"them": true, "see": true, "other": true, "than": true, "then": true,
	"now": true, "look": true, "only": true, "come": true, "its": true,
	"over": true, "think": true, "also": true, "back": true, "after": true,
	"use": true, "two": true, "how": true, "our": true, "work": true,
	"first": true, "well": true, "way": true, "even": true, "new": true,
	"want": true, "because": true, "any": true, "these": true, "give": true,
	"day": true, "most": true, "us": true, "is": true, "are": true,
	"was": true, "were": true, "been": true, "has": true, "had": true,
	"did": true, "very": true, "more": true, "here": true, "where": true,
}

// HedgeWords soften claims; a moderate amount is a human tell.
var HedgeWords = map[string]bool{
	"perhaps": true, "maybe": true, "possibly": true, "probably": true,
	"might": true, "could": true, "seems": true, "appear": true,
	"appears": true, "suggest": true, "suggests": true, "indicate": true,
	"indicates": true, "generally": true, "typically": true, "usually": true,
	"often": true, "sometimes": true, "somewhat": true, "rather": true,
	"fairly": true, "quite": true, "relatively": true, "apparently": true,
	"presumably": true,
}

// FillerWords are the empty qualifiers AI-generated prose leans on.
var FillerWords = map[string]bool{
	"basically": true, "essentially": true, "fundamentally": true,
	"actually": true, "literally": true, "definitely": true,
	"certainly": true, "obviously": true, "simply": true, "truly": true,
	"undoubtedly": true, "arguably": true,
}

// FirstPersonPronouns covers singular and plural first person.
var FirstPersonPronouns = map[string]bool{
	"i": true, "me": true, "my": true, "mine": true, "myself": true,
	"we": true, "us": true, "our": true, "ours": true, "ourselves": true,
}

// StartConjunctions are coordinating conjunctions that mark a casual
// sentence opening.
var StartConjunctions = map[string]bool{
	"but": true, "and": true, "or": true, "nor": true, "so": true,
	"yet": true, "for": true,
}
