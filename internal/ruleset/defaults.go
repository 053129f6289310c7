package ruleset

// Default returns the built-in rule set. Matches are lowercase; the match
// engine restores sentence-initial capitalization. Replacements carry their
// natural inner casing ("as I said") and only the first letter is adjusted.
func Default() *RuleSet {
	return &RuleSet{
		PassiveRewrites: defaultPassiveRewrites(),
		FormalSimplify:  defaultFormalSimplify(),
		Contractions:    defaultContractions(),
		VarietyOpeners:  defaultVarietyOpeners(),
		FeatureTargets:  defaultFeatureTargets(),
		Suggestions:     defaultSuggestions(),
		MaxSuggestions:  5,
	}
}

// defaultPassiveRewrites is a closed catalog of stock impersonal passive
// openers, not a general passive-to-active transform.
func defaultPassiveRewrites() []Rule {
	return []Rule{
		{Match: "it can be seen that", Replace: "we can see that"},
		{Match: "it can be argued that", Replace: "you could argue that"},
		{Match: "it can be said that", Replace: "you could say that"},
		{Match: "it has been shown that", Replace: "research shows that"},
		{Match: "it has been demonstrated that", Replace: "research shows that"},
		{Match: "it has been found that", Replace: "studies found that"},
		{Match: "it is believed that", Replace: "many believe that"},
		{Match: "it is suggested that", Replace: "the data suggests that"},
		{Match: "it is recommended that", Replace: "we recommend that"},
		{Match: "it is expected that", Replace: "we expect that"},
		{Match: "it is assumed that", Replace: "we assume that"},
		{Match: "it is acknowledged that", Replace: "we acknowledge that"},
		{Match: "it is widely accepted that", Replace: "most people accept that"},
		{Match: "should be noted", Replace: "worth noting"},
		{Match: "should be mentioned", Replace: "worth mentioning"},
		{Match: "must be considered", Replace: "we need to consider"},
	}
}

// defaultFormalSimplify holds four rule classes in priority order:
// transition words, filler openings, verbose constructions, then formal
// verbs/nouns and redundant qualifiers. An empty replacement deletes the
// match together with one adjacent space.
func defaultFormalSimplify() []Rule {
	return []Rule{
		// Transition words
		{Match: "in conclusion", Replace: "to wrap up"},
		{Match: "to summarize", Replace: "in short"},
		{Match: "to conclude", Replace: "to wrap up"},
		{Match: "in summary", Replace: "in short"},
		{Match: "furthermore", Replace: "on top of that"},
		{Match: "moreover", Replace: "plus"},
		{Match: "in addition", Replace: "also"},
		{Match: "additionally", Replace: "also"},
		{Match: "subsequently", Replace: "then"},
		{Match: "conversely", Replace: "on the flip side"},
		{Match: "nevertheless", Replace: "still"},
		{Match: "nonetheless", Replace: "still"},
		{Match: "however", Replace: "that said"},
		{Match: "consequently", Replace: "so"},
		{Match: "therefore", Replace: "so"},
		{Match: "thus", Replace: "so"},
		{Match: "hence", Replace: "which is why"},
		{Match: "accordingly", Replace: "so"},

		// Filler openings
		{Match: "it is important to note that", Replace: "worth noting:"},
		{Match: "it is worth noting that", Replace: "worth noting:"},
		{Match: "it should be noted that", Replace: "note that"},
		{Match: "it is worth mentioning that", Replace: "interestingly,"},
		{Match: "it is crucial to understand that", Replace: "the key thing is"},
		{Match: "it is essential to recognize that", Replace: "keep in mind that"},
		{Match: "it is evident that", Replace: "clearly,"},
		{Match: "it is clear that", Replace: "clearly,"},
		{Match: "it is obvious that", Replace: "obviously,"},
		{Match: "it is widely known that", Replace: "most people know that"},
		{Match: "it goes without saying that", Replace: "obviously,"},
		{Match: "needless to say", Replace: "obviously"},
		{Match: "as previously mentioned", Replace: "as I said"},
		{Match: "as mentioned above", Replace: "as I said"},
		{Match: "as stated earlier", Replace: "as I said"},
		{Match: "as we can see", Replace: "clearly"},

		// Verbose constructions
		{Match: "due to the fact that", Replace: "because"},
		{Match: "in light of the fact that", Replace: "since"},
		{Match: "despite the fact that", Replace: "although"},
		{Match: "in the event that", Replace: "if"},
		{Match: "in order to", Replace: "to"},
		{Match: "for the purpose of", Replace: "to"},
		{Match: "with the intention of", Replace: "to"},
		{Match: "at this point in time", Replace: "now"},
		{Match: "at the present time", Replace: "currently"},
		{Match: "in the near future", Replace: "soon"},
		{Match: "on a daily basis", Replace: "every day"},
		{Match: "prior to", Replace: "before"},
		{Match: "subsequent to", Replace: "after"},
		{Match: "with regard to", Replace: "about"},
		{Match: "with respect to", Replace: "about"},
		{Match: "in terms of", Replace: "for"},
		{Match: "for the most part", Replace: "mostly"},
		{Match: "to a certain extent", Replace: "somewhat"},
		{Match: "a large number of", Replace: "many"},
		{Match: "a majority of", Replace: "most"},
		{Match: "the majority of", Replace: "most"},
		{Match: "a wide variety of", Replace: "many kinds of"},
		{Match: "play a crucial role in", Replace: "directly affect"},
		{Match: "play an important role in", Replace: "matter for"},
		{Match: "play a role in", Replace: "affect"},
		{Match: "utilization of", Replace: "use of"},

		// Formal verbs
		{Match: "utilize", Replace: "use"},
		{Match: "facilitate", Replace: "help"},
		{Match: "demonstrate", Replace: "show"},
		{Match: "assist", Replace: "help"},
		{Match: "obtain", Replace: "get"},
		{Match: "purchase", Replace: "buy"},
		{Match: "provide", Replace: "give"},
		{Match: "require", Replace: "need"},
		{Match: "attempt", Replace: "try"},
		{Match: "endeavor", Replace: "try"},
		{Match: "commence", Replace: "start"},
		{Match: "terminate", Replace: "end"},
		{Match: "ascertain", Replace: "find out"},
		{Match: "enhance", Replace: "improve"},
		{Match: "implement", Replace: "use"},
		{Match: "leverage", Replace: "use"},
		{Match: "maximize", Replace: "get the most out of"},
		{Match: "minimize", Replace: "reduce"},
		{Match: "optimize", Replace: "improve"},
		{Match: "prioritize", Replace: "focus on"},

		// Formal nouns
		{Match: "individuals", Replace: "people"},
		{Match: "residence", Replace: "home"},
		{Match: "employment", Replace: "work"},
		{Match: "compensation", Replace: "pay"},

		// Redundant qualifiers
		{Match: "very unique", Replace: "unique"},
		{Match: "absolutely essential", Replace: "essential"},
		{Match: "completely eliminate", Replace: "eliminate"},
		{Match: "basically", Replace: ""},
		{Match: "essentially", Replace: ""},
		{Match: "fundamentally", Replace: ""},
		{Match: "ultimately", Replace: "in the end"},
	}
}

// defaultContractions only forms contractions; existing contractions are
// never expanded. Three-word negated forms come first in spirit but the
// match engine's longest-match-first ordering is what actually guarantees
// "they are not" wins over "they are".
func defaultContractions() []Rule {
	return []Rule{
		// subject + be/aux, negated (longest forms)
		{Match: "i am not", Replace: "I'm not"},
		{Match: "it is not", Replace: "it isn't"},
		{Match: "that is not", Replace: "that isn't"},
		{Match: "there is not", Replace: "there isn't"},
		{Match: "he is not", Replace: "he isn't"},
		{Match: "she is not", Replace: "she isn't"},
		{Match: "we are not", Replace: "we aren't"},
		{Match: "you are not", Replace: "you aren't"},
		{Match: "they are not", Replace: "they aren't"},

		// to be / wh-words
		{Match: "it is", Replace: "it's"},
		{Match: "that is", Replace: "that's"},
		{Match: "what is", Replace: "what's"},
		{Match: "who is", Replace: "who's"},
		{Match: "here is", Replace: "here's"},
		{Match: "there is", Replace: "there's"},
		{Match: "where is", Replace: "where's"},
		{Match: "when is", Replace: "when's"},
		{Match: "how is", Replace: "how's"},

		// first person
		{Match: "i am", Replace: "I'm"},
		{Match: "i will", Replace: "I'll"},
		{Match: "i would", Replace: "I'd"},
		{Match: "i have", Replace: "I've"},

		// we / you / they
		{Match: "we are", Replace: "we're"},
		{Match: "we will", Replace: "we'll"},
		{Match: "we have", Replace: "we've"},
		{Match: "we would", Replace: "we'd"},
		{Match: "you are", Replace: "you're"},
		{Match: "you will", Replace: "you'll"},
		{Match: "you have", Replace: "you've"},
		{Match: "you would", Replace: "you'd"},
		{Match: "they are", Replace: "they're"},
		{Match: "they will", Replace: "they'll"},
		{Match: "they have", Replace: "they've"},
		{Match: "they would", Replace: "they'd"},

		// he / she / it
		{Match: "he is", Replace: "he's"},
		{Match: "he will", Replace: "he'll"},
		{Match: "he would", Replace: "he'd"},
		{Match: "he has", Replace: "he's"},
		{Match: "she is", Replace: "she's"},
		{Match: "she will", Replace: "she'll"},
		{Match: "she would", Replace: "she'd"},
		{Match: "she has", Replace: "she's"},
		{Match: "it will", Replace: "it'll"},
		{Match: "it would", Replace: "it'd"},
		{Match: "it has", Replace: "it's"},
		{Match: "that will", Replace: "that'll"},
		{Match: "there will", Replace: "there'll"},
		{Match: "who will", Replace: "who'll"},

		// negations
		{Match: "do not", Replace: "don't"},
		{Match: "does not", Replace: "doesn't"},
		{Match: "did not", Replace: "didn't"},
		{Match: "cannot", Replace: "can't"},
		{Match: "can not", Replace: "can't"},
		{Match: "could not", Replace: "couldn't"},
		{Match: "would not", Replace: "wouldn't"},
		{Match: "should not", Replace: "shouldn't"},
		{Match: "will not", Replace: "won't"},
		{Match: "must not", Replace: "mustn't"},
		{Match: "need not", Replace: "needn't"},
		{Match: "is not", Replace: "isn't"},
		{Match: "are not", Replace: "aren't"},
		{Match: "was not", Replace: "wasn't"},
		{Match: "were not", Replace: "weren't"},
		{Match: "have not", Replace: "haven't"},
		{Match: "has not", Replace: "hasn't"},
		{Match: "had not", Replace: "hadn't"},

		// perfect modals
		{Match: "would have", Replace: "would've"},
		{Match: "could have", Replace: "could've"},
		{Match: "should have", Replace: "should've"},
		{Match: "must have", Replace: "must've"},

		// misc
		{Match: "let us", Replace: "let's"},
	}
}

func defaultVarietyOpeners() []string {
	return []string{
		"Honestly,",
		"Here's the thing:",
		"Think about it:",
		"To be fair,",
		"The short answer is",
		"Interestingly enough,",
		"You might be surprised, but",
		"Real talk:",
		"And honestly?",
		"Here's what matters:",
		"Worth saying:",
		"Look,",
	}
}

// defaultFeatureTargets maps each feature to its ideal raw-value band and
// scoring weight. Weights sum to 1.0, with the strongest AI tells
// (contractions, formal phrasing, passive voice) weighted highest.
func defaultFeatureTargets() map[string]FeatureTarget {
	return map[string]FeatureTarget{
		"avg_sentence_length":      {Low: 12, High: 22, Weight: 0.08},
		"sentence_length_variance": {Low: 3, High: 12, Weight: 0.08},
		"lexical_diversity":        {Low: 0.5, High: 0.9, Weight: 0.08},
		"contraction_rate":         {Low: 0.15, High: 1.0, Weight: 0.12},
		"passive_voice_density":    {Low: 0.0, High: 0.15, Weight: 0.10},
		"formal_phrase_density":    {Low: 0.0, High: 1.5, Weight: 0.12},
		"filler_word_rate":         {Low: 0.0, High: 1.5, Weight: 0.07},
		"punctuation_density":      {Low: 0.03, High: 0.12, Weight: 0.05},
		"question_rate":            {Low: 0.0, High: 0.2, Weight: 0.04},
		"exclamation_rate":         {Low: 0.0, High: 0.15, Weight: 0.03},
		"first_person_rate":        {Low: 0.005, High: 0.09, Weight: 0.06},
		"hedge_word_rate":          {Low: 0.002, High: 0.06, Weight: 0.06},
		"conjunction_start_rate":   {Low: 0.0, High: 0.25, Weight: 0.04},
		"avg_syllables_per_word":   {Low: 1.2, High: 1.8, Weight: 0.04},
		"rare_word_rate":           {Low: 0.2, High: 0.8, Weight: 0.03},
	}
}

// defaultSuggestions is evaluated in priority order against normalized
// feature scores; at most MaxSuggestions fire.
func defaultSuggestions() []SuggestionRule {
	return []SuggestionRule{
		{Feature: "contraction_rate", Threshold: 40,
			Message: "Add contractions (it's, don't, you'll) for a more conversational tone."},
		{Feature: "formal_phrase_density", Threshold: 50,
			Message: "Swap formal connectors (Furthermore, Moreover) for plainer transitions."},
		{Feature: "passive_voice_density", Threshold: 50,
			Message: "Reduce passive voice; rewrite with the actor first (e.g. 'We found' not 'It was found')."},
		{Feature: "sentence_length_variance", Threshold: 40,
			Message: "Vary your sentence lengths more; mix short punchy sentences with longer ones."},
		{Feature: "avg_sentence_length", Threshold: 50,
			Message: "Aim for a natural sentence length; break up run-ons and combine fragments."},
		{Feature: "filler_word_rate", Threshold: 50,
			Message: "Cut filler qualifiers like 'basically' and 'essentially'."},
		{Feature: "first_person_rate", Threshold: 40,
			Message: "Consider first-person perspective where appropriate ('I think', 'We noticed')."},
		{Feature: "hedge_word_rate", Threshold: 40,
			Message: "Balance hedging words like 'perhaps' and 'probably'; all or none reads unnatural."},
		{Feature: "lexical_diversity", Threshold: 40,
			Message: "Reuse fewer words; broaden the vocabulary a little."},
	}
}
