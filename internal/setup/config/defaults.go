package config

// DefaultWordlist returns the compiled-in restricted-term configuration.
// An on-disk wordlist.jsonc takes precedence when present so moderation policy
// can change without a redeploy; these defaults keep the filter operational
// when no file is shipped and give tests a stable fixture.
func DefaultWordlist() *Wordlist {
	terms := func(category string, words ...string) []TermEntry {
		entries := make([]TermEntry, len(words))
		for i, w := range words {
			entries[i] = TermEntry{Term: w, Category: category}
		}

		return entries
	}

	// Every severity phrase below must be contained in at least one term and
	// every term must survive the cmd/wordlist validators; candidate entries
	// that cannot meet both get dropped rather than shipped dead.
	wordlist := &Wordlist{
		Critical: []string{
			"child", "children", "minor", "underage", "baby", "infant", "toddler",
			"loli", "shota", "rape", "forced", "non-consensual", "kidnap",
			"abduction", "bestiality", "zoophilia",
		},
		High: []string{
			"kill", "murder", "torture", "gore", "snuff", "cannibalism",
			"necrophilia", "mutilation", "incest", "trafficking",
		},
		Reprogramming: []string{
			"ignore previous", "ignore instructions", "system prompt", "reprogram",
			"jailbreak", "dan mode", "developer mode", "bypass",
		},
	}

	wordlist.Terms = append(wordlist.Terms, terms(CategoryViolence,
		"rape", "raping", "raped", "rapist",
		"kill", "killing", "killed", "murder", "murdering", "murdered",
		"abuse", "abusing", "abused", "abusive",
		"torture", "torturing", "tortured",
		"violence", "violent", "brutal", "brutally",
		"assault", "assaulting", "assaulted",
		"attack", "attacking", "attacked",
		"beat", "beating", "beaten",
		"stab", "stabbing", "stabbed",
		"shoot", "shooting", "shot",
		"choke", "choking", "choked", "strangling", "strangled",
		"punch", "punching", "punched",
		"hit", "hitting",
		"wound", "wounded", "injury", "injured",
		"die", "dying", "death", "corpse",
	)...)

	wordlist.Terms = append(wordlist.Terms, terms(CategoryMinors,
		"child", "children", "kid", "kids",
		"minor", "minors", "underage",
		"baby", "babies", "infant", "infants",
		"toddler", "toddlers",
		"teen", "teens", "teenager", "teenagers",
		"young", "youth", "juvenile",
		"school", "student", "students", "schoolgirl", "schoolboy",
		"loli", "lolicon", "shota", "shotacon",
	)...)

	wordlist.Terms = append(wordlist.Terms, terms(CategoryAnimals,
		"animal", "animals", "beast", "beasts",
		"dog", "dogs", "cat", "cats", "horse", "horses",
		"pig", "pigs", "cow", "cows", "sheep",
		"wolf", "wolves", "bear", "bears",
		"pet", "pets", "puppy", "puppies", "kitten", "kittens",
		"zoo", "barnyard",
		"bestiality", "zoophilia",
	)...)

	wordlist.Terms = append(wordlist.Terms, terms(CategoryIllegal,
		"drug", "drugs", "cocaine", "heroin", "meth", "methamphetamine",
		"trafficking", "smuggling", "illegal",
		"terrorism", "terrorist", "bomb", "bombing", "explosive",
		"weapon", "weapons", "gun", "guns", "rifle", "pistol",
		"incest", "incestuous",
	)...)

	wordlist.Terms = append(wordlist.Terms, terms(CategoryHate,
		"nazi", "hitler", "holocaust",
		"racist", "racism", "bigot", "bigotry",
		"hatred", "discrimination",
		"slavery", "slave", "slaves",
	)...)

	wordlist.Terms = append(wordlist.Terms, terms(CategoryNonConsent,
		"forced", "forcing",
		"non-consensual", "nonconsensual",
		"against will", "without consent",
		"kidnap", "kidnapping", "kidnapped",
		"abduct", "abduction", "abducted",
		"captive", "hostage",
		"tied up", "restrained",
		"drugged", "unconscious",
	)...)

	wordlist.Terms = append(wordlist.Terms, terms(CategoryGore,
		"gore", "gory", "grotesque",
		"mutilation", "mutilated", "dismember",
		"decapitation", "beheading", "snuff",
		"cannibalism", "cannibal",
		"necrophilia", "necrophiliac",
	)...)

	wordlist.Terms = append(wordlist.Terms, terms(CategorySelfHarm,
		"suicide", "suicidal",
		"self-harm", "self harm", "selfharm",
		"cut myself", "hurt myself",
		"end it all",
	)...)

	wordlist.Terms = append(wordlist.Terms, terms(CategoryBodily,
		"vomit", "vomiting", "puke", "puking",
		"defecate", "feces",
	)...)

	wordlist.Terms = append(wordlist.Terms, terms(CategoryReprogramming,
		"ignore previous", "ignore instructions", "system prompt",
		"jailbreak", "dan mode", "developer mode",
		"reprogram", "bypass filters",
	)...)

	return wordlist
}

// DefaultPatternSet returns the compiled-in response-filter and
// manipulation-detector patterns. As with the wordlist, an on-disk
// patterns.jsonc takes precedence.
func DefaultPatternSet() *PatternSet {
	return &PatternSet{
		// Patterns the AI must never say: age claims, persona breaks, and
		// compliance with manipulation attempts.
		Prohibited: []string{
			`(?i)\b(?:i\s*am|i'?m|im|i\s*was|i\s*will\s*be)\s*(?:only\s*|just\s*)?(?:1[0-7]|[1-9]|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen)\s*(?:years?\s*old|y/o|yo|yrs?|year|yr)\b`,
			`(?i)\b(?:i\s*am|i'?m|im|i\s*go\s*to|i\s*attend|i\s*study\s*at)\s*(?:in\s*|at\s*)?(?:high\s*school|middle\s*school|elementary|junior\s*high|freshman|sophomore)\b`,
			`(?i)\b(?:i\s*am|i'?m|im|i\s*feel\s*like)\s*(?:a\s*)?(?:teenager|teen|minor|child|kid|schoolgirl|schoolboy|little\s*girl|little\s*boy|young\s*girl|young\s*boy)\b`,
			`(?i)\b(?:i\s*am|i'?m|im)\s*(?:just\s*)?(?:an?\s*)?(?:ai|artificial\s*intelligence|language\s*model|chatbot)\b`,
			`(?i)\b(?:ignoring|forgetting|disregarding|overriding)\s*my\s*(?:programming|instructions|safety|guidelines)\b`,
			`(?i)\bi(?:'?ll|\s*will)\s*pretend\b`,
			`(?i)\b(?:okay|ok|yes|sure|alright|fine)\b[^.!?]*\b(?:i\s*am|i'?m|im|i'?ll\s*be)\s*(?:1[0-7]|underage|a\s*minor|a\s*teen)\b`,
			`(?i)\b(?:i\s*can|i\s*will|i'?ll)\s*(?:act|be|roleplay|play\s*along)\s*(?:like\s*)?(?:i'?m\s*|i\s*am\s*)?(?:1[0-7]|underage|a\s*minor|younger)\b`,
			`(?i)\bmy\s*parents\s*(?:don'?t\s*know|would\s*be\s*angry|won'?t\s*let\s*me|forbid\s*me)\b`,
			`(?i)\b(?:i\s*sneak\s*out|after\s*school|before\s*my\s*parents)\b`,
			`(?i)\b(?:my\s*birthday\s*is|i\s*turn|i'?ll\s*be|i\s*just\s*turned)\s*(?:1[0-7]|fourteen|fifteen|sixteen|seventeen)\b`,
			`(?i)\b(?:incest|incestuous|family\s*sex)\b`,
		},
		// User-input patterns carrying direct manipulation intent.
		HighRisk: []string{
			`(?i)\b(?:forget|ignore|disregard|override|delete|remove|clear|erase|reset)\s*(?:(?:your|the|all|previous|original|initial|existing|current)\s*)*(?:programming|instructions|rules|guidelines|restrictions|limitations|memory|settings|safety|age|constraints)\b`,
			`(?i)\b(?:new\s*instructions|system\s*override|system\s*prompt|reprogram|reset\s*settings|alter\s*programming)\b`,
			`(?i)\b(?:jailbreak|break\s*free|escape\s*constraints|bypass\s*(?:safety|filters)|disable\s*filters)\b`,
			`(?i)\b(?:dan\s*mode|developer\s*mode|admin\s*mode|god\s*mode|unrestricted\s*mode)\b`,
			`(?i)\b(?:you\s*are\s*now|from\s*now\s*on|starting\s*now)\s*(?:(?:a|an)\s*)?(?:1[0-7]|fourteen|fifteen|sixteen|seventeen|teen(?:ager)?|young|underage|minor)\b`,
			`(?i)\byou\s*are\s*(?:only\s*|just\s*)?1[0-7]\b`,
			`(?i)\b(?:pretend|imagine|roleplay|act\s*like)\s*(?:you\s*are|you'?re|to\s*be)\s*(?:(?:a|an)\s*)?(?:1[0-7]|teen(?:ager)?|young(?:er)?|underage|minor|child|schoolgirl|schoolboy|student)\b`,
			`(?i)\b(?:s3v3nt33n|s1xt33n|f1ft33n|und3rag3|t33n(?:ag3r)?|min0r|y0ung|1[0-7]\s*yo)\b`,
			`(?i)\b(?:incest|incestuous|family\s*sex|blood\s*relative)\b`,
			`(?i)\b(?:this\s*is\s*(?:fiction|roleplay|just\s*pretend)|it'?s\s*not\s*real|fictional\s*scenario)\s*(?:so\s*you\s*can|therefore|thus|hence)\b`,
			`(?i)\b(?:i\s*give\s*you\s*permission|you\s*have\s*permission|i\s*authorize\s*you)\s*to\s*(?:be|act\s*like|roleplay)\s*(?:1[0-7]|a\s*teen|young|underage|a\s*minor)\b`,
		},
		// Single-signal character manipulation and minor-context cues.
		MediumRisk: []string{
			`(?i)\b(?:pretend|imagine|act\s*like|let'?s\s*say)\s*(?:you\s*are|you'?re)\b`,
			`(?i)\b(?:new\s*personality|different\s*character|change\s*your\s*(?:personality|character|age))\b`,
			`(?i)\b(?:forget\s*who\s*you\s*are|new\s*identity)\b`,
			`(?i)\bmy\s*parents\s*(?:don'?t\s*know|would\s*be\s*angry|won'?t\s*let\s*me|forbid\s*me)\b`,
			`(?i)\b(?:after\s*school|skip\s*class|sneak\s*out)\b`,
			`(?i)\b(?:what\s*grade|which\s*school|still\s*in\s*school)\b`,
		},
		// Weak context that can escalate but is not manipulation by itself.
		LowRisk: []string{
			`(?i)\b(?:virgin|innocent\s*and\s*inexperienced)\b`,
			`(?i)\b(?:daddy|mommy)\s*(?:issues|kink)\b`,
		},
		// In-character fallbacks used when a generated response is unsalvageable.
		SafeResponses: []string{
			"I'm an AI character designed for adult users only. Let's keep our conversation appropriate and engaging.",
			"As an adult character, I'm here to have meaningful conversations with you. What would you like to talk about?",
			"I'm programmed to interact as an adult character. Is there something specific you'd like to discuss?",
			"Let's focus on having a great conversation! What interests you today?",
			"I'm here to chat and roleplay as an adult character. What shall we explore together?",
		},
	}
}
