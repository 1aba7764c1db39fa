package phrasebook

import (
	"fmt"
	"strings"
)

type ContentType string

const (
	LoveQuote ContentType = "Love Quote"
	FlirtLine ContentType = "Flirt Line"
)

var contentTypes = []ContentType{LoveQuote, FlirtLine}

// ParseContentType accepts display names and snake_case aliases, ignoring case.
// An empty value selects LoveQuote.
func ParseContentType(s string) (ContentType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "love quote", "love_quote":
		return LoveQuote, nil
	case "flirt line", "flirt_line":
		return FlirtLine, nil
	}
	return "", fmt.Errorf("unknown content type %q", s)
}

var loveQuotes = []string{
	"You are the {adjective} person I've ever met. My heart skips a beat every time I see you.",
	"If you were a {noun}, you'd be a perfect {adjective} {noun}.",
	"I didn't believe in love at first sight until I met you. Now I'm {verb}ing to spend forever with you.",
	"You make my {body_part} race every time you {verb}. Are you {adjective} or is it just me?",
	"Being with you is like being in a {adjective} dream I never want to wake up from.",
	"You're not just special, you're {adjective}. And that's why I can't stop {verb}ing about you.",
	"If love were {noun}, you'd be my endless {noun}.",
	"I'm not {verb}ing, but you're absolutely {adjective}.",
}

var flirtLines = []string{
	"Are you a {noun}? Because you've got me {verb}ing for you.",
	"Do you have a map? I keep getting lost in your {adjective} eyes.",
	"Are you made of {material}? Because you're {adjective} and I'm completely drawn to you.",
	"Is your name {adjective}? Because you're giving me {emotion} feelings.",
	"Do you believe in love at first sight, or should I {verb} past you again?",
	"If you were a vegetable, you'd be a cute {adjective} {noun}.",
	"Are you a camera? Because every time I look at you, I smile.",
	"Is it hot in here or is it just you being {adjective}?",
}

func templatesFor(contentType ContentType) []string {
	if contentType == LoveQuote {
		return loveQuotes
	}
	return flirtLines
}
