// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package bot

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"
	"time"
)

// Banner is the ASCII art shown on the welcome screen.
const Banner = `_________        ___.                 _________                         .__  __
\_   ___ \___.__.\_ |__   ___________/   _____/ ____   ___________ __ __|__|/  |_ ___.__.
/    \  \<   |  | | __ \_/ __ \_  __ \_____  \_/ __ \_/ ___\_  __ \  |  \  \   __<   |  |
\     \___\___  | | \_\ \  ___/|  | \/        \  ___/\  \___|  | \/  |  /  ||  |  \___  |
 \______  / ____| |___  /\___  >__| /_______  /\___  >\___  >__|  |____/|__||__|  / ____|
        \/\/          \/     \/             \/     \/     \/                      \/`

// PhishingTips is the fixed set the phishing topic picks from.
var PhishingTips = []string{
	"Be cautious of emails asking for personal information. Scammers often disguise themselves as trusted organisations.",
	"Never click suspicious links, especially from unknown senders.",
	"Check the email sender’s address carefully — small spelling differences can indicate fraud.",
	"Hover over links before clicking to see where they really lead.",
	"Report phishing attempts to phishing@sabric.co.za.",
}

// =============================================================================
// LIBRARY
// =============================================================================

// Library holds every canned response the bot can give. Only the phishing
// topic varies between calls; it draws from PhishingTips with replacement.
type Library struct {
	mu   sync.Mutex
	rng  *rand.Rand
	tips []string
}

// NewLibrary creates a library that draws phishing tips from rng.
// A nil rng is replaced by one seeded from the clock.
func NewLibrary(rng *rand.Rand) *Library {
	if rng == nil {
		now := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(now, now>>1|1))
	}
	tips := make([]string, len(PhishingTips))
	copy(tips, PhishingTips)
	return &Library{rng: rng, tips: tips}
}

// NewSeededRand returns a deterministic random source for tests and --seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// =============================================================================
// SESSION TEXT
// =============================================================================

// Welcome returns the banner and greeting shown before the name prompt.
func (l *Library) Welcome(withBanner bool) []Line {
	lines := make([]Line, 0, 12)
	if withBanner {
		lines = append(lines, Line{Tone: ToneHeader})
		for _, row := range strings.Split(Banner, "\n") {
			lines = append(lines, Line{Text: row, Tone: ToneHeader})
		}
	}
	return append(lines,
		Blank(),
		Plain("Welcome to the South African Cybersecurity Awareness Assistant!"),
		Plain("I'm here to help you stay safe online."),
		Blank(),
	)
}

// NamePrompt is asked until a non-blank name is given.
func (l *Library) NamePrompt() string {
	return "Before we begin, what should I call you? "
}

// InvalidName is shown after a blank name.
func (l *Library) InvalidName() []Line {
	return []Line{Plain("Please enter a valid name.")}
}

// NameAccepted greets the user once the name is known.
func (l *Library) NameAccepted(name string) []Line {
	return []Line{
		Blank(),
		Plain(fmt.Sprintf("Hello, %s! Let's learn about cybersecurity.", name)),
		Blank(),
	}
}

// InputPrompt is shown before every input line.
func (l *Library) InputPrompt(name string) string {
	return fmt.Sprintf("%s, what would you like to know about? (type 'help' for options) ", name)
}

// Farewell is shown after the loop ends.
func (l *Library) Farewell(name string) []Line {
	return []Line{
		{Tone: ToneHeader},
		{Text: fmt.Sprintf("Thank you, %s, for learning about cybersecurity!", name), Tone: ToneHeader},
		{Text: "Remember to stay vigilant online in South Africa.", Tone: ToneHeader},
		{Text: "Report cybercrime to https://www.cert.gov.za", Tone: ToneHeader},
		{Tone: ToneHeader},
	}
}

// =============================================================================
// CONVERSATION TEXT
// =============================================================================

// Help lists what the bot can talk about.
func (l *Library) Help() []Line {
	return []Line{
		Speech("🔍 I can help with these topics:"),
		Plain("- 'Password safety' - Creating secure credentials"),
		Plain("- 'Phishing tips' - Spotting scam attempts"),
		Plain("- 'Privacy' - Protecting your data"),
		Plain("- 'Browsing safety' - Secure internet use"),
		Plain("- 'Social media' - Avoiding oversharing"),
		Plain("- Say 'I'm interested in privacy' to save your preferences"),
		Plain("- Type 'exit' to leave the chat"),
		Blank(),
	}
}

// Fallback is the answer when nothing matched.
func (l *Library) Fallback() []Line {
	return []Line{
		Speech("I'm not sure I understand. Can you try rephrasing?"),
		Plain("- Type 'help' to see available topics"),
		Plain("- Ask about 'passwords', 'phishing', 'privacy', or 'social media'"),
		Blank(),
	}
}

// Greeting answers hello/hi.
func (l *Library) Greeting(name string) []Line {
	return []Line{Speech(fmt.Sprintf("Hi %s! How can I assist you today?", name))}
}

// InterestNoted acknowledges a remembered interest.
func (l *Library) InterestNoted(interest string) []Line {
	return []Line{Speech(fmt.Sprintf(
		"Great! I'll remember that you're interested in %s. It's a crucial part of cybersecurity.", interest))}
}

// InterestRecalled reminds the user of their interest.
func (l *Library) InterestRecalled(interest string) []Line {
	return []Line{Speech(fmt.Sprintf(
		"Earlier you mentioned you're interested in %s. Let's dive into that!", interest))}
}

// =============================================================================
// TOPICS
// =============================================================================

// Topic returns the tip block for a topic. Unknown topics get the fallback.
func (l *Library) Topic(topic Topic) []Line {
	switch topic {
	case TopicPasswords:
		return tipBlock("💻 Important Password Safety Tips:",
			"Use at least 12 characters with a mix of letters, numbers, and symbols",
			"Never reuse passwords across different sites",
			"Consider a password manager like Bitwarden or LastPass",
			"Enable two-factor authentication (2FA)",
			"Change passwords after any data breach",
			"Use https://haveibeenpwned.com to check breaches",
		)
	case TopicPhishing:
		return l.phishing()
	case TopicPrivacy:
		return tipBlock("🔒 Privacy Protection Tips:",
			"Review app permissions regularly",
			"Limit what you share on public platforms",
			"Enable encryption on your devices",
			"Use privacy-focused tools like DuckDuckGo or ProtonMail",
		)
	case TopicBrowsing:
		return tipBlock("🌐 Safe Browsing Practices:",
			"Always check for 🔒 and 'https://' before entering sensitive info",
			"Use updated browsers with security features",
			"Install reputable antivirus software",
			"Be cautious with public WiFi - use a VPN",
			"Test internet safety using MyBroadband",
		)
	case TopicSocialMedia:
		return tipBlock("📱 Social Media Security Tips:",
			"Review privacy settings regularly",
			"Be wary of 'too good to be true' offers",
			"Don't overshare personal information",
			"Watch for fake profiles - SA romance scams are common",
		)
	default:
		return l.Fallback()
	}
}

// PhishingTip picks one tip uniformly at random.
func (l *Library) PhishingTip() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tips[l.rng.IntN(len(l.tips))]
}

func (l *Library) phishing() []Line {
	return []Line{
		Speech("⚠️ Phishing Tip:"),
		{Text: "• " + l.PhishingTip(), Tone: ToneWarning},
		Blank(),
	}
}

// tipBlock builds a spoken header followed by tip bullets and a blank line.
func tipBlock(header string, tips ...string) []Line {
	lines := make([]Line, 0, len(tips)+2)
	lines = append(lines, Speech(header))
	for _, tip := range tips {
		lines = append(lines, Line{Text: "• " + tip, Tone: ToneTip})
	}
	return append(lines, Blank())
}
