package services

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatContentForPlatform_Instagram(t *testing.T) {
	out := FormatContentForPlatform("Short Houston update", "instagram")
	if !strings.Contains(out, "#HoustonRealEstate") {
		t.Errorf("Expected hashtag block appended, got %q", out)
	}

	long := strings.Repeat("a", 2500)
	out = FormatContentForPlatform(long, "instagram")
	if !strings.HasSuffix(out, "...") {
		t.Errorf("Expected truncated output to end with ellipsis")
	}
	if utf8.RuneCountInString(out) != 2103 {
		t.Errorf("Expected 2100 runes plus ellipsis, got %d", utf8.RuneCountInString(out))
	}
}

func TestFormatContentForPlatform_Twitter(t *testing.T) {
	short := "Houston market is hot"
	if got := FormatContentForPlatform(short, "twitter"); got != short {
		t.Errorf("Short content should pass through, got %q", got)
	}

	long := strings.Repeat("b", 400)
	out := FormatContentForPlatform(long, "twitter")
	if !strings.HasSuffix(out, "... 🧵") {
		t.Errorf("Expected thread suffix, got %q", out)
	}
	if utf8.RuneCountInString(out) > 280 {
		t.Errorf("Truncated tweet exceeds 280 runes: %d", utf8.RuneCountInString(out))
	}
}

// Formatting already-formatted twitter output must not truncate again.
func TestFormatContentForPlatform_TwitterIdempotent(t *testing.T) {
	long := strings.Repeat("c", 400)
	once := FormatContentForPlatform(long, "twitter")
	twice := FormatContentForPlatform(once, "twitter")
	if once != twice {
		t.Errorf("Formatting is not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}

func TestFormatContentForPlatform_LinkedIn(t *testing.T) {
	out := FormatContentForPlatform("First point. Second point! Third?", "linkedin")
	if !strings.Contains(out, "First point.\n\nSecond point!\n\nThird?") {
		t.Errorf("Expected paragraph breaks after sentences, got %q", out)
	}
	if !strings.Contains(out, "Houston Land Guys") {
		t.Errorf("Expected sign-off appended, got %q", out)
	}
}

func TestFormatContentForPlatform_Facebook(t *testing.T) {
	out := FormatContentForPlatform("Great investment news", "facebook")
	if !strings.HasPrefix(out, "🏠 ") {
		t.Errorf("Expected house emoji prefix, got %q", out)
	}

	withEmoji := "📈 Market is climbing"
	if got := FormatContentForPlatform(withEmoji, "facebook"); got != withEmoji {
		t.Errorf("Content with emoji should pass through, got %q", got)
	}
}

func TestFormatContentForPlatform_Unknown(t *testing.T) {
	in := "Plain content"
	if got := FormatContentForPlatform(in, "tiktok"); got != in {
		t.Errorf("Unknown platform should pass through, got %q", got)
	}
}
