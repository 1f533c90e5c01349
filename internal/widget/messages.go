package widget

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/text/language"
)

// Language is the binary language choice a widget renders in: the app's
// first supported language, or the fallback used for everything else.
type Language int

const (
	LanguagePrimary Language = iota
	LanguageFallback
)

func (l Language) String() string {
	if l == LanguagePrimary {
		return "primary"
	}
	return "fallback"
}

// Tier selects one of the three message pools.
type Tier int

const (
	TierBefore Tier = iota
	TierBeforeStreak
	TierAfter
)

func (t Tier) String() string {
	switch t {
	case TierBeforeStreak:
		return "before_streak"
	case TierAfter:
		return "after"
	default:
		return "before"
	}
}

// TierFor picks the pool for a snapshot. Once today's line is written the
// streak no longer matters; a streak of one day is not worth celebrating yet.
func TierFor(hasWritten bool, streak int) Tier {
	switch {
	case hasWritten:
		return TierAfter
	case streak > 1:
		return TierBeforeStreak
	default:
		return TierBefore
	}
}

// Catalog holds the message templates of one language. BeforeStreak templates
// carry exactly one %d verb for the streak.
type Catalog struct {
	Tag          language.Tag
	Before       []string
	BeforeStreak []string
	After        []string
}

// Pool returns the templates for a tier.
func (c Catalog) Pool(t Tier) []string {
	switch t {
	case TierBeforeStreak:
		return c.BeforeStreak
	case TierAfter:
		return c.After
	default:
		return c.Before
	}
}

func (c Catalog) clone() Catalog {
	return Catalog{
		Tag:          c.Tag,
		Before:       append([]string(nil), c.Before...),
		BeforeStreak: append([]string(nil), c.BeforeStreak...),
		After:        append([]string(nil), c.After...),
	}
}

var korean = Catalog{
	Tag: language.Korean,
	Before: []string{
		"오늘의 한 줄을 남겨보세요 ✍️",
		"오늘 하루는 어땠나요?",
		"한 줄이면 충분해요",
		"오늘을 기록해볼까요?",
		"30초면 충분해요",
	},
	BeforeStreak: []string{
		"🔥 %d일째 연속 기록 중!",
		"대단해요! %d일 연속 기록 중 ✨",
		"%d일째, 오늘도 이어가세요!",
		"연속 %d일! 계속 가보자고 🔥",
		"%d일 연속 기록, 멈추지 마세요!",
	},
	After: []string{
		"오늘도 수고했어요 ✨",
		"내일 또 만나요!",
		"잘했어요! 내일 봐요 👋",
		"오늘의 기록 완료!",
		"내일도 한 줄 남겨주세요 💫",
		"좋아요! 내일 또 기록해요",
		"오늘 하루도 고생했어요 🌙",
		"기록 완료! 푹 쉬세요 😴",
	},
}

var english = Catalog{
	Tag: language.English,
	Before: []string{
		"Leave a line about today ✍️",
		"How was your day?",
		"One line is enough",
		"Ready to record today?",
		"Just 30 seconds",
	},
	BeforeStreak: []string{
		"🔥 %d day streak!",
		"Amazing! %d days in a row ✨",
		"Day %d, keep it going!",
		"%d day streak! Let's go 🔥",
		"%d days straight, don't stop!",
	},
	After: []string{
		"Great job today ✨",
		"See you tomorrow!",
		"Well done! See you 👋",
		"Today's record complete!",
		"Leave a line tomorrow too 💫",
		"Nice! Record again tomorrow",
		"You did well today 🌙",
		"Done! Rest well 😴",
	},
}

// Korean returns a copy of the built-in Korean catalog.
func Korean() Catalog { return korean.clone() }

// English returns a copy of the built-in English catalog.
func English() Catalog { return english.clone() }

// Catalogs pairs the primary language with its fallback.
type Catalogs struct {
	Primary  Catalog
	Fallback Catalog
}

// DefaultCatalogs is Korean first, English for everyone else.
func DefaultCatalogs() Catalogs {
	return Catalogs{Primary: Korean(), Fallback: English()}
}

// For returns the catalog used for lang.
func (c Catalogs) For(lang Language) Catalog {
	if lang == LanguagePrimary {
		return c.Primary
	}
	return c.Fallback
}

func builtin(lang Language) Catalog {
	if lang == LanguagePrimary {
		return korean
	}
	return english
}

// builtinFor returns the built-in catalog written in c's language. A catalog
// retagged to a language without built-in text gets the built-in of its slot.
func builtinFor(c Catalog, lang Language) Catalog {
	if c.Tag != language.Und {
		want, _ := c.Tag.Base()
		for _, b := range []Catalog{korean, english} {
			if base, _ := b.Tag.Base(); base == want {
				return b
			}
		}
	}
	return builtin(lang)
}

// Picker chooses an index in [0, n). Production code draws uniformly; tests
// feed fixed sequences.
type Picker interface {
	PickIndex(n int) int
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(n int) int

func (f PickerFunc) PickIndex(n int) int { return f(n) }

// UniformPicker draws from math/rand/v2 on every call.
func UniformPicker() Picker {
	return PickerFunc(func(n int) int {
		if n <= 0 {
			return 0
		}
		return rand.IntN(n)
	})
}

// Engine renders widget views. It holds only read-only tables and is safe to
// share between any number of widget instances.
type Engine struct {
	catalogs Catalogs
	picker   Picker
}

// Option configures an Engine.
type Option func(*Engine)

// WithCatalogs replaces the built-in message tables.
func WithCatalogs(c Catalogs) Option {
	return func(e *Engine) { e.catalogs = c }
}

// WithPicker replaces the uniform random picker.
func WithPicker(p Picker) Option {
	return func(e *Engine) {
		if p != nil {
			e.picker = p
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{catalogs: DefaultCatalogs(), picker: UniformPicker()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// PrimaryTag is the language that ResolveLanguage maps to LanguagePrimary.
func (e *Engine) PrimaryTag() language.Tag {
	if e.catalogs.Primary.Tag == language.Und {
		return korean.Tag
	}
	return e.catalogs.Primary.Tag
}

// Resolve maps a raw locale tag to the engine's binary language choice.
func (e *Engine) Resolve(rawTag string) Language {
	return ResolveLanguage(rawTag, e.PrimaryTag())
}

// SelectMessage picks one template at random from the pool matching the
// snapshot and fills in the streak where the template asks for it. An empty
// pool falls back to the first built-in template of the same tier, in the
// catalog's language when one is built in, so a widget never shows a blank
// line.
func (e *Engine) SelectMessage(hasWritten bool, streak int, lang Language) string {
	tier := TierFor(hasWritten, streak)
	cat := e.catalogs.For(lang)
	pool := cat.Pool(tier)

	var tmpl string
	if len(pool) == 0 {
		tmpl = builtinFor(cat, lang).Pool(tier)[0]
	} else {
		tmpl = pool[e.pick(len(pool))]
	}

	if tier == TierBeforeStreak {
		return fmt.Sprintf(tmpl, streak)
	}
	return tmpl
}

func (e *Engine) pick(n int) int {
	i := e.picker.PickIndex(n)
	if i < 0 || i >= n {
		i = ((i % n) + n) % n
	}
	return i
}
