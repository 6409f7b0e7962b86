package seeder

import (
	"strconv"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/brianvoe/gofakeit/v7/source"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Faker is a seedable fake-data source. The same seed yields the same
// dataset for the same clock.
type Faker struct {
	*gofakeit.Faker
}

// NewFaker returns a Faker. A zero seed draws a random one.
func NewFaker(seed uint64) *Faker {
	return &Faker{Faker: gofakeit.New(seed)}
}

// RandomSeed draws a non-zero seed from crypto randomness.
func RandomSeed() uint64 {
	f := gofakeit.NewFaker(source.NewCrypto(), false)
	for {
		if seed := f.Uint64(); seed != 0 {
			return seed
		}
	}
}

// Between returns a millisecond-aligned UTC time in [a, b]. When b is
// before a it returns a.
func (f *Faker) Between(a, b time.Time) time.Time {
	a = a.UTC().Truncate(time.Millisecond)
	b = b.UTC().Truncate(time.Millisecond)
	if !b.After(a) {
		return a
	}
	span := b.Sub(a).Milliseconds()
	return a.Add(time.Duration(f.IntRange(0, int(span))) * time.Millisecond)
}

// Chance returns true with probability p.
func (f *Faker) Chance(p float64) bool {
	return f.Float64() < p
}

// Code returns n random upper-case alphanumeric characters.
func (f *Faker) Code(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(codeAlphabet[f.IntRange(0, len(codeAlphabet)-1)])
	}
	return b.String()
}

// Paragraphs returns n lorem paragraphs separated by blank lines.
func (f *Faker) Paragraphs(n int) string {
	return f.LoremIpsumParagraph(n, f.IntRange(3, 6), f.IntRange(8, 14), "\n\n")
}

// Pick returns a random element of items, which must not be empty.
func Pick[T any](f *Faker, items []T) T {
	return items[f.IntRange(0, len(items)-1)]
}

// PickN returns n distinct elements of items in random order. n is capped
// at len(items).
func PickN[T any](f *Faker, items []T, n int) []T {
	if n > len(items) {
		n = len(items)
	}
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	for i := len(idx) - 1; i > 0; i-- {
		j := f.IntRange(0, i)
		idx[i], idx[j] = idx[j], idx[i]
	}
	picked := make([]T, n)
	for i := 0; i < n; i++ {
		picked[i] = items[idx[i]]
	}
	return picked
}

// emails hands out fake addresses, never the same one twice.
type emails struct {
	f    *Faker
	seen map[string]struct{}
}

func newEmails(f *Faker) *emails {
	return &emails{f: f, seen: make(map[string]struct{})}
}

// For returns an address derived from name.
func (e *emails) For(name string) string {
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))
	local = strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, local)
	if local == "" {
		local = strings.ToLower(e.f.Username())
	}

	domain := e.f.DomainName()
	addr := local + "@" + domain
	for n := 2; ; n++ {
		if _, dup := e.seen[addr]; !dup {
			break
		}
		addr = local + strconv.Itoa(n) + "@" + domain
	}
	e.seen[addr] = struct{}{}
	return addr
}
