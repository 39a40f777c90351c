// Package classifier decides whether a raw prompt is a short product or
// service description worth sending to the model.
package classifier

import (
	"strings"
	"unicode/utf8"
)

// MaxLength is the longest accepted prompt, in characters after trimming.
const MaxLength = 80

type Reason string

const (
	ReasonAccepted Reason = "accepted"
	ReasonEmpty    Reason = "empty"
	ReasonTooLong  Reason = "too_long"
	ReasonDenied   Reason = "denied_fragment"
	ReasonOffTopic Reason = "off_topic"
)

type Result struct {
	Accepted bool
	Reason   Reason
}

// denylist holds fragments typical of code, markup, URLs and queries. It is a
// coarse filter against off-topic input and not a security boundary.
var denylist = []string{
	"import ",
	"def ",
	"<",
	">",
	"{",
	"}",
	"http",
	"www",
	"pip install",
	"npm install",
	"select ",
}

// allowlist holds commerce, marketing and vertical vocabulary for the
// Indonesian market.
var allowlist = []string{
	"jasa",
	"produk",
	"layanan",
	"bisnis",
	"usaha",
	"toko",
	"brand",
	"merek",
	"jual",
	"promosi",
	"pemasaran",
	"marketing",
	"skincare",
	"kosmetik",
	"kuliner",
	"makanan",
	"minuman",
	"fashion",
	"pakaian",
	"properti",
	"rumah",
	"renovasi",
	"website",
	"aplikasi",
	"kursus",
	"pelatihan",
	"wisata",
	"hotel",
	"klinik",
	"catering",
}

// Classify applies the length, denylist and allowlist checks in that order,
// stopping at the first rejection.
func Classify(raw string) Result {
	text := strings.ToLower(strings.TrimSpace(raw))

	if text == "" {
		return Result{Reason: ReasonEmpty}
	}
	if utf8.RuneCountInString(text) > MaxLength {
		return Result{Reason: ReasonTooLong}
	}
	for _, fragment := range denylist {
		if strings.Contains(text, fragment) {
			return Result{Reason: ReasonDenied}
		}
	}
	for _, term := range allowlist {
		if strings.Contains(text, term) {
			return Result{Accepted: true, Reason: ReasonAccepted}
		}
	}
	return Result{Reason: ReasonOffTopic}
}
