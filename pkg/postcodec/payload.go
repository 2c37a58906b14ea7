package postcodec

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/enescakir/emoji"
	"mvdan.cc/xurls/v2"
)

// PayloadPrefix opens a framed payload.
var PayloadPrefix = string(emoji.MusicalScore)

// Payload framing constants.
const (
	PayloadSuffix = ":||"
	OpenMarker    = "%20"
	CloseMarker   = "%40"
	LinkPrefix    = "https://maskbook.com/?PostData_v1="
)

// ellipsis is appended by social networks that shorten displayed links.
const ellipsis = "…"

// replacement is one step of an ordered substitution. Without all only the
// first occurrence is replaced.
type replacement struct {
	old, new string
	all      bool
}

var (
	encodeSteps = []replacement{
		{old: PayloadPrefix, new: OpenMarker},
		{old: PayloadSuffix, new: CloseMarker},
		{old: "+", new: "-"},
		{old: "=", new: "_"},
		{old: "|", new: ".", all: true},
	}
	decodeSteps = []replacement{
		{old: "-", new: "+"},
		{old: "_", new: "="},
		{old: ".", new: "|", all: true},
	}

	versionPrefix = regexp.MustCompile(`(?i)^PostData_v\d+=`)
	linkPattern   = xurls.Relaxed()
)

// EncodePayload turns text into a link that can be posted as-is.
func EncodePayload(text string) string {
	return LinkPrefix + apply(text, encodeSteps)
}

// DecodePayload recovers the payload from the first payload link in text.
//
// The result is wrapped in PayloadPrefix and PayloadSuffix, matching the
// form originally passed to EncodePayload.
func DecodePayload(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	if !strings.Contains(text, OpenMarker) || !strings.Contains(text, CloseMarker) {
		return "", false
	}

	link, ok := payloadLink(text)
	if !ok {
		return "", false
	}
	payload, ok := linkPayload(link)
	if !ok {
		return "", false
	}

	payload = versionPrefix.ReplaceAllString(payload, "")
	payload = strings.TrimPrefix(payload, OpenMarker)
	payload = strings.TrimSuffix(payload, CloseMarker)
	return PayloadPrefix + apply(payload, decodeSteps) + PayloadSuffix, true
}

// ExtractLinks returns every link-like substring of text in scan order.
func ExtractLinks(text string) []string {
	return linkPattern.FindAllString(text, -1)
}

// payloadLink selects the first link whose text ends with CloseMarker.
func payloadLink(text string) (string, bool) {
	for _, raw := range ExtractLinks(text) {
		raw = strings.TrimSuffix(raw, ellipsis)
		if strings.HasSuffix(raw, CloseMarker) {
			return raw, true
		}
	}
	return "", false
}

// linkPayload returns the raw query of link, or its escaped path when
// there is no query.
func linkPayload(link string) (string, bool) {
	if !strings.Contains(link, "://") {
		link = "https://" + link
	}
	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}

	var payload string
	if u.RawQuery != "" {
		payload = u.RawQuery
	} else {
		payload = strings.TrimPrefix(u.EscapedPath(), "/")
	}
	if payload == "" {
		return "", false
	}
	return payload, true
}

func apply(s string, steps []replacement) string {
	for _, r := range steps {
		if r.all {
			s = strings.ReplaceAll(s, r.old, r.new)
		} else {
			s = strings.Replace(s, r.old, r.new, 1)
		}
	}
	return s
}
