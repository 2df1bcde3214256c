package restmachinery

import "strings"

const upperhex = "0123456789ABCDEF"

// PathSegment percent-encodes every byte of s that falls outside the RFC
// 3986 unreserved set (ALPHA / DIGIT / "-" / "." / "_" / "~"). This is
// stricter than url.PathEscape, which passes sub-delims through unescaped:
// broker entity names routinely contain spaces, slashes, and percent signs,
// none of which may appear literally in a request path.
func PathSegment(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' ||
			'a' <= c && c <= 'z' ||
			'0' <= c && c <= '9' ||
			c == '-' || c == '.' || c == '_' || c == '~' {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

// JoinPath encodes each segment with PathSegment and joins them with "/".
// Every dynamic path component (vhost, queue, exchange, user, properties
// key, ...) goes through here; query values never do.
func JoinPath(segments ...string) string {
	encoded := make([]string, len(segments))
	for i, segment := range segments {
		encoded[i] = PathSegment(segment)
	}
	return strings.Join(encoded, "/")
}
