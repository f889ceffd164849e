package format

import (
	"bytes"
	"strconv"
	"strings"

	"github.com/loglayer-go/loglayer/core"
)

// TimestampLayout is the envelope timestamp format (day-month-year,
// millisecond precision).
const TimestampLayout = "02-01-06 15:04:05.000"

// CountPlaceholders returns the number of placeholder markers in msg.
// Every '%' byte counts, whether or not it begins a valid specifier: a
// literal percent sign still claims one argument slot. Callers that
// need a literal '%' alongside arguments get whatever falls out.
func CountPlaceholders(msg string) int {
	return strings.Count(msg, "%")
}

// Classify filters and renders the raw argument list. Empty ordered
// collections are dropped entirely; every other value contributes its
// default string rendering, in order.
func Classify(args []core.Value) []string {
	if len(args) == 0 {
		return nil
	}
	valid := make([]string, 0, len(args))
	for _, a := range args {
		if a.IsEmptyList() {
			continue
		}
		valid = append(valid, a.StringValue())
	}
	return valid
}

// isSpecifierByte reports whether c may follow a '%' as its specifier
// character. '%' itself is excluded so that "%%" stays two markers and
// the marker count always matches CountPlaceholders.
func isSpecifierByte(c byte) bool {
	return c == '@' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Substitute replaces marker occurrences in msg with the given
// renderings, in order. Each '%' byte is one substitution point; an
// immediately-following specifier character is consumed with it. When
// the renderings run out, the rest of the template is copied verbatim,
// unfilled markers included.
func Substitute(msg string, values []string) string {
	if len(values) == 0 || !strings.ContainsRune(msg, '%') {
		return msg
	}

	buf := getBuffer()
	defer putBuffer(buf)

	next := 0
	for i := 0; i < len(msg); i++ {
		c := msg[i]
		if c != '%' || next >= len(values) {
			buf.WriteByte(c)
			continue
		}
		buf.WriteString(values[next])
		next++
		if i+1 < len(msg) && isSpecifierByte(msg[i+1]) {
			i++
		}
	}

	return buf.String()
}

// Body classifies args against the template and produces the message
// body: placeholders consume renderings positionally, and whatever is
// left over surfaces in a bracketed Extra Args suffix rather than
// being dropped.
func Body(msg string, args []core.Value) string {
	valid := Classify(args)
	count := CountPlaceholders(msg)

	if len(valid) <= count {
		return Substitute(msg, valid)
	}

	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteString(Substitute(msg, valid[:count]))
	buf.WriteString(" [Extra Args: ")
	for i, v := range valid[count:] {
		if i > 0 {
			buf.WriteString(", ")
		}
		buf.WriteString(v)
	}
	buf.WriteByte(']')
	return buf.String()
}

// Render produces the complete output line for a record:
//
//	[DD-MM-YY HH:MM:SS.mmm] [Thread <id>] <body> | <file> <function> line: <line>
func Render(rec *core.Record) string {
	buf := getBuffer()
	defer putBuffer(buf)

	buf.WriteByte('[')
	buf.Write(rec.Time.AppendFormat(buf.AvailableBuffer(), TimestampLayout))
	buf.WriteString("] [Thread ")
	buf.Write(strconv.AppendUint(buf.AvailableBuffer(), rec.ThreadID, 10))
	buf.WriteString("] ")
	buf.WriteString(Body(rec.Message, rec.Args))
	buf.WriteString(" | ")
	writeSite(buf, rec.Site)

	return buf.String()
}

func writeSite(buf *bytes.Buffer, site core.CallSite) {
	buf.WriteString(site.ShortFile)
	buf.WriteByte(' ')
	buf.WriteString(site.Function)
	buf.WriteString(" line: ")
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(site.Line), 10))
}
