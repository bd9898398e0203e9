// Package timeval implements the DER UTCTime and GeneralizedTime codecs
// (spec.md §4.5), plus the ChoiceOfTime encoder that picks between them
// based on year.
//
// The source formatters this package is modeled on transpose day and
// month; per spec.md §9 design note 1, this package normalizes to ISO
// (YYYY MM DD) order on both encode and decode instead of replicating
// that transposition.
package timeval

import (
	"strconv"

	"github.com/dercert/derx509/dertag"
	"github.com/dercert/derx509/dertlv"
	"github.com/dercert/derx509/errs"
	"github.com/dercert/derx509/types"
)

// EncodeUTCTime formats ts as a DER UTCTime: "YYMMDDHHMMSSZ", where YY is
// the year modulo 100. Rejects years outside [1950, 2050].
func EncodeUTCTime(ts types.Timestamp, out []byte) (int, error) {
	if ts.Year < 1950 || ts.Year > 2050 {
		return 0, errs.At(errs.ErrBadEncode, 0)
	}

	yy := ts.Year % 100
	content := []byte(
		pad2(yy) + pad2(ts.Month) + pad2(ts.Day) +
			pad2(ts.Hour) + pad2(ts.Minute) + pad2(ts.Second) + "Z",
	)

	return dertlv.Encode(dertag.UTCTime, content, out)
}

// EncodeGeneralizedTime formats ts as a DER GeneralizedTime:
// "YYYYMMDDHHMMSSZ", with the full four-digit year.
func EncodeGeneralizedTime(ts types.Timestamp, out []byte) (int, error) {
	content := []byte(
		pad4(ts.Year) + pad2(ts.Month) + pad2(ts.Day) +
			pad2(ts.Hour) + pad2(ts.Minute) + pad2(ts.Second) + "Z",
	)

	return dertlv.Encode(dertag.GeneralizedTime, content, out)
}

// EncodeChoiceOfTime picks UTCTime for years in [1950, 2050], and
// GeneralizedTime otherwise.
func EncodeChoiceOfTime(ts types.Timestamp, out []byte) (int, error) {
	if ts.Year >= 1950 && ts.Year <= 2050 {
		return EncodeUTCTime(ts, out)
	}

	return EncodeGeneralizedTime(ts, out)
}

// DecodeUTCTime parses a DER UTCTime into a Timestamp.
//
// Strict positional parse: two-digit year (>=50 -> 1900+year, else
// 2000+year), month, day, hour, minute; seconds are optional (1 or 2
// digits); then an optional timezone, "Z" or "+HHMM"/"+HH" /
// "-HHMM"/"-HH". Content shorter than 10 bytes fails errs.ErrCorrupt.
func DecodeUTCTime(data []byte) (types.Timestamp, int, error) {
	content, consumed, err := dertlv.Decode(dertag.UTCTime, data)
	if err != nil {
		return types.Timestamp{}, 0, err
	}
	if len(content) < 10 {
		return types.Timestamp{}, 0, errs.At(errs.ErrCorrupt, 0)
	}

	s := string(content)
	p := &cursor{s: s}

	year2 := p.digits(2)
	month := p.digits(2)
	day := p.digits(2)
	hour := p.digits(2)
	minute := p.digits(2)
	if p.err != nil {
		return types.Timestamp{}, 0, errs.At(errs.ErrCorrupt, 0)
	}

	second := 0
	if n := p.peekDigitRun(2); n > 0 {
		second = p.digits(n)
	}

	var year int
	if year2 >= 50 {
		year = 1900 + year2
	} else {
		year = 2000 + year2
	}

	ts := types.Timestamp{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
	}

	ts, err = p.applyTimezone(ts)
	if err != nil {
		return types.Timestamp{}, 0, err
	}
	if p.err != nil || !p.atEnd() {
		return types.Timestamp{}, 0, errs.At(errs.ErrCorrupt, 0)
	}

	return ts, consumed, nil
}

// DecodeGeneralizedTime parses a DER GeneralizedTime into a Timestamp.
//
// Four-digit year, then month, day, hour; minute and second are
// optional in positional order; an optional fractional subsecond
// introduced by '.' or ',' contributes up to 3 digits of milliseconds;
// then an optional timezone as in DecodeUTCTime.
func DecodeGeneralizedTime(data []byte) (types.Timestamp, int, error) {
	content, consumed, err := dertlv.Decode(dertag.GeneralizedTime, data)
	if err != nil {
		return types.Timestamp{}, 0, err
	}
	if len(content) < 10 {
		return types.Timestamp{}, 0, errs.At(errs.ErrCorrupt, 0)
	}

	s := string(content)
	p := &cursor{s: s}

	year := p.digits(4)
	month := p.digits(2)
	day := p.digits(2)
	hour := p.digits(2)
	if p.err != nil {
		return types.Timestamp{}, 0, errs.At(errs.ErrCorrupt, 0)
	}

	minute, second := 0, 0
	if n := p.peekDigitRun(2); n == 2 {
		minute = p.digits(2)
		if n2 := p.peekDigitRun(2); n2 == 2 {
			second = p.digits(2)
		}
	}

	millis := 0
	if p.peekByte('.') || p.peekByte(',') {
		p.advance(1)
		n := p.peekDigitRun(len(s) - p.i)
		if n == 0 {
			return types.Timestamp{}, 0, errs.At(errs.ErrCorrupt, 0)
		}

		frac := p.digits(min(n, 3))
		if n > 3 {
			p.advance(n - 3)
		}
		millis = scaleToMillis(frac, min(n, 3))
	}

	ts := types.Timestamp{
		Year: year, Month: month, Day: day,
		Hour: hour, Minute: minute, Second: second,
		Milliseconds: millis,
	}

	ts, err = p.applyTimezone(ts)
	if err != nil {
		return types.Timestamp{}, 0, err
	}
	if p.err != nil || !p.atEnd() {
		return types.Timestamp{}, 0, errs.At(errs.ErrCorrupt, 0)
	}

	return ts, consumed, nil
}

// scaleToMillis scales an n-digit fractional value frac to milliseconds
// (3 digits of precision).
func scaleToMillis(frac, n int) int {
	switch n {
	case 1:
		return frac * 100
	case 2:
		return frac * 10
	default:
		return frac
	}
}

func pad2(v int) string {
	if v < 0 {
		v = 0
	}
	if v > 99 {
		v = 99
	}

	s := strconv.Itoa(v)
	if len(s) < 2 {
		s = "0" + s
	}

	return s
}

func pad4(v int) string {
	s := strconv.Itoa(v)
	for len(s) < 4 {
		s = "0" + s
	}

	return s
}
