package image

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// Codec errors.
var (
	// ErrMalformedInput is returned when encoded image data cannot be parsed.
	ErrMalformedInput = errors.New("image: malformed input")

	// ErrIO is returned, joined with the underlying error, when reading or
	// writing the storage medium fails.
	ErrIO = errors.New("image: i/o failure")
)

// DefaultTag is the format tag written on the first line of encoded output.
const DefaultTag = "P3"

// MaxChannel is the maximum channel value; it is always written as the
// max-value line and channel values above it are rejected on read.
const MaxChannel = 255

// SyntaxError describes a token that could not be decoded.
type SyntaxError struct {
	Field string // "width", "height", "max value", or "pixel N red|green|blue"
	Token string // offending token, empty when input ended early
	Msg   string
}

func (e *SyntaxError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("image: malformed input: %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("image: malformed input: %s: %s (%q)", e.Field, e.Msg, e.Token)
}

// Unwrap makes errors.Is(err, ErrMalformedInput) hold for every SyntaxError.
func (e *SyntaxError) Unwrap() error {
	return ErrMalformedInput
}

// tokenReader yields whitespace-delimited tokens after the tag line.
type tokenReader struct {
	r *bufio.Reader
	s *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	br := bufio.NewReader(r)
	return &tokenReader{r: br}
}

// skipLine discards the first line (the format tag). The tag is not validated.
func (t *tokenReader) skipLine() error {
	_, err := t.r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	t.s = bufio.NewScanner(t.r)
	t.s.Split(bufio.ScanWords)
	return nil
}

func (t *tokenReader) next(field string) (string, error) {
	if t.s.Scan() {
		return t.s.Text(), nil
	}
	if err := t.s.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrIO, err)
	}
	return "", &SyntaxError{Field: field, Msg: "unexpected end of input"}
}

func (t *tokenReader) int(field string) (int, string, error) {
	tok, err := t.next(field)
	if err != nil {
		return 0, "", err
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, tok, &SyntaxError{Field: field, Token: tok, Msg: "not an integer"}
	}
	return v, tok, nil
}

// channel reads one channel value of pixel i. The field name is only
// formatted when reporting an error.
func (t *tokenReader) channel(i, c int) (uint8, error) {
	if !t.s.Scan() {
		if err := t.s.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrIO, err)
		}
		return 0, &SyntaxError{Field: channelField(i, c), Msg: "unexpected end of input"}
	}
	tok := t.s.Text()
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &SyntaxError{Field: channelField(i, c), Token: tok, Msg: "not an integer"}
	}
	if v < 0 || v > MaxChannel {
		return 0, &SyntaxError{Field: channelField(i, c), Token: tok, Msg: "channel out of range [0,255]"}
	}
	return uint8(v), nil
}

var channelNames = [3]string{"red", "green", "blue"}

func channelField(i, c int) string {
	return fmt.Sprintf("pixel %d %s", i, channelNames[c])
}

// Decode reads a plain-text RGB image: a tag line, width, height, a max-value
// token, then width*height red/green/blue integer triples in row-major order.
//
// Channel values outside [0,255] are rejected with ErrMalformedInput rather
// than clamped. Read failures are reported as ErrIO.
func Decode(r io.Reader) (*Buffer, error) {
	tr := newTokenReader(r)
	if err := tr.skipLine(); err != nil {
		return nil, err
	}

	width, tok, err := tr.int("width")
	if err != nil {
		return nil, err
	}
	if width <= 0 {
		return nil, &SyntaxError{Field: "width", Token: tok, Msg: "must be positive"}
	}
	height, tok, err := tr.int("height")
	if err != nil {
		return nil, err
	}
	if height <= 0 {
		return nil, &SyntaxError{Field: "height", Token: tok, Msg: "must be positive"}
	}
	if _, err := tr.next("max value"); err != nil {
		return nil, err
	}

	b, err := NewBuilder(width, height)
	if err != nil {
		return nil, err
	}
	var ch [3]uint8
	for i := range width * height {
		for c := range ch {
			v, err := tr.channel(i, c)
			if err != nil {
				return nil, err
			}
			ch[c] = v
		}
		b.setIndex(i, RGB{R: ch[0], G: ch[1], B: ch[2]})
	}
	return b.Build(), nil
}

// Encode writes b in the plain-text format read by Decode, using DefaultTag.
func Encode(w io.Writer, b *Buffer) error {
	return EncodeTag(w, b, DefaultTag)
}

// EncodeTag is Encode with an explicit format tag. The tag must be a single
// line; an empty tag falls back to DefaultTag.
func EncodeTag(w io.Writer, b *Buffer, tag string) error {
	if b == nil {
		return fmt.Errorf("%w: nil buffer", ErrInvalidDimensions)
	}
	if tag == "" {
		tag = DefaultTag
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n%d %d\n%d\n", tag, b.width, b.height, MaxChannel)

	num := make([]byte, 0, 4)
	for _, v := range b.data {
		num = strconv.AppendUint(num[:0], uint64(v), 10)
		num = append(num, '\n')
		if _, err := bw.Write(num); err != nil {
			return fmt.Errorf("%w: %w", ErrIO, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
